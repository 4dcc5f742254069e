// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esthecrm-backend/models"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

// CreateAppointmentInput defines the expected JSON structure for booking an appointment
type CreateAppointmentInput struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	ProductID  uuid.UUID `json:"productId" binding:"required"`
	Datetime   string    `json:"datetime" binding:"required"`
	Memo       string    `json:"memo"`
	Status     string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an appointment
type UpdateAppointmentInput struct {
	Datetime *string `json:"datetime"`
	Memo     *string `json:"memo"`
	Status   *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
}

type AppointmentController struct {
	store store.Store
}

func NewAppointmentController(st store.Store) *AppointmentController {
	return &AppointmentController{store: st}
}

// CreateAppointment books an appointment for a customer
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := ac.store.Customers().Get(ctx, input.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}
	if _, err := ac.store.Products().Get(ctx, input.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Product does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Status == "" {
		input.Status = models.AppointmentScheduled
	}

	appointment := models.Appointment{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Datetime:   input.Datetime,
		Memo:       input.Memo,
		Status:     input.Status,
	}

	if err := ac.store.Appointments().Create(ctx, &appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments, optionally filtered by customer
// or by a date prefix (e.g. ?date=2024-03-01 or ?date=2024-03).
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	appointments, err := ac.store.Appointments().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	if raw := c.Query("customerId"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		filtered := make([]models.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.CustomerID == customerID {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	if prefix := c.Query("date"); prefix != "" {
		filtered := make([]models.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if strings.HasPrefix(a.Datetime, prefix) {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := ac.store.Appointments().Get(c.Request.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment updates time, memo or status of an appointment
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	appointment, err := ac.store.Appointments().Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Datetime != nil {
		appointment.Datetime = *input.Datetime
	}
	if input.Memo != nil {
		appointment.Memo = *input.Memo
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if err := ac.store.Appointments().Update(ctx, appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	if err := ac.store.Appointments().Delete(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
