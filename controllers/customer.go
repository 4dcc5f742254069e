package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esthecrm-backend/models"
	"esthecrm-backend/services"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	BirthDate string `json:"birthDate"`
	SkinType  string `json:"skinType" binding:"omitempty,oneof=dry oily combination sensitive normal"`
	Memo      string `json:"memo"`
	Point     int    `json:"point" binding:"min=0"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate"`
	SkinType  *string `json:"skinType" binding:"omitempty,oneof=dry oily combination sensitive normal"`
	Memo      *string `json:"memo"`
	Point     *int    `json:"point" binding:"omitempty,min=0"`
}

// CustomerSummary is the per-customer view on the detail screen.
type CustomerSummary struct {
	Customer              models.Customer          `json:"customer"`
	TotalAppointments     int                      `json:"totalAppointments"`
	CompletedAppointments int                      `json:"completedAppointments"`
	TotalPurchases        int                      `json:"totalPurchases"`
	TotalQuantity         int                      `json:"totalQuantity"`
	VoucherBalances       []services.VoucherBalance `json:"voucherBalances"`
	VoucherSummary        string                   `json:"voucherSummary"`
}

type CustomerController struct {
	store store.Store
}

func NewCustomerController(st store.Store) *CustomerController {
	return &CustomerController{store: st}
}

// CreateCustomer creates a new customer record
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	existing, err := cc.store.Customers().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check existing customers")
		return
	}
	for _, other := range existing {
		if other.Phone == input.Phone {
			utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
			return
		}
	}

	customer := models.Customer{
		ID:        uuid.New(),
		Name:      input.Name,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
		SkinType:  input.SkinType,
		Memo:      input.Memo,
		Point:     input.Point,
	}

	if err := cc.store.Customers().Create(c.Request.Context(), &customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.store.Customers().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := cc.store.Customers().Get(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomerSummary returns appointment/purchase statistics and remaining
// voucher sessions for one customer.
func (cc *CustomerController) GetCustomerSummary(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.store.Customers().Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	purchases, err := cc.store.Purchases().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve purchases")
		return
	}
	appointments, err := cc.store.Appointments().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	products, err := cc.store.Products().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	summary := CustomerSummary{Customer: *customer}
	for _, a := range appointments {
		if a.CustomerID != customerID {
			continue
		}
		summary.TotalAppointments++
		if a.Status == models.AppointmentCompleted {
			summary.CompletedAppointments++
		}
	}
	for _, p := range purchases {
		if p.CustomerID != customerID {
			continue
		}
		summary.TotalPurchases++
		if p.Quantity > 0 {
			summary.TotalQuantity += p.Quantity
		}
	}

	balances := services.RemainingSessions(customerID, purchases, appointments, products)
	if balances == nil {
		balances = []services.VoucherBalance{}
	}
	summary.VoucherBalances = balances
	summary.VoucherSummary = services.FormatVoucherBalances(balances)

	c.JSON(http.StatusOK, summary)
}

// UpdateCustomer updates an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.store.Customers().Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if customer.Phone != *input.Phone {
			existing, err := cc.store.Customers().List(ctx)
			if err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check existing customers")
				return
			}
			for _, other := range existing {
				if other.ID != customerID && other.Phone == *input.Phone {
					utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
					return
				}
			}
		}
		customer.Phone = *input.Phone
	}
	if input.BirthDate != nil {
		customer.BirthDate = *input.BirthDate
	}
	if input.SkinType != nil {
		customer.SkinType = *input.SkinType
	}
	if input.Memo != nil {
		customer.Memo = *input.Memo
	}
	if input.Point != nil {
		customer.Point = *input.Point
	}

	if err := cc.store.Customers().Update(ctx, customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Their purchases and appointments stay;
// aggregation treats the dangling references as unknown.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := cc.store.Customers().Delete(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
