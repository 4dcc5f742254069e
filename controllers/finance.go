// controllers/finance.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esthecrm-backend/models"
	"esthecrm-backend/services"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

// CreateFinanceInput defines the expected JSON structure for a ledger row
type CreateFinanceInput struct {
	Date   string  `json:"date" binding:"required"`
	Type   string  `json:"type" binding:"required,oneof=income expense"`
	Title  string  `json:"title" binding:"required"`
	Amount float64 `json:"amount" binding:"min=0"`
	Memo   string  `json:"memo"`
}

// UpdateFinanceInput defines the expected JSON structure for updating a ledger row
type UpdateFinanceInput struct {
	Date   *string  `json:"date"`
	Type   *string  `json:"type" binding:"omitempty,oneof=income expense"`
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount" binding:"omitempty,min=0"`
	Memo   *string  `json:"memo"`
}

type FinanceController struct {
	store store.Store
}

func NewFinanceController(st store.Store) *FinanceController {
	return &FinanceController{store: st}
}

// CreateRecord adds an income or expense row
func (fc *FinanceController) CreateRecord(c *gin.Context) {
	var input CreateFinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record := models.FinanceRecord{
		ID:     uuid.New(),
		Date:   input.Date,
		Type:   input.Type,
		Title:  input.Title,
		Amount: input.Amount,
		Memo:   input.Memo,
	}

	if err := fc.store.Finance().Create(c.Request.Context(), &record); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create finance record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecords retrieves all ledger rows, newest first
func (fc *FinanceController) GetRecords(c *gin.Context) {
	records, err := fc.store.Finance().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve finance records")
		return
	}

	records = services.RecentRecords(records, len(records))
	if records == nil {
		records = []models.FinanceRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GetMonthlyStats returns income/expense/net totals for one month.
// ?month=YYYY-MM, defaulting to the current month.
func (fc *FinanceController) GetMonthlyStats(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = utils.MonthKey(time.Now())
	}
	if !utils.ValidMonthKey(month) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
		return
	}

	records, err := fc.store.Finance().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve finance records")
		return
	}

	stats := services.CalculateMonthlyStats(records, month)
	c.JSON(http.StatusOK, gin.H{
		"month": month,
		"stats": stats,
	})
}

// GetRecentRecords returns the N most recent ledger rows (?limit=, default 5)
func (fc *FinanceController) GetRecentRecords(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := fc.store.Finance().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve finance records")
		return
	}

	recent := services.RecentRecords(records, limit)
	if recent == nil {
		recent = []models.FinanceRecord{}
	}
	c.JSON(http.StatusOK, recent)
}

// UpdateRecord updates an existing ledger row
func (fc *FinanceController) UpdateRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input UpdateFinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	record, err := fc.store.Finance().Get(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Finance record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Type != nil {
		record.Type = *input.Type
	}
	if input.Title != nil {
		record.Title = *input.Title
	}
	if input.Amount != nil {
		record.Amount = *input.Amount
	}
	if input.Memo != nil {
		record.Memo = *input.Memo
	}

	if err := fc.store.Finance().Update(ctx, record); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update finance record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord removes a ledger row
func (fc *FinanceController) DeleteRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	if err := fc.store.Finance().Delete(c.Request.Context(), recordID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Finance record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete finance record")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Finance record deleted successfully"})
}
