// controllers/purchase.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esthecrm-backend/models"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

// CreatePurchaseInput defines the expected JSON structure for recording a purchase
type CreatePurchaseInput struct {
	CustomerID   uuid.UUID `json:"customerId" binding:"required"`
	ProductID    uuid.UUID `json:"productId" binding:"required"`
	Quantity     int       `json:"quantity" binding:"min=1"`
	PurchaseDate string    `json:"purchaseDate" binding:"required"`
	TotalPrice   float64   `json:"totalPrice" binding:"min=0"`
}

// UpdatePurchaseInput defines the expected JSON structure for updating a purchase
type UpdatePurchaseInput struct {
	Quantity     *int     `json:"quantity" binding:"omitempty,min=1"`
	PurchaseDate *string  `json:"purchaseDate"`
	TotalPrice   *float64 `json:"totalPrice" binding:"omitempty,min=0"`
}

type PurchaseController struct {
	store store.Store
}

func NewPurchaseController(st store.Store) *PurchaseController {
	return &PurchaseController{store: st}
}

// CreatePurchase records a voucher/product purchase for a customer
func (pc *PurchaseController) CreatePurchase(c *gin.Context) {
	var input CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := pc.store.Customers().Get(ctx, input.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}
	product, err := pc.store.Products().Get(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Product does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	purchase := models.Purchase{
		ID:           uuid.New(),
		CustomerID:   input.CustomerID,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		PurchaseDate: input.PurchaseDate,
		TotalPrice:   input.TotalPrice,
	}
	if purchase.TotalPrice == 0 {
		purchase.TotalPrice = product.Price * float64(purchase.Quantity)
	}

	if err := pc.store.Purchases().Create(ctx, &purchase); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create purchase")
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// GetPurchases retrieves all purchases, optionally filtered by customer
func (pc *PurchaseController) GetPurchases(c *gin.Context) {
	purchases, err := pc.store.Purchases().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve purchases")
		return
	}

	if raw := c.Query("customerId"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		filtered := make([]models.Purchase, 0, len(purchases))
		for _, p := range purchases {
			if p.CustomerID == customerID {
				filtered = append(filtered, p)
			}
		}
		purchases = filtered
	}

	if purchases == nil {
		purchases = []models.Purchase{}
	}
	c.JSON(http.StatusOK, purchases)
}

// GetPurchase retrieves a specific purchase by ID
func (pc *PurchaseController) GetPurchase(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	purchase, err := pc.store.Purchases().Get(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// UpdatePurchase updates quantity, date or total of an existing purchase
func (pc *PurchaseController) UpdatePurchase(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	var input UpdatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	purchase, err := pc.store.Purchases().Get(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Quantity != nil {
		purchase.Quantity = *input.Quantity
	}
	if input.PurchaseDate != nil {
		purchase.PurchaseDate = *input.PurchaseDate
	}
	if input.TotalPrice != nil {
		purchase.TotalPrice = *input.TotalPrice
	}

	if err := pc.store.Purchases().Update(ctx, purchase); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update purchase")
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// DeletePurchase removes a purchase record
func (pc *PurchaseController) DeletePurchase(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	if err := pc.store.Purchases().Delete(c.Request.Context(), purchaseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete purchase")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}
