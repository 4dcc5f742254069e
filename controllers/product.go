// controllers/product.go
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

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Type        string  `json:"type" binding:"omitempty,oneof=voucher single"`
	Count       int     `json:"count" binding:"min=0"` // sessions per unit
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
	Description string  `json:"description"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Type        *string  `json:"type" binding:"omitempty,oneof=voucher single"`
	Count       *int     `json:"count" binding:"omitempty,min=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active inactive"`
	Description *string  `json:"description"`
}

type ProductController struct {
	store store.Store
}

func NewProductController(st store.Store) *ProductController {
	return &ProductController{store: st}
}

// CreateProduct creates a new product or voucher package
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Type == "" {
		input.Type = models.ProductTypeSingle
	}
	if input.Status == "" {
		input.Status = models.ProductStatusActive
	}
	if input.Count == 0 {
		input.Count = 1
	}

	product := models.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Price:       input.Price,
		Type:        input.Type,
		Count:       input.Count,
		Status:      input.Status,
		Description: input.Description,
	}

	if err := pc.store.Products().Create(c.Request.Context(), &product); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves all products
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.store.Products().List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func (pc *ProductController) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := pc.store.Products().Get(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	product, err := pc.store.Products().Get(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.Count != nil {
		product.Count = *input.Count
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := pc.store.Products().Update(ctx, product); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product. Purchases that reference it keep their
// rows, but voucher balances stop reporting it.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := pc.store.Products().Delete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
