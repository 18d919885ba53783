package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/service"
	"github.com/boring-ventures/billiards-management/pkg/middleware"
	"github.com/boring-ventures/billiards-management/pkg/response"
)

// InventoryHandler handles product and stock HTTP requests
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles product creation
// POST /api/v1/products
func (h *InventoryHandler) Create(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.inventoryService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving a product
// GET /api/v1/products/:id
func (h *InventoryHandler) GetByID(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.inventoryService.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing the company's products
// GET /api/v1/products
func (h *InventoryHandler) List(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.inventoryService.List(c.Request.Context(), companyID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles product updates
// PUT /api/v1/products/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.inventoryService.Update(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles soft deleting a product
// DELETE /api/v1/products/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// AdjustStock handles manual stock adjustments
// POST /api/v1/products/:id/stock
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.inventoryService.AdjustStock(c.Request.Context(), companyID, c.Param("id"), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Product not found"))
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeInsufficientStock, "Not enough stock for this adjustment"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
