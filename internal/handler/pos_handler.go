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

// POSHandler handles point of sale order HTTP requests
type POSHandler struct {
	posService service.POSService
}

// NewPOSHandler creates a new POSHandler
func NewPOSHandler(posService service.POSService) *POSHandler {
	return &POSHandler{posService: posService}
}

// Open handles opening a new order
// POST /api/v1/orders
func (h *POSHandler) Open(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.posService.Open(c.Request.Context(), companyID, staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
		case errors.Is(err, service.ErrTableNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Table not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving an order with its items
// GET /api/v1/orders/:id
func (h *POSHandler) GetByID(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.posService.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing the company's orders
// GET /api/v1/orders
func (h *POSHandler) List(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var query dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.posService.List(c.Request.Context(), companyID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// AddItem handles adding a product line to an open order
// POST /api/v1/orders/:id/items
func (h *POSHandler) AddItem(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.posService.AddItem(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Order not found"))
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Product not found"))
		case errors.Is(err, service.ErrOrderNotOpen):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeOrderNotOpen, "Order is not open"))
		case errors.Is(err, service.ErrProductInactive):
			c.JSON(http.StatusConflict, response.Conflict("Product is not available for sale"))
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeInsufficientStock, "Not enough stock for this item"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Settle handles settling an open order
// POST /api/v1/orders/:id/settle
func (h *POSHandler) Settle(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := h.posService.Settle(c.Request.Context(), companyID, c.Param("id"), staffID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Order not found"))
		case errors.Is(err, service.ErrOrderNotOpen):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeOrderNotOpen, "Order is not open"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Cancel handles cancelling an open order and restoring its stock
// POST /api/v1/orders/:id/cancel
func (h *POSHandler) Cancel(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := h.posService.Cancel(c.Request.Context(), companyID, c.Param("id"), staffID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Order not found"))
		case errors.Is(err, service.ErrOrderNotOpen):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeOrderNotOpen, "Order is not open"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
