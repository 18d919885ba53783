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

// FinanceHandler handles financial transaction HTTP requests
type FinanceHandler struct {
	financeService service.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// Create handles recording a manual transaction
// POST /api/v1/transactions
func (h *FinanceHandler) Create(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.financeService.Create(c.Request.Context(), companyID, staffID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving a transaction
// GET /api/v1/transactions/:id
func (h *FinanceHandler) GetByID(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.financeService.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing transactions with optional filters
// GET /api/v1/transactions
func (h *FinanceHandler) List(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.financeService.List(c.Request.Context(), companyID, &query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid date range"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Summary handles the per category income and expense report
// GET /api/v1/transactions/summary
func (h *FinanceHandler) Summary(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var query dto.FinanceSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.financeService.Summary(c.Request.Context(), companyID, &query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid date range"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
