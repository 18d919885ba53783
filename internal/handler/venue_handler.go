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

// VenueHandler handles venue and table HTTP requests
type VenueHandler struct {
	venueService service.VenueService
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

func effectiveCompany(c *gin.Context) (string, bool) {
	companyID, ok := middleware.GetEffectiveCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, response.Forbidden("Company access denied"))
		return "", false
	}
	return companyID, true
}

// Create handles venue creation
// POST /api/v1/venues
func (h *VenueHandler) Create(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving a venue
// GET /api/v1/venues/:id
func (h *VenueHandler) GetByID(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.venueService.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing the company's venues
// GET /api/v1/venues
func (h *VenueHandler) List(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var query dto.ListVenuesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.List(c.Request.Context(), companyID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles venue updates
// PUT /api/v1/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.Update(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles soft deleting a venue
// DELETE /api/v1/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// CreateTable handles adding a billiard table to a venue
// POST /api/v1/venues/:id/tables
func (h *VenueHandler) CreateTable(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.CreateTable(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// ListTables handles listing a venue's tables
// GET /api/v1/venues/:id/tables
func (h *VenueHandler) ListTables(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.venueService.ListTables(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Venue not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateTableStatus handles table status transitions
// PUT /api/v1/tables/:id/status
func (h *VenueHandler) UpdateTableStatus(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	var req dto.UpdateTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.UpdateTableStatus(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Table not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
