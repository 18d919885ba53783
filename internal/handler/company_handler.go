package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/selection"
	"github.com/boring-ventures/billiards-management/internal/service"
	"github.com/boring-ventures/billiards-management/pkg/middleware"
	"github.com/boring-ventures/billiards-management/pkg/response"
)

// CompanyHandler handles company management HTTP requests. All routes are
// superadmin-only.
type CompanyHandler struct {
	companyService service.CompanyService
	selections     selection.Store
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService service.CompanyService, selections selection.Store) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		selections:     selections,
	}
}

// Create handles company creation
// POST /api/v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if valid, msg := req.ValidateSlug(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_SLUG", msg))
		return
	}

	result, err := h.companyService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCompanyAlreadyExists) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Company with this slug already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving a company by ID
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Company ID is required"))
		return
	}

	result, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// GetBySlug handles retrieving a company by slug
// GET /api/v1/companies/slug/:slug
func (h *CompanyHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Company slug is required"))
		return
	}

	result, err := h.companyService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles retrieving companies with pagination
// GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	var query dto.ListCompaniesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.companyService.List(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles company updates
// PUT /api/v1/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.companyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles soft deleting a company
// DELETE /api/v1/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// HardDelete handles permanent removal of an empty company
// DELETE /api/v1/companies/:id/purge
func (h *CompanyHandler) HardDelete(c *gin.Context) {
	id := c.Param("id")

	if err := h.companyService.HardDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		if errors.Is(err, service.ErrCompanyHasProfiles) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeHasDependents, "Company still has assigned profiles"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Select remembers the caller's working company for future requests
// POST /api/v1/companies/select
func (h *CompanyHandler) Select(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
		return
	}

	var req dto.SelectCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	// Verify the company before remembering it; the hint is re-verified on
	// every later request as well
	if _, err := h.companyService.GetByID(c.Request.Context(), req.CompanyID); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	if err := h.selections.Set(c.Request.Context(), userID, req.CompanyID); err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"company_id": req.CompanyID}))
}

// ClearSelection forgets the caller's remembered working company
// DELETE /api/v1/companies/select
func (h *CompanyHandler) ClearSelection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
		return
	}

	if err := h.selections.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"cleared": true}))
}
