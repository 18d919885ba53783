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

// AuthHandler handles authentication and profile HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles profile registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Email already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Login handles authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid email or password"))
			return
		}
		if errors.Is(err, service.ErrProfileInactive) {
			c.JSON(http.StatusForbidden, response.Forbidden("Profile is deactivated"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Me handles retrieving the caller's own profile
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateMe handles updating the caller's own profile
// PUT /api/v1/auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// AssignRole handles assigning role and company to a profile
// PUT /api/v1/profiles/:id/role
func (h *AuthHandler) AssignRole(c *gin.Context) {
	companyID, ok := middleware.GetEffectiveCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, response.Forbidden("Company access denied"))
		return
	}
	id := c.Param("id")

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.AssignRole(c.Request.Context(), companyID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
		case errors.Is(err, service.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Company not found"))
		case errors.Is(err, service.ErrRoleRequiresCompany):
			c.JSON(http.StatusBadRequest, response.BadRequest("Role requires a company assignment"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListProfiles handles listing profiles of the effective company
// GET /api/v1/profiles
func (h *AuthHandler) ListProfiles(c *gin.Context) {
	companyID, ok := middleware.GetEffectiveCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, response.Forbidden("Company access denied"))
		return
	}

	var query dto.ListProfilesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.ListByCompany(c.Request.Context(), companyID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Deactivate handles deactivating a profile
// DELETE /api/v1/profiles/:id
func (h *AuthHandler) Deactivate(c *gin.Context) {
	companyID, ok := middleware.GetEffectiveCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, response.Forbidden("Company access denied"))
		return
	}
	id := c.Param("id")

	if err := h.authService.Deactivate(c.Request.Context(), companyID, id); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deactivated": true}))
}
