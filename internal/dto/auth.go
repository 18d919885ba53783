package dto

import (
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// RegisterRequest represents request to register a new profile
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
}

// LoginRequest represents request to authenticate a profile
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresIn   int             `json:"expires_in"`
	Profile     ProfileResponse `json:"profile"`
}

// ProfileResponse represents profile data in response
type ProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToProfileResponse converts a domain profile to its response form. The stored
// role string is normalized through ParseRole so unknown values come back as
// USER.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.ParsedRole().String(),
		CompanyID: p.CompanyID,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest represents request to update profile information
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if r.FirstName == nil && r.LastName == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// AssignRoleRequest represents an admin assigning a role and company to a
// profile
type AssignRoleRequest struct {
	Role      string  `json:"role" binding:"required"`
	CompanyID *string `json:"company_id" binding:"omitempty,uuid"`
}

// ListProfilesQuery represents query parameters for listing company profiles
type ListProfilesQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// SetDefaults sets default values for query parameters
func (q *ListProfilesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListProfilesResponse represents paginated list of profiles
type ListProfilesResponse struct {
	Profiles   []ProfileResponse `json:"profiles"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
