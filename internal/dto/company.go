package dto

import (
	"regexp"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// CreateCompanyRequest represents request to create a new company
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	Slug string `json:"slug" binding:"required,min=2,max=100"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateSlug validates slug format (lowercase alphanumeric and hyphens only)
func (r *CreateCompanyRequest) ValidateSlug() (bool, string) {
	if !slugRegex.MatchString(r.Slug) {
		return false, "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return true, ""
}

// UpdateCompanyRequest represents request to update company information
type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateCompanyRequest) Validate() (bool, string) {
	if r.Name == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// CompanyResponse represents company data in response
type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToCompanyResponse converts a domain company to its response form
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ListCompaniesQuery represents query parameters for listing companies
type ListCompaniesQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	IsActive *bool  `form:"is_active" binding:"omitempty"`
	Search   string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListCompaniesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListCompaniesResponse represents paginated list of companies
type ListCompaniesResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// SelectCompanyRequest represents a superadmin remembering a working company
type SelectCompanyRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
}
