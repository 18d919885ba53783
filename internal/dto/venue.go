package dto

import (
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// CreateVenueRequest represents request to create a new venue
type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Address string `json:"address" binding:"required,max=500"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
}

// UpdateVenueRequest represents request to update venue information
type UpdateVenueRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateVenueRequest) Validate() (bool, string) {
	if r.Name == nil && r.Address == nil && r.Phone == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// VenueResponse represents venue data in response
type VenueResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToVenueResponse converts a domain venue to its response form
func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		CompanyID: v.CompanyID,
		Name:      v.Name,
		Address:   v.Address,
		Phone:     v.Phone,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}

// ListVenuesQuery represents query parameters for listing venues
type ListVenuesQuery struct {
	Page     int   `form:"page" binding:"omitempty,min=1"`
	Limit    int   `form:"limit" binding:"omitempty,min=1,max=100"`
	IsActive *bool `form:"is_active" binding:"omitempty"`
}

// SetDefaults sets default values for query parameters
func (q *ListVenuesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListVenuesResponse represents paginated list of venues
type ListVenuesResponse struct {
	Venues     []VenueResponse `json:"venues"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// CreateTableRequest represents request to add a billiard table to a venue
type CreateTableRequest struct {
	Number     int     `json:"number" binding:"required,min=1"`
	HourlyRate float64 `json:"hourly_rate" binding:"required,gt=0"`
}

// UpdateTableStatusRequest represents request to change a table's status
type UpdateTableStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied maintenance"`
}

// TableResponse represents billiard table data in response
type TableResponse struct {
	ID         string  `json:"id"`
	VenueID    string  `json:"venue_id"`
	Number     int     `json:"number"`
	HourlyRate float64 `json:"hourly_rate"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ToTableResponse converts a domain table to its response form
func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:         t.ID,
		VenueID:    t.VenueID,
		Number:     t.Number,
		HourlyRate: t.HourlyRate,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.Format(time.RFC3339),
	}
}
