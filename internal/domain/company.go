package domain

import "time"

// Company represents a tenant venue operator in the multi-tenant system.
// Data belonging to one company must never be visible to another company's
// non-elevated users.
type Company struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}
