package domain

import "time"

// Venue represents a physical billiards venue operated by a company
type Venue struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// TableStatus constants
const (
	TableStatusAvailable   = "available"
	TableStatusOccupied    = "occupied"
	TableStatusMaintenance = "maintenance"
)

// Table represents a billiard table within a venue
type Table struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	VenueID    string    `json:"venue_id"`
	Number     int       `json:"number"`
	HourlyRate float64   `json:"hourly_rate"`
	Status     string    `json:"status"` // available, occupied, maintenance
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
