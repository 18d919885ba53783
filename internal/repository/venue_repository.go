package repository

import (
	"context"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// VenueRepository defines the interface for venue and table data access.
// Every query is scoped by company id; lookups return nil when no record
// matches within that company.
type VenueRepository interface {
	// Create creates a new venue
	Create(ctx context.Context, venue *domain.Venue) error
	// GetByID retrieves a venue by ID within a company
	GetByID(ctx context.Context, companyID, id string) (*domain.Venue, error)
	// ListByCompany retrieves a company's venues with pagination
	ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.Venue, int, error)
	// Update updates a venue
	Update(ctx context.Context, venue *domain.Venue) error
	// SoftDelete soft deletes a venue
	SoftDelete(ctx context.Context, companyID, id string) error

	// CreateTable creates a billiard table within a venue
	CreateTable(ctx context.Context, table *domain.Table) error
	// GetTableByID retrieves a table by ID within a company
	GetTableByID(ctx context.Context, companyID, id string) (*domain.Table, error)
	// ListTablesByVenue retrieves all tables of a venue
	ListTablesByVenue(ctx context.Context, companyID, venueID string) ([]*domain.Table, error)
	// UpdateTableStatus transitions a table's status
	UpdateTableStatus(ctx context.Context, companyID, id, status string) error
	// CountTablesByStatus counts a company's tables in the given status
	CountTablesByStatus(ctx context.Context, companyID, status string) (int, error)
}
