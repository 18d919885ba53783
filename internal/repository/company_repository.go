package repository

import (
	"context"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// CompanyRepository defines the interface for company (tenant) data access.
// GetByID and GetBySlug return nil when no matching record exists.
type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, company *domain.Company) error
	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	// GetBySlug retrieves a company by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	// List retrieves companies with pagination and filters
	List(ctx context.Context, page, limit int, isActive *bool, search string) ([]*domain.Company, int, error)
	// Update updates a company
	Update(ctx context.Context, company *domain.Company) error
	// SoftDelete soft deletes a company
	SoftDelete(ctx context.Context, id string) error
	// HardDelete permanently removes a company; only valid when it has no
	// dependent profiles
	HardDelete(ctx context.Context, id string) error
	// ExistsBySlug checks if a company exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
