package repository

import (
	"context"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// ProfileRepository defines the interface for principal profile data access.
// GetByID and GetByEmail return nil when no matching record exists.
type ProfileRepository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// ListByCompany retrieves profiles assigned to a company with pagination
	ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.Profile, int, error)
	// Update updates a profile's role, company assignment and names
	Update(ctx context.Context, profile *domain.Profile) error
	// Deactivate marks a profile inactive; profiles are never hard-deleted
	Deactivate(ctx context.Context, id string) error
	// CountByCompany counts profiles assigned to a company, active or not
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
