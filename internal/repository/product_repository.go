package repository

import (
	"context"
	"errors"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// ErrInsufficientStock is returned by AdjustStock when a negative delta would
// take stock below zero
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the interface for inventory data access. Every
// query is scoped by company id.
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *domain.Product) error
	// GetByID retrieves a product by ID within a company
	GetByID(ctx context.Context, companyID, id string) (*domain.Product, error)
	// List retrieves a company's products with pagination and filters
	List(ctx context.Context, companyID string, page, limit int, activeOnly bool, search string) ([]*domain.Product, int, error)
	// Update updates a product
	Update(ctx context.Context, product *domain.Product) error
	// SoftDelete soft deletes a product
	SoftDelete(ctx context.Context, companyID, id string) error
	// AdjustStock atomically applies a stock delta. It returns nil when the
	// product does not exist and ErrInsufficientStock when the delta would
	// take stock negative.
	AdjustStock(ctx context.Context, companyID, id string, delta int) (*domain.Product, error)
	// RecordMovement persists a stock movement entry
	RecordMovement(ctx context.Context, movement *domain.StockMovement) error
	// CountLowStock counts active products at or below their low-stock threshold
	CountLowStock(ctx context.Context, companyID string) (int, error)
}
