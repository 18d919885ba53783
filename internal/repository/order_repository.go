package repository

import (
	"context"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// OrderRepository defines the interface for point-of-sale order data access.
// Every query is scoped by company id.
type OrderRepository interface {
	// Create creates an order together with any initial items
	Create(ctx context.Context, order *domain.Order) error
	// GetByID retrieves an order with its items within a company
	GetByID(ctx context.Context, companyID, id string) (*domain.Order, error)
	// ListByCompany retrieves orders with optional status filter and pagination
	ListByCompany(ctx context.Context, companyID, status string, page, limit int) ([]*domain.Order, int, error)
	// AddItem appends a line item and updates the order total
	AddItem(ctx context.Context, order *domain.Order, item *domain.OrderItem) error
	// UpdateStatus transitions an order's status
	UpdateStatus(ctx context.Context, order *domain.Order) error
	// CountOpen counts a company's open orders
	CountOpen(ctx context.Context, companyID string) (int, error)
}
