package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Order status constants
const (
	OrderStatusOpen      = "open"
	OrderStatusSettled   = "settled"
	OrderStatusCancelled = "cancelled"
)

// Order represents a point-of-sale order at a venue
type Order struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"company_id"`
	VenueID   string      `json:"venue_id"`
	TableID   *string     `json:"table_id,omitempty"`
	StaffID   string      `json:"staff_id"`
	Status    string      `json:"status"` // open, settled, cancelled
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	SettledAt *time.Time  `json:"settled_at,omitempty"`
}

// OrderItem represents a line item within an order
type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// NewOrder creates an open order for a venue
func NewOrder(companyID, venueID, staffID string, tableID *string) (*Order, error) {
	if companyID == "" {
		return nil, errors.New("company_id is required")
	}
	if venueID == "" {
		return nil, errors.New("venue_id is required")
	}
	if staffID == "" {
		return nil, errors.New("staff_id is required")
	}

	now := time.Now()
	return &Order{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		VenueID:   venueID,
		TableID:   tableID,
		StaffID:   staffID,
		Status:    OrderStatusOpen,
		Items:     []OrderItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsOpen reports whether the order can still be modified
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// AddItem appends a line item and updates the order total
func (o *Order) AddItem(productID, name string, quantity int, unitPrice float64) (*OrderItem, error) {
	if !o.IsOpen() {
		return nil, errors.New("order is not open")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if unitPrice < 0 {
		return nil, errors.New("unit price must not be negative")
	}

	item := OrderItem{
		ID:        uuid.New().String(),
		OrderID:   o.ID,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  float64(quantity) * unitPrice,
	}
	o.Items = append(o.Items, item)
	o.Total += item.Subtotal
	o.UpdatedAt = time.Now()

	return &item, nil
}
