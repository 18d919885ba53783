package domain

import "time"

// Product represents an inventory item sold at a venue (drinks, snacks,
// equipment rentals)
type Product struct {
	ID                string     `json:"id"`
	CompanyID         string     `json:"company_id"`
	Name              string     `json:"name"`
	SKU               string     `json:"sku"`
	Category          string     `json:"category,omitempty"`
	Price             float64    `json:"price"`
	Stock             int        `json:"stock"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// IsLowStock reports whether the product is at or below its low-stock threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// StockMovement records an inventory adjustment with its reason
type StockMovement struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	ProductID string    `json:"product_id"`
	Delta     int       `json:"delta"` // positive restock, negative consumption
	Reason    string    `json:"reason"`
	StaffID   string    `json:"staff_id"`
	CreatedAt time.Time `json:"created_at"`
}
