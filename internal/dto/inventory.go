package dto

import (
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// CreateProductRequest represents request to create a new product
type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=255"`
	SKU               string  `json:"sku" binding:"required,min=2,max=64"`
	Category          string  `json:"category" binding:"omitempty,max=100"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	Stock             int     `json:"stock" binding:"omitempty,min=0"`
	LowStockThreshold int     `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents request to update product information
type UpdateProductRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category          *string  `json:"category" binding:"omitempty,max=100"`
	Price             *float64 `json:"price" binding:"omitempty,gt=0"`
	LowStockThreshold *int     `json:"low_stock_threshold" binding:"omitempty,min=0"`
	IsActive          *bool    `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProductRequest) Validate() (bool, string) {
	if r.Name == nil && r.Category == nil && r.Price == nil && r.LowStockThreshold == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// AdjustStockRequest represents a manual stock adjustment. Delta is positive
// for restocks and negative for consumption or shrinkage.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required,min=2,max=255"`
}

// ProductResponse represents product data in response
type ProductResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Category          string  `json:"category,omitempty"`
	Price             float64 `json:"price"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	IsLowStock        bool    `json:"is_low_stock"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		Price:             p.Price,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		IsLowStock:        p.IsLowStock(),
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

// ListProductsQuery represents query parameters for listing products
type ListProductsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	ActiveOnly bool   `form:"active_only" binding:"omitempty"`
	Search     string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListProductsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListProductsResponse represents paginated list of products
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// StockMovementResponse represents a recorded stock adjustment in response
type StockMovementResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	StaffID   string `json:"staff_id"`
	CreatedAt string `json:"created_at"`
}

// ToStockMovementResponse converts a domain stock movement to its response form
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Delta:     m.Delta,
		Reason:    m.Reason,
		StaffID:   m.StaffID,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
