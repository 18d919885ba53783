package dto

import (
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// OpenOrderRequest represents request to open a new point-of-sale order
type OpenOrderRequest struct {
	VenueID string  `json:"venue_id" binding:"required,uuid"`
	TableID *string `json:"table_id" binding:"omitempty,uuid"`
}

// AddOrderItemRequest represents request to add a line item to an open order
type AddOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// OrderItemResponse represents an order line item in response
type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse represents order data in response
type OrderResponse struct {
	ID        string              `json:"id"`
	VenueID   string              `json:"venue_id"`
	TableID   *string             `json:"table_id,omitempty"`
	StaffID   string              `json:"staff_id"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt string              `json:"created_at"`
	UpdatedAt string              `json:"updated_at"`
	SettledAt *string             `json:"settled_at,omitempty"`
}

// ToOrderResponse converts a domain order to its response form
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	resp := OrderResponse{
		ID:        o.ID,
		VenueID:   o.VenueID,
		TableID:   o.TableID,
		StaffID:   o.StaffID,
		Status:    o.Status,
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
	if o.SettledAt != nil {
		settled := o.SettledAt.Format(time.RFC3339)
		resp.SettledAt = &settled
	}
	return resp
}

// ListOrdersQuery represents query parameters for listing orders
type ListOrdersQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=open settled cancelled"`
}

// SetDefaults sets default values for query parameters
func (q *ListOrdersQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListOrdersResponse represents paginated list of orders
type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
