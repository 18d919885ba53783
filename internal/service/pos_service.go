package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/event"
	"github.com/boring-ventures/billiards-management/internal/repository"
	"github.com/boring-ventures/billiards-management/pkg/logger"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotOpen    = errors.New("order is not open")
	ErrProductInactive = errors.New("product is not active")
)

// POSService defines the interface for point-of-sale order operations. Every
// operation takes the effective company id resolved by the scope middleware.
type POSService interface {
	// Open opens a new order at a venue
	Open(ctx context.Context, companyID, staffID string, req *dto.OpenOrderRequest) (*dto.OrderResponse, error)
	// GetByID retrieves an order with its items
	GetByID(ctx context.Context, companyID, id string) (*dto.OrderResponse, error)
	// List retrieves orders with optional status filter
	List(ctx context.Context, companyID string, query *dto.ListOrdersQuery) (*dto.ListOrdersResponse, error)
	// AddItem adds a product line item to an open order, consuming stock
	AddItem(ctx context.Context, companyID, orderID string, req *dto.AddOrderItemRequest) (*dto.OrderResponse, error)
	// Settle closes an open order and records the income transaction
	Settle(ctx context.Context, companyID, orderID, staffID string) (*dto.OrderResponse, error)
	// Cancel cancels an open order and restores consumed stock
	Cancel(ctx context.Context, companyID, orderID, staffID string) (*dto.OrderResponse, error)
}

// posService implements POSService
type posService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	venueRepo       repository.VenueRepository
	transactionRepo repository.TransactionRepository
	publisher       event.Publisher
}

// NewPOSService creates a new POSService
func NewPOSService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	venueRepo repository.VenueRepository,
	transactionRepo repository.TransactionRepository,
	publisher event.Publisher,
) POSService {
	return &posService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		venueRepo:       venueRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// Open opens a new order at a venue. When a table id is given the table is
// marked occupied.
func (s *posService) Open(ctx context.Context, companyID, staffID string, req *dto.OpenOrderRequest) (*dto.OrderResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, companyID, req.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	if req.TableID != nil {
		table, err := s.venueRepo.GetTableByID(ctx, companyID, *req.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, ErrTableNotFound
		}
	}

	order, err := domain.NewOrder(companyID, req.VenueID, staffID, req.TableID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if req.TableID != nil {
		if err := s.venueRepo.UpdateTableStatus(ctx, companyID, *req.TableID, domain.TableStatusOccupied); err != nil {
			logger.ErrorCtx(ctx, "failed to mark table occupied",
				zap.String("table_id", *req.TableID),
				zap.Error(err),
			)
		}
	}

	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves an order with its items
func (s *posService) GetByID(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// List retrieves orders with optional status filter
func (s *posService) List(ctx context.Context, companyID string, query *dto.ListOrdersQuery) (*dto.ListOrdersResponse, error) {
	query.SetDefaults()

	orders, totalCount, err := s.orderRepo.ListByCompany(ctx, companyID, query.Status, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, dto.ToOrderResponse(order))
	}

	return &dto.ListOrdersResponse{
		Orders:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// AddItem adds a product line item to an open order. Stock is consumed
// atomically; the item is priced at the product's current price.
func (s *posService) AddItem(ctx context.Context, companyID, orderID string, req *dto.AddOrderItemRequest) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.IsOpen() {
		return nil, ErrOrderNotOpen
	}

	product, err := s.productRepo.GetByID(ctx, companyID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	adjusted, err := s.productRepo.AdjustStock(ctx, companyID, req.ProductID, -req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}
	if adjusted == nil {
		return nil, ErrProductNotFound
	}

	item, err := order.AddItem(product.ID, product.Name, req.Quantity, product.Price)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.AddItem(ctx, order, item); err != nil {
		// Put the consumed stock back so the failed write does not leak it
		if _, adjErr := s.productRepo.AdjustStock(ctx, companyID, req.ProductID, req.Quantity); adjErr != nil {
			logger.ErrorCtx(ctx, "failed to restore stock after order write failure",
				zap.String("product_id", req.ProductID),
				zap.Error(adjErr),
			)
		}
		return nil, err
	}

	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// Settle closes an open order, records the income transaction and publishes
// the settlement event
func (s *posService) Settle(ctx context.Context, companyID, orderID, staffID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.IsOpen() {
		return nil, ErrOrderNotOpen
	}

	now := time.Now()
	order.Status = domain.OrderStatusSettled
	order.UpdatedAt = now
	order.SettledAt = &now

	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}

	s.releaseTable(ctx, order)

	if order.Total > 0 {
		tx, err := domain.NewTransaction(companyID, domain.TransactionTypeIncome, "pos_sale", order.Total, staffID)
		if err == nil {
			tx.OrderID = &order.ID
			err = s.transactionRepo.Create(ctx, tx)
		}
		if err != nil {
			logger.ErrorCtx(ctx, "failed to record settlement transaction",
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	pubErr := s.publisher.Publish(ctx, &event.Event{
		Type:      event.TypeOrderSettled,
		CompanyID: companyID,
		Payload: map[string]interface{}{
			"order_id": order.ID,
			"total":    order.Total,
			"staff_id": staffID,
		},
	})
	if pubErr != nil {
		logger.ErrorCtx(ctx, "failed to publish order settled event",
			zap.String("order_id", order.ID),
			zap.Error(pubErr),
		)
	}

	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// Cancel cancels an open order and restores consumed stock
func (s *posService) Cancel(ctx context.Context, companyID, orderID, staffID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.IsOpen() {
		return nil, ErrOrderNotOpen
	}

	order.Status = domain.OrderStatusCancelled
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}

	s.releaseTable(ctx, order)

	for _, item := range order.Items {
		if _, err := s.productRepo.AdjustStock(ctx, companyID, item.ProductID, item.Quantity); err != nil {
			logger.ErrorCtx(ctx, "failed to restore stock for cancelled order",
				zap.String("order_id", order.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}

	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

func (s *posService) releaseTable(ctx context.Context, order *domain.Order) {
	if order.TableID == nil {
		return
	}
	if err := s.venueRepo.UpdateTableStatus(ctx, order.CompanyID, *order.TableID, domain.TableStatusAvailable); err != nil {
		logger.ErrorCtx(ctx, "failed to release table",
			zap.String("table_id", *order.TableID),
			zap.Error(err),
		)
	}
}
