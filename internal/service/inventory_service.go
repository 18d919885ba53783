package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InventoryService defines the interface for product and stock management.
// Every operation takes the effective company id resolved by the scope
// middleware.
type InventoryService interface {
	// Create creates a new product
	Create(ctx context.Context, companyID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error)
	// List retrieves a company's products with pagination and filters
	List(ctx context.Context, companyID string, query *dto.ListProductsQuery) (*dto.ListProductsResponse, error)
	// Update updates a product
	Update(ctx context.Context, companyID, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	// Delete soft deletes a product
	Delete(ctx context.Context, companyID, id string) error
	// AdjustStock applies a manual stock delta and records the movement
	AdjustStock(ctx context.Context, companyID, id, staffID string, req *dto.AdjustStockRequest) (*dto.ProductResponse, error)
}

// inventoryService implements InventoryService
type inventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: productRepo}
}

// Create creates a new product
func (s *inventoryService) Create(ctx context.Context, companyID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &domain.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              req.Name,
		SKU:               req.SKU,
		Category:          req.Category,
		Price:             req.Price,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *inventoryService) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List retrieves a company's products with pagination and filters
func (s *inventoryService) List(ctx context.Context, companyID string, query *dto.ListProductsQuery) (*dto.ListProductsResponse, error) {
	query.SetDefaults()

	products, totalCount, err := s.productRepo.List(ctx, companyID, query.Page, query.Limit, query.ActiveOnly, query.Search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, dto.ToProductResponse(product))
	}

	return &dto.ListProductsResponse{
		Products:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// Update updates a product
func (s *inventoryService) Update(ctx context.Context, companyID, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	product, err := s.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Delete soft deletes a product
func (s *inventoryService) Delete(ctx context.Context, companyID, id string) error {
	product, err := s.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.SoftDelete(ctx, companyID, id)
}

// AdjustStock applies a manual stock delta and records the movement. The
// repository applies the delta atomically so concurrent adjustments cannot
// take stock below zero.
func (s *inventoryService) AdjustStock(ctx context.Context, companyID, id, staffID string, req *dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.AdjustStock(ctx, companyID, id, req.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	movement := &domain.StockMovement{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: id,
		Delta:     req.Delta,
		Reason:    req.Reason,
		StaffID:   staffID,
		CreatedAt: time.Now(),
	}
	if err := s.productRepo.RecordMovement(ctx, movement); err != nil {
		return nil, err
	}

	resp := dto.ToProductResponse(product)
	return &resp, nil
}
