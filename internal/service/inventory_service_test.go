package service

import (
	"context"
	"errors"
	"testing"

	"github.com/boring-ventures/billiards-management/internal/dto"
)

func newInventoryService() (InventoryService, *memProductRepo) {
	productRepo := newMemProductRepo()
	return NewInventoryService(productRepo), productRepo
}

func TestInventoryService_CreateAndGet(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "c1", &dto.CreateProductRequest{
		Name: "Cola", SKU: "COLA-01", Price: 25, Stock: 10, LowStockThreshold: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.IsLowStock {
		t.Error("expected product above threshold not to be low stock")
	}

	got, err := svc.GetByID(ctx, "c1", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SKU != "COLA-01" {
		t.Errorf("expected SKU COLA-01, got %s", got.SKU)
	}
}

func TestInventoryService_GetByID_CrossCompanyHidden(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "c1", &dto.CreateProductRequest{Name: "Cola", SKU: "COLA-01", Price: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.GetByID(ctx, "c2", created.ID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for cross-company product, got %v", err)
	}
}

func TestInventoryService_AdjustStock(t *testing.T) {
	svc, productRepo := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "c1", &dto.CreateProductRequest{
		Name: "Cola", SKU: "COLA-01", Price: 25, Stock: 5, LowStockThreshold: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.AdjustStock(ctx, "c1", created.ID, "staff-1", &dto.AdjustStockRequest{Delta: -3, Reason: "spoilage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Stock != 2 {
		t.Errorf("expected stock 2, got %d", resp.Stock)
	}
	if !resp.IsLowStock {
		t.Error("expected product at threshold to be low stock")
	}

	if len(productRepo.movements) != 1 {
		t.Fatalf("expected 1 recorded movement, got %d", len(productRepo.movements))
	}
	movement := productRepo.movements[0]
	if movement.Delta != -3 || movement.Reason != "spoilage" || movement.StaffID != "staff-1" {
		t.Errorf("unexpected movement: %+v", movement)
	}
}

func TestInventoryService_AdjustStock_Underflow(t *testing.T) {
	svc, productRepo := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "c1", &dto.CreateProductRequest{Name: "Cola", SKU: "COLA-01", Price: 25, Stock: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.AdjustStock(ctx, "c1", created.ID, "staff-1", &dto.AdjustStockRequest{Delta: -5, Reason: "oops"})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if len(productRepo.movements) != 0 {
		t.Error("expected no movement recorded on underflow")
	}
}

func TestInventoryService_Delete(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "c1", &dto.CreateProductRequest{Name: "Cola", SKU: "COLA-01", Price: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "c1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.GetByID(ctx, "c1", created.ID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected deleted product to be hidden, got %v", err)
	}
}
