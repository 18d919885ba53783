package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/event"
)

type posFixture struct {
	svc         POSService
	orderRepo   *memOrderRepo
	productRepo *memProductRepo
	venueRepo   *memVenueRepo
	txRepo      *memTransactionRepo
	publisher   *event.MemoryPublisher
}

func newPOSFixture() *posFixture {
	f := &posFixture{
		orderRepo:   newMemOrderRepo(),
		productRepo: newMemProductRepo(),
		venueRepo:   newMemVenueRepo(),
		txRepo:      newMemTransactionRepo(),
		publisher:   event.NewMemoryPublisher(),
	}
	f.svc = NewPOSService(f.orderRepo, f.productRepo, f.venueRepo, f.txRepo, f.publisher)

	f.venueRepo.venues["v1"] = &domain.Venue{ID: "v1", CompanyID: "c1", Name: "Downtown", IsActive: true}
	f.venueRepo.tables["t1"] = &domain.Table{
		ID: "t1", CompanyID: "c1", VenueID: "v1", Number: 1,
		HourlyRate: 120, Status: domain.TableStatusAvailable,
	}
	f.productRepo.products["p1"] = &domain.Product{
		ID: "p1", CompanyID: "c1", Name: "Cola", SKU: "COLA-01",
		Price: 25, Stock: 10, LowStockThreshold: 2, IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	return f
}

func TestPOSService_Open(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	tableID := "t1"
	resp, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1", TableID: &tableID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != domain.OrderStatusOpen {
		t.Errorf("expected open status, got %s", resp.Status)
	}
	if f.venueRepo.tables["t1"].Status != domain.TableStatusOccupied {
		t.Error("expected table to be marked occupied")
	}
}

func TestPOSService_Open_VenueNotFound(t *testing.T) {
	f := newPOSFixture()

	_, err := f.svc.Open(context.Background(), "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "missing"})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestPOSService_Open_CrossCompanyVenueHidden(t *testing.T) {
	f := newPOSFixture()

	// The venue exists but belongs to another company
	_, err := f.svc.Open(context.Background(), "c2", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("expected ErrVenueNotFound for cross-company venue, got %v", err)
	}
}

func TestPOSService_AddItem(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := f.svc.AddItem(ctx, "c1", opened.ID, &dto.AddOrderItemRequest{ProductID: "p1", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Total != 75 {
		t.Errorf("expected total 75, got %v", resp.Total)
	}
	if f.productRepo.products["p1"].Stock != 7 {
		t.Errorf("expected stock 7 after consumption, got %d", f.productRepo.products["p1"].Stock)
	}
}

func TestPOSService_AddItem_InsufficientStock(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = f.svc.AddItem(ctx, "c1", opened.ID, &dto.AddOrderItemRequest{ProductID: "p1", Quantity: 11})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if f.productRepo.products["p1"].Stock != 10 {
		t.Errorf("expected stock unchanged, got %d", f.productRepo.products["p1"].Stock)
	}
}

func TestPOSService_Settle(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	tableID := "t1"
	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1", TableID: &tableID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.AddItem(ctx, "c1", opened.ID, &dto.AddOrderItemRequest{ProductID: "p1", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := f.svc.Settle(ctx, "c1", opened.ID, "staff-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != domain.OrderStatusSettled {
		t.Errorf("expected settled status, got %s", resp.Status)
	}
	if resp.SettledAt == nil {
		t.Error("expected settled_at to be set")
	}
	if f.venueRepo.tables["t1"].Status != domain.TableStatusAvailable {
		t.Error("expected table to be released")
	}

	if len(f.txRepo.transactions) != 1 {
		t.Fatalf("expected 1 income transaction, got %d", len(f.txRepo.transactions))
	}
	tx := f.txRepo.transactions[0]
	if tx.Type != domain.TransactionTypeIncome || tx.Amount != 50 {
		t.Errorf("expected income of 50, got %s %v", tx.Type, tx.Amount)
	}
	if tx.OrderID == nil || *tx.OrderID != opened.ID {
		t.Error("expected transaction to reference the settled order")
	}

	events := f.publisher.Events()
	if len(events) != 1 || events[0].Type != event.TypeOrderSettled {
		t.Errorf("expected order.settled event, got %v", events)
	}
}

func TestPOSService_Settle_AlreadySettled(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.Settle(ctx, "c1", opened.ID, "staff-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = f.svc.Settle(ctx, "c1", opened.ID, "staff-1")
	if !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("expected ErrOrderNotOpen, got %v", err)
	}
}

func TestPOSService_Cancel_RestoresStock(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.AddItem(ctx, "c1", opened.ID, &dto.AddOrderItemRequest{ProductID: "p1", Quantity: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := f.svc.Cancel(ctx, "c1", opened.ID, "staff-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled status, got %s", resp.Status)
	}
	if f.productRepo.products["p1"].Stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", f.productRepo.products["p1"].Stock)
	}
	if len(f.txRepo.transactions) != 0 {
		t.Error("expected no transaction for cancelled order")
	}
}

func TestPOSService_GetByID_CrossCompanyHidden(t *testing.T) {
	f := newPOSFixture()
	ctx := context.Background()

	opened, err := f.svc.Open(ctx, "c1", "staff-1", &dto.OpenOrderRequest{VenueID: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = f.svc.GetByID(ctx, "c2", opened.ID)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound for cross-company order, got %v", err)
	}
}
