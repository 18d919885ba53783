package service

import (
	"context"
	"testing"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

func TestDashboardService_Snapshot(t *testing.T) {
	orderRepo := newMemOrderRepo()
	venueRepo := newMemVenueRepo()
	productRepo := newMemProductRepo()
	txRepo := newMemTransactionRepo()
	svc := NewDashboardService(orderRepo, venueRepo, productRepo, txRepo)

	orderRepo.orders["o1"] = &domain.Order{ID: "o1", CompanyID: "c1", Status: domain.OrderStatusOpen}
	orderRepo.orders["o2"] = &domain.Order{ID: "o2", CompanyID: "c1", Status: domain.OrderStatusSettled}
	orderRepo.orders["o3"] = &domain.Order{ID: "o3", CompanyID: "c2", Status: domain.OrderStatusOpen}

	venueRepo.tables["t1"] = &domain.Table{ID: "t1", CompanyID: "c1", Status: domain.TableStatusAvailable}
	venueRepo.tables["t2"] = &domain.Table{ID: "t2", CompanyID: "c1", Status: domain.TableStatusOccupied}
	venueRepo.tables["t3"] = &domain.Table{ID: "t3", CompanyID: "c1", Status: domain.TableStatusMaintenance}

	productRepo.products["p1"] = &domain.Product{ID: "p1", CompanyID: "c1", Stock: 1, LowStockThreshold: 2, IsActive: true}
	productRepo.products["p2"] = &domain.Product{ID: "p2", CompanyID: "c1", Stock: 50, LowStockThreshold: 2, IsActive: true}

	now := time.Now()
	txRepo.transactions = []*domain.Transaction{
		{ID: "x1", CompanyID: "c1", Type: domain.TransactionTypeIncome, Amount: 200, OccurredAt: now},
		{ID: "x2", CompanyID: "c1", Type: domain.TransactionTypeExpense, Amount: 80, OccurredAt: now},
		{ID: "x3", CompanyID: "c1", Type: domain.TransactionTypeIncome, Amount: 999, OccurredAt: now.Add(-48 * time.Hour)},
		{ID: "x4", CompanyID: "c2", Type: domain.TransactionTypeIncome, Amount: 777, OccurredAt: now},
	}

	resp, err := svc.Snapshot(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.OpenOrders != 1 {
		t.Errorf("expected 1 open order, got %d", resp.OpenOrders)
	}
	if resp.TablesAvailable != 1 || resp.TablesOccupied != 1 {
		t.Errorf("unexpected table counts: available=%d occupied=%d", resp.TablesAvailable, resp.TablesOccupied)
	}
	if resp.LowStockCount != 1 {
		t.Errorf("expected 1 low stock product, got %d", resp.LowStockCount)
	}
	if resp.IncomeToday != 200 || resp.ExpenseToday != 80 {
		t.Errorf("unexpected money flow: income=%v expense=%v", resp.IncomeToday, resp.ExpenseToday)
	}
}
