package service

import (
	"context"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

// DashboardService assembles the operational snapshot for one company
type DashboardService interface {
	// Snapshot returns current counters and today's money flow
	Snapshot(ctx context.Context, companyID string) (*dto.DashboardResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	orderRepo       repository.OrderRepository
	venueRepo       repository.VenueRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	orderRepo repository.OrderRepository,
	venueRepo repository.VenueRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
) DashboardService {
	return &dashboardService{
		orderRepo:       orderRepo,
		venueRepo:       venueRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
	}
}

// Snapshot returns current counters and today's money flow. "Today" starts at
// local midnight.
func (s *dashboardService) Snapshot(ctx context.Context, companyID string) (*dto.DashboardResponse, error) {
	openOrders, err := s.orderRepo.CountOpen(ctx, companyID)
	if err != nil {
		return nil, err
	}

	available, err := s.venueRepo.CountTablesByStatus(ctx, companyID, domain.TableStatusAvailable)
	if err != nil {
		return nil, err
	}
	occupied, err := s.venueRepo.CountTablesByStatus(ctx, companyID, domain.TableStatusOccupied)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	income, err := s.transactionRepo.SumByTypeSince(ctx, companyID, domain.TransactionTypeIncome, midnight)
	if err != nil {
		return nil, err
	}
	expense, err := s.transactionRepo.SumByTypeSince(ctx, companyID, domain.TransactionTypeExpense, midnight)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		CompanyID:       companyID,
		OpenOrders:      openOrders,
		TablesAvailable: available,
		TablesOccupied:  occupied,
		LowStockCount:   lowStock,
		IncomeToday:     income,
		ExpenseToday:    expense,
		GeneratedAt:     now.Format(time.RFC3339),
	}, nil
}
