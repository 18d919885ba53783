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
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

// FinanceService defines the interface for finance transaction operations.
// Every operation takes the effective company id resolved by the scope
// middleware.
type FinanceService interface {
	// Create records a finance transaction
	Create(ctx context.Context, companyID, staffID string, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, companyID, id string) (*dto.TransactionResponse, error)
	// List retrieves transactions with filters
	List(ctx context.Context, companyID string, query *dto.ListTransactionsQuery) (*dto.ListTransactionsResponse, error)
	// Summary aggregates per-category totals over a date range
	Summary(ctx context.Context, companyID string, query *dto.FinanceSummaryQuery) (*dto.FinanceSummaryResponse, error)
}

// financeService implements FinanceService
type financeService struct {
	transactionRepo repository.TransactionRepository
	publisher       event.Publisher
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(transactionRepo repository.TransactionRepository, publisher event.Publisher) FinanceService {
	return &financeService{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// Create records a finance transaction
func (s *financeService) Create(ctx context.Context, companyID, staffID string, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := domain.NewTransaction(companyID, req.Type, req.Category, req.Amount, staffID)
	if err != nil {
		return nil, err
	}
	tx.Description = req.Description

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	pubErr := s.publisher.Publish(ctx, &event.Event{
		Type:      event.TypeTransactionCreated,
		CompanyID: companyID,
		Payload: map[string]interface{}{
			"transaction_id": tx.ID,
			"type":           tx.Type,
			"category":       tx.Category,
			"amount":         tx.Amount,
		},
	})
	if pubErr != nil {
		logger.ErrorCtx(ctx, "failed to publish transaction event",
			zap.String("transaction_id", tx.ID),
			zap.Error(pubErr),
		)
	}

	resp := dto.ToTransactionResponse(tx)
	return &resp, nil
}

// GetByID retrieves a transaction by ID
func (s *financeService) GetByID(ctx context.Context, companyID, id string) (*dto.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	resp := dto.ToTransactionResponse(tx)
	return &resp, nil
}

// List retrieves transactions with filters
func (s *financeService) List(ctx context.Context, companyID string, query *dto.ListTransactionsQuery) (*dto.ListTransactionsResponse, error) {
	query.SetDefaults()

	filter, err := query.ToFilter()
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	txs, totalCount, err := s.transactionRepo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, dto.ToTransactionResponse(tx))
	}

	return &dto.ListTransactionsResponse{
		Transactions: responses,
		TotalCount:   totalCount,
		Page:         query.Page,
		Limit:        query.Limit,
		TotalPages:   int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// Summary aggregates per-category totals over a date range. The upper bound
// is exclusive.
func (s *financeService) Summary(ctx context.Context, companyID string, query *dto.FinanceSummaryQuery) (*dto.FinanceSummaryResponse, error) {
	from, err := time.Parse(time.RFC3339, query.From)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	to, err := time.Parse(time.RFC3339, query.To)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}

	categories, err := s.transactionRepo.SummaryByCategory(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	var income, expense float64
	for _, c := range categories {
		switch c.Type {
		case domain.TransactionTypeIncome:
			income += c.Total
		case domain.TransactionTypeExpense:
			expense += c.Total
		}
	}

	return &dto.FinanceSummaryResponse{
		From:       from.Format(time.RFC3339),
		To:         to.Format(time.RFC3339),
		Categories: categories,
		Income:     income,
		Expense:    expense,
		Net:        income - expense,
	}, nil
}
