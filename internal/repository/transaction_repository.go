package repository

import (
	"context"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// TransactionFilter narrows finance transaction listings
type TransactionFilter struct {
	Type  string
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// CategorySummary aggregates transaction amounts per category
type CategorySummary struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// TransactionRepository defines data access for finance transactions
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, companyID, id string) (*domain.Transaction, error)
	ListByCompany(ctx context.Context, companyID string, filter TransactionFilter) ([]*domain.Transaction, int, error)
	SummaryByCategory(ctx context.Context, companyID string, from, to time.Time) ([]CategorySummary, error)
	SumByTypeSince(ctx context.Context, companyID, txType string, since time.Time) (float64, error)
}
