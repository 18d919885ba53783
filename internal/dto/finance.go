package dto

import (
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

// CreateTransactionRequest represents request to record a finance transaction
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required,min=2,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=500"`
}

// TransactionResponse represents finance transaction data in response
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	StaffID     string  `json:"staff_id"`
	OrderID     *string `json:"order_id,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
	CreatedAt   string  `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction to its response form
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		StaffID:     t.StaffID,
		OrderID:     t.OrderID,
		OccurredAt:  t.OccurredAt.Format(time.RFC3339),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

// ListTransactionsQuery represents query parameters for listing transactions.
// From and To are RFC3339 timestamps; To is exclusive.
type ListTransactionsQuery struct {
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Type  string `form:"type" binding:"omitempty,oneof=income expense"`
	From  string `form:"from" binding:"omitempty"`
	To    string `form:"to" binding:"omitempty"`
}

// SetDefaults sets default values for query parameters
func (q *ListTransactionsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ToFilter converts the query into a repository filter, parsing the optional
// date bounds
func (q *ListTransactionsQuery) ToFilter() (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{
		Type:  q.Type,
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

// ListTransactionsResponse represents paginated list of transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalCount   int                   `json:"total_count"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// FinanceSummaryQuery represents query parameters for the category summary
type FinanceSummaryQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// FinanceSummaryResponse represents per-category totals over a date range
type FinanceSummaryResponse struct {
	From       string                       `json:"from"`
	To         string                       `json:"to"`
	Categories []repository.CategorySummary `json:"categories"`
	Income     float64                      `json:"income"`
	Expense    float64                      `json:"expense"`
	Net        float64                      `json:"net"`
}
