package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Transaction type constants
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a finance ledger entry scoped to a company
type Transaction struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Type        string    `json:"type"` // income, expense
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	StaffID     string    `json:"staff_id"`
	OrderID     *string   `json:"order_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTransaction creates a validated finance transaction
func NewTransaction(companyID, txType, category string, amount float64, staffID string) (*Transaction, error) {
	if companyID == "" {
		return nil, errors.New("company_id is required")
	}
	if txType != TransactionTypeIncome && txType != TransactionTypeExpense {
		return nil, errors.New("type must be income or expense")
	}
	if category == "" {
		return nil, errors.New("category is required")
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if staffID == "" {
		return nil, errors.New("staff_id is required")
	}

	now := time.Now()
	return &Transaction{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Type:       txType,
		Category:   category,
		Amount:     amount,
		StaffID:    staffID,
		OccurredAt: now,
		CreatedAt:  now,
	}, nil
}
