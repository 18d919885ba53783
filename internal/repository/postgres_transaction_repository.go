package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// PostgresTransactionRepository implements TransactionRepository using PostgreSQL
type PostgresTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTransactionRepository creates a new PostgresTransactionRepository
func NewPostgresTransactionRepository(pool *pgxpool.Pool) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{pool: pool}
}

const transactionColumns = `id, company_id, type, category, amount, description, staff_id, order_id, occurred_at, created_at`

// Create creates a new finance transaction
func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := fmt.Sprintf(`
		INSERT INTO transactions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, transactionColumns)

	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.CompanyID,
		tx.Type,
		tx.Category,
		tx.Amount,
		tx.Description,
		tx.StaffID,
		tx.OrderID,
		tx.OccurredAt,
		tx.CreatedAt,
	)
	return err
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	err := row.Scan(
		&tx.ID,
		&tx.CompanyID,
		&tx.Type,
		&tx.Category,
		&tx.Amount,
		&tx.Description,
		&tx.StaffID,
		&tx.OrderID,
		&tx.OccurredAt,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tx, nil
}

// GetByID retrieves a transaction within a company
func (r *PostgresTransactionRepository) GetByID(ctx context.Context, companyID, id string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1 AND company_id = $2`, transactionColumns)
	return scanTransaction(r.pool.QueryRow(ctx, query, id, companyID))
}

// ListByCompany retrieves transactions with optional type and date range filters
func (r *PostgresTransactionRepository) ListByCompany(ctx context.Context, companyID string, filter TransactionFilter) ([]*domain.Transaction, int, error) {
	whereClause := "WHERE company_id = $1"
	args := []interface{}{companyID}
	argIndex := 2

	if filter.Type != "" {
		whereClause += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}
	if filter.From != nil {
		whereClause += fmt.Sprintf(" AND occurred_at >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		whereClause += fmt.Sprintf(" AND occurred_at < $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		%s
		ORDER BY occurred_at DESC
		LIMIT $%d OFFSET $%d
	`, transactionColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx := &domain.Transaction{}
		err := rows.Scan(
			&tx.ID,
			&tx.CompanyID,
			&tx.Type,
			&tx.Category,
			&tx.Amount,
			&tx.Description,
			&tx.StaffID,
			&tx.OrderID,
			&tx.OccurredAt,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		txs = append(txs, tx)
	}

	return txs, totalCount, rows.Err()
}

// SummaryByCategory aggregates amounts per category within a date range
func (r *PostgresTransactionRepository) SummaryByCategory(ctx context.Context, companyID string, from, to time.Time) ([]CategorySummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, type, COALESCE(SUM(amount), 0), COUNT(*)
		FROM transactions
		WHERE company_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY category, type
		ORDER BY category ASC
	`, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]CategorySummary, 0)
	for rows.Next() {
		var s CategorySummary
		if err := rows.Scan(&s.Category, &s.Type, &s.Total, &s.Count); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// SumByTypeSince totals transactions of a type since a point in time
func (r *PostgresTransactionRepository) SumByTypeSince(ctx context.Context, companyID, txType string, since time.Time) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE company_id = $1 AND type = $2 AND occurred_at >= $3
	`, companyID, txType, since).Scan(&total)
	return total, err
}
