package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// Create creates an order together with any initial items in one transaction
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, company_id, venue_id, table_id, staff_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		order.ID,
		order.CompanyID,
		order.VenueID,
		order.TableID,
		order.StaffID,
		order.Status,
		order.Total,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for i := range order.Items {
		if err := insertItem(ctx, tx, &order.Items[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertItem(ctx context.Context, tx pgx.Tx, item *domain.OrderItem) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		item.ID,
		item.OrderID,
		item.ProductID,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.Subtotal,
	)
	return err
}

// GetByID retrieves an order with its items within a company
func (r *PostgresOrderRepository) GetByID(ctx context.Context, companyID, id string) (*domain.Order, error) {
	query := `
		SELECT id, company_id, venue_id, table_id, staff_id, status, total,
		       created_at, updated_at, settled_at
		FROM orders
		WHERE id = $1 AND company_id = $2
	`
	order := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, id, companyID).Scan(
		&order.ID,
		&order.CompanyID,
		&order.VenueID,
		&order.TableID,
		&order.StaffID,
		&order.Status,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *PostgresOrderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, product_id, name, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListByCompany retrieves orders with optional status filter and pagination.
// Items are not loaded for list views.
func (r *PostgresOrderRepository) ListByCompany(ctx context.Context, companyID, status string, page, limit int) ([]*domain.Order, int, error) {
	whereClause := "WHERE company_id = $1"
	args := []interface{}{companyID}
	argIndex := 2

	if status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders %s", whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT id, company_id, venue_id, table_id, staff_id, status, total,
		       created_at, updated_at, settled_at
		FROM orders
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.CompanyID,
			&order.VenueID,
			&order.TableID,
			&order.StaffID,
			&order.Status,
			&order.Total,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.SettledAt,
		)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, totalCount, rows.Err()
}

// AddItem appends a line item and updates the order total in one transaction
func (r *PostgresOrderRepository) AddItem(ctx context.Context, order *domain.Order, item *domain.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertItem(ctx, tx, item); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE orders SET total = $3, updated_at = $4
		WHERE id = $1 AND company_id = $2 AND status = 'open'
	`, order.ID, order.CompanyID, order.Total, order.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found or not open")
	}

	return tx.Commit(ctx)
}

// UpdateStatus transitions an order's status
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, order *domain.Order) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $3, total = $4, updated_at = $5, settled_at = $6
		WHERE id = $1 AND company_id = $2
	`,
		order.ID,
		order.CompanyID,
		order.Status,
		order.Total,
		order.UpdatedAt,
		order.SettledAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found")
	}

	return nil
}

// CountOpen counts a company's open orders
func (r *PostgresOrderRepository) CountOpen(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE company_id = $1 AND status = 'open'`,
		companyID,
	).Scan(&count)
	return count, err
}
