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

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

const productColumns = `id, company_id, name, sku, COALESCE(category, '') as category,
	price, stock, low_stock_threshold, is_active, created_at, updated_at, deleted_at`

// Create creates a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, company_id, name, sku, category, price, stock,
			low_stock_threshold, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.CompanyID,
		product.Name,
		product.SKU,
		nullStringOrValue(product.Category),
		product.Price,
		product.Stock,
		product.LowStockThreshold,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	return err
}

// GetByID retrieves a product by ID within a company
func (r *PostgresProductRepository) GetByID(ctx context.Context, companyID, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`, productColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id, companyID))
}

func (r *PostgresProductRepository) scanOne(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.CompanyID,
		&product.Name,
		&product.SKU,
		&product.Category,
		&product.Price,
		&product.Stock,
		&product.LowStockThreshold,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// List retrieves a company's products with pagination and filters
func (r *PostgresProductRepository) List(ctx context.Context, companyID string, page, limit int, activeOnly bool, search string) ([]*domain.Product, int, error) {
	whereClause := "WHERE company_id = $1 AND deleted_at IS NULL"
	args := []interface{}{companyID}
	argIndex := 2

	if activeOnly {
		whereClause += " AND is_active = true"
	}

	if search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s FROM products
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.CompanyID,
			&product.Name,
			&product.SKU,
			&product.Category,
			&product.Price,
			&product.Stock,
			&product.LowStockThreshold,
			&product.IsActive,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	return products, totalCount, rows.Err()
}

// Update updates a product
func (r *PostgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $3, sku = $4, category = $5, price = $6,
			low_stock_threshold = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	product.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.CompanyID,
		product.Name,
		product.SKU,
		nullStringOrValue(product.Category),
		product.Price,
		product.LowStockThreshold,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a product
func (r *PostgresProductRepository) SoftDelete(ctx context.Context, companyID, id string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE products SET deleted_at = $3 WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID, time.Now(),
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	return nil
}

// AdjustStock atomically applies a stock delta. The guard in the WHERE clause
// rejects adjustments that would take stock negative without a separate read.
func (r *PostgresProductRepository) AdjustStock(ctx context.Context, companyID, id string, delta int) (*domain.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET stock = stock + $3, updated_at = $4
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL AND stock + $3 >= 0
		RETURNING %s
	`, productColumns)

	product, err := r.scanOne(r.pool.QueryRow(ctx, query, id, companyID, delta, time.Now()))
	if err != nil {
		return nil, err
	}
	if product == nil {
		// Distinguish a missing product from a stock underflow
		existing, err := r.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		return nil, ErrInsufficientStock
	}
	return product, nil
}

// RecordMovement persists a stock movement entry
func (r *PostgresProductRepository) RecordMovement(ctx context.Context, movement *domain.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, company_id, product_id, delta, reason, staff_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		movement.ID,
		movement.CompanyID,
		movement.ProductID,
		movement.Delta,
		movement.Reason,
		movement.StaffID,
		movement.CreatedAt,
	)
	return err
}

// CountLowStock counts active products at or below their low-stock threshold
func (r *PostgresProductRepository) CountLowStock(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM products
		WHERE company_id = $1 AND deleted_at IS NULL AND is_active = true
		  AND stock <= low_stock_threshold
	`, companyID).Scan(&count)
	return count, err
}
