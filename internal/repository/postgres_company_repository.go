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

// PostgresCompanyRepository implements CompanyRepository using PostgreSQL
type PostgresCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompanyRepository creates a new PostgresCompanyRepository
func NewPostgresCompanyRepository(pool *pgxpool.Pool) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{pool: pool}
}

// Create creates a new company
func (r *PostgresCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, name, slug, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		company.ID,
		company.Name,
		company.Slug,
		company.IsActive,
		company.CreatedAt,
		company.UpdatedAt,
	)
	return err
}

// GetByID retrieves a company by ID
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `
		SELECT id, name, slug, is_active, created_at, updated_at, deleted_at
		FROM companies
		WHERE id = $1 AND deleted_at IS NULL
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a company by slug
func (r *PostgresCompanyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	query := `
		SELECT id, name, slug, is_active, created_at, updated_at, deleted_at
		FROM companies
		WHERE slug = $1 AND deleted_at IS NULL
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *PostgresCompanyRepository) scanOne(row pgx.Row) (*domain.Company, error) {
	company := &domain.Company{}
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Slug,
		&company.IsActive,
		&company.CreatedAt,
		&company.UpdatedAt,
		&company.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

// List retrieves companies with pagination and filters
func (r *PostgresCompanyRepository) List(ctx context.Context, page, limit int, isActive *bool, search string) ([]*domain.Company, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if isActive != nil {
		whereClause += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *isActive)
		argIndex++
	}

	if search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR slug ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM companies %s", whereClause)
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT id, name, slug, is_active, created_at, updated_at, deleted_at
		FROM companies
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

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Slug,
			&company.IsActive,
			&company.CreatedAt,
			&company.UpdatedAt,
			&company.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}

	return companies, totalCount, rows.Err()
}

// Update updates a company
func (r *PostgresCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`
	company.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		company.ID,
		company.Name,
		company.IsActive,
		company.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("company not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a company by setting deleted_at
func (r *PostgresCompanyRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE companies
		SET deleted_at = $2, is_active = false
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("company not found or already deleted")
	}

	return nil
}

// HardDelete permanently removes a company row
func (r *PostgresCompanyRepository) HardDelete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("company not found")
	}

	return nil
}

// ExistsBySlug checks if a company exists with the given slug
func (r *PostgresCompanyRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE slug = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}
