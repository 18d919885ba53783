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

// PostgresProfileRepository implements ProfileRepository using PostgreSQL
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

const profileColumns = `id, email, password_hash, first_name, last_name, role, company_id, is_active, created_at, updated_at`

// Create creates a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, first_name, last_name, role, company_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FirstName,
		profile.LastName,
		profile.Role,
		profile.CompanyID,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a profile by email
func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE email = $1`, profileColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *PostgresProfileRepository) scanOne(row pgx.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FirstName,
		&profile.LastName,
		&profile.Role,
		&profile.CompanyID,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// ListByCompany retrieves profiles assigned to a company with pagination
func (r *PostgresProfileRepository) ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.Profile, int, error) {
	var totalCount int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE company_id = $1`, companyID,
	).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s FROM profiles
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, profileColumns)

	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile := &domain.Profile{}
		err := rows.Scan(
			&profile.ID,
			&profile.Email,
			&profile.PasswordHash,
			&profile.FirstName,
			&profile.LastName,
			&profile.Role,
			&profile.CompanyID,
			&profile.IsActive,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, totalCount, rows.Err()
}

// Update updates a profile's mutable fields
func (r *PostgresProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $2, last_name = $3, role = $4, company_id = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`
	profile.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.FirstName,
		profile.LastName,
		profile.Role,
		profile.CompanyID,
		profile.IsActive,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}

// Deactivate marks a profile inactive
func (r *PostgresProfileRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE profiles SET is_active = false, updated_at = $2 WHERE id = $1`,
		id, time.Now(),
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}

// CountByCompany counts profiles assigned to a company
func (r *PostgresProfileRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE company_id = $1`, companyID,
	).Scan(&count)
	return count, err
}
