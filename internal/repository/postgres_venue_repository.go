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

// PostgresVenueRepository implements VenueRepository using PostgreSQL
type PostgresVenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueRepository creates a new PostgresVenueRepository
func NewPostgresVenueRepository(pool *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{pool: pool}
}

// Create creates a new venue
func (r *PostgresVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (id, company_id, name, address, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		venue.ID,
		venue.CompanyID,
		venue.Name,
		venue.Address,
		nullStringOrValue(venue.Phone),
		venue.IsActive,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	return err
}

// GetByID retrieves a venue by ID within a company
func (r *PostgresVenueRepository) GetByID(ctx context.Context, companyID, id string) (*domain.Venue, error) {
	query := `
		SELECT id, company_id, name, address, COALESCE(phone, '') as phone,
		       is_active, created_at, updated_at, deleted_at
		FROM venues
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	venue := &domain.Venue{}
	err := r.pool.QueryRow(ctx, query, id, companyID).Scan(
		&venue.ID,
		&venue.CompanyID,
		&venue.Name,
		&venue.Address,
		&venue.Phone,
		&venue.IsActive,
		&venue.CreatedAt,
		&venue.UpdatedAt,
		&venue.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return venue, nil
}

// ListByCompany retrieves a company's venues with pagination
func (r *PostgresVenueRepository) ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.Venue, int, error) {
	var totalCount int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM venues WHERE company_id = $1 AND deleted_at IS NULL`, companyID,
	).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `
		SELECT id, company_id, name, address, COALESCE(phone, '') as phone,
		       is_active, created_at, updated_at, deleted_at
		FROM venues
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue := &domain.Venue{}
		err := rows.Scan(
			&venue.ID,
			&venue.CompanyID,
			&venue.Name,
			&venue.Address,
			&venue.Phone,
			&venue.IsActive,
			&venue.CreatedAt,
			&venue.UpdatedAt,
			&venue.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		venues = append(venues, venue)
	}

	return venues, totalCount, rows.Err()
}

// Update updates a venue
func (r *PostgresVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $3, address = $4, phone = $5, is_active = $6, updated_at = $7
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	venue.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		venue.ID,
		venue.CompanyID,
		venue.Name,
		venue.Address,
		nullStringOrValue(venue.Phone),
		venue.IsActive,
		venue.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a venue
func (r *PostgresVenueRepository) SoftDelete(ctx context.Context, companyID, id string) error {
	query := `
		UPDATE venues
		SET deleted_at = $3
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, companyID, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue not found or already deleted")
	}

	return nil
}

// CreateTable creates a billiard table within a venue
func (r *PostgresVenueRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	query := `
		INSERT INTO tables (id, company_id, venue_id, number, hourly_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		table.ID,
		table.CompanyID,
		table.VenueID,
		table.Number,
		table.HourlyRate,
		table.Status,
		table.CreatedAt,
		table.UpdatedAt,
	)
	return err
}

// GetTableByID retrieves a table by ID within a company
func (r *PostgresVenueRepository) GetTableByID(ctx context.Context, companyID, id string) (*domain.Table, error) {
	query := `
		SELECT id, company_id, venue_id, number, hourly_rate, status, created_at, updated_at
		FROM tables
		WHERE id = $1 AND company_id = $2
	`
	table := &domain.Table{}
	err := r.pool.QueryRow(ctx, query, id, companyID).Scan(
		&table.ID,
		&table.CompanyID,
		&table.VenueID,
		&table.Number,
		&table.HourlyRate,
		&table.Status,
		&table.CreatedAt,
		&table.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return table, nil
}

// ListTablesByVenue retrieves all tables of a venue
func (r *PostgresVenueRepository) ListTablesByVenue(ctx context.Context, companyID, venueID string) ([]*domain.Table, error) {
	query := `
		SELECT id, company_id, venue_id, number, hourly_rate, status, created_at, updated_at
		FROM tables
		WHERE company_id = $1 AND venue_id = $2
		ORDER BY number ASC
	`
	rows, err := r.pool.Query(ctx, query, companyID, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table := &domain.Table{}
		err := rows.Scan(
			&table.ID,
			&table.CompanyID,
			&table.VenueID,
			&table.Number,
			&table.HourlyRate,
			&table.Status,
			&table.CreatedAt,
			&table.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

// UpdateTableStatus transitions a table's status
func (r *PostgresVenueRepository) UpdateTableStatus(ctx context.Context, companyID, id, status string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE tables SET status = $3, updated_at = $4 WHERE id = $1 AND company_id = $2`,
		id, companyID, status, time.Now(),
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table not found")
	}

	return nil
}

// CountTablesByStatus counts a company's tables in the given status
func (r *PostgresVenueRepository) CountTablesByStatus(ctx context.Context, companyID, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tables WHERE company_id = $1 AND status = $2`,
		companyID, status,
	).Scan(&count)
	return count, err
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
