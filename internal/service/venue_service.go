package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrTableNotFound = errors.New("table not found")
)

// VenueService defines the interface for venue and table management. Every
// operation takes the effective company id resolved by the scope middleware.
type VenueService interface {
	// Create creates a new venue for a company
	Create(ctx context.Context, companyID string, req *dto.CreateVenueRequest) (*dto.VenueResponse, error)
	// GetByID retrieves a venue by ID
	GetByID(ctx context.Context, companyID, id string) (*dto.VenueResponse, error)
	// List retrieves a company's venues with pagination
	List(ctx context.Context, companyID string, query *dto.ListVenuesQuery) (*dto.ListVenuesResponse, error)
	// Update updates a venue
	Update(ctx context.Context, companyID, id string, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error)
	// Delete soft deletes a venue
	Delete(ctx context.Context, companyID, id string) error

	// CreateTable adds a billiard table to a venue
	CreateTable(ctx context.Context, companyID, venueID string, req *dto.CreateTableRequest) (*dto.TableResponse, error)
	// ListTables retrieves all tables of a venue
	ListTables(ctx context.Context, companyID, venueID string) ([]dto.TableResponse, error)
	// UpdateTableStatus transitions a table's status
	UpdateTableStatus(ctx context.Context, companyID, tableID string, req *dto.UpdateTableStatusRequest) (*dto.TableResponse, error)
}

// venueService implements VenueService
type venueService struct {
	venueRepo repository.VenueRepository
}

// NewVenueService creates a new VenueService
func NewVenueService(venueRepo repository.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

// Create creates a new venue for a company
func (s *venueService) Create(ctx context.Context, companyID string, req *dto.CreateVenueRequest) (*dto.VenueResponse, error) {
	now := time.Now()
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	resp := dto.ToVenueResponse(venue)
	return &resp, nil
}

// GetByID retrieves a venue by ID
func (s *venueService) GetByID(ctx context.Context, companyID, id string) (*dto.VenueResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}
	resp := dto.ToVenueResponse(venue)
	return &resp, nil
}

// List retrieves a company's venues with pagination
func (s *venueService) List(ctx context.Context, companyID string, query *dto.ListVenuesQuery) (*dto.ListVenuesResponse, error) {
	query.SetDefaults()

	venues, totalCount, err := s.venueRepo.ListByCompany(ctx, companyID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VenueResponse, 0, len(venues))
	for _, venue := range venues {
		responses = append(responses, dto.ToVenueResponse(venue))
	}

	return &dto.ListVenuesResponse{
		Venues:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// Update updates a venue
func (s *venueService) Update(ctx context.Context, companyID, id string, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	venue, err := s.venueRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}
	venue.UpdatedAt = time.Now()

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}

	resp := dto.ToVenueResponse(venue)
	return &resp, nil
}

// Delete soft deletes a venue
func (s *venueService) Delete(ctx context.Context, companyID, id string) error {
	venue, err := s.venueRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if venue == nil {
		return ErrVenueNotFound
	}
	return s.venueRepo.SoftDelete(ctx, companyID, id)
}

// CreateTable adds a billiard table to a venue
func (s *venueService) CreateTable(ctx context.Context, companyID, venueID string, req *dto.CreateTableRequest) (*dto.TableResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, companyID, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	now := time.Now()
	table := &domain.Table{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		VenueID:    venueID,
		Number:     req.Number,
		HourlyRate: req.HourlyRate,
		Status:     domain.TableStatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.venueRepo.CreateTable(ctx, table); err != nil {
		return nil, err
	}

	resp := dto.ToTableResponse(table)
	return &resp, nil
}

// ListTables retrieves all tables of a venue
func (s *venueService) ListTables(ctx context.Context, companyID, venueID string) ([]dto.TableResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, companyID, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	tables, err := s.venueRepo.ListTablesByVenue(ctx, companyID, venueID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TableResponse, 0, len(tables))
	for _, table := range tables {
		responses = append(responses, dto.ToTableResponse(table))
	}
	return responses, nil
}

// UpdateTableStatus transitions a table's status
func (s *venueService) UpdateTableStatus(ctx context.Context, companyID, tableID string, req *dto.UpdateTableStatusRequest) (*dto.TableResponse, error) {
	table, err := s.venueRepo.GetTableByID(ctx, companyID, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	if err := s.venueRepo.UpdateTableStatus(ctx, companyID, tableID, req.Status); err != nil {
		return nil, err
	}

	table.Status = req.Status
	table.UpdatedAt = time.Now()
	resp := dto.ToTableResponse(table)
	return &resp, nil
}
