package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/event"
	"github.com/boring-ventures/billiards-management/internal/repository"
	"github.com/boring-ventures/billiards-management/pkg/logger"
)

var (
	ErrCompanyAlreadyExists = errors.New("company with this slug already exists")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyHasProfiles   = errors.New("company still has assigned profiles")
)

// CompanyService defines the interface for company management operations
type CompanyService interface {
	// Create creates a new company
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error)
	// GetBySlug retrieves a company by slug
	GetBySlug(ctx context.Context, slug string) (*dto.CompanyResponse, error)
	// List retrieves companies with pagination and filters
	List(ctx context.Context, query *dto.ListCompaniesQuery) (*dto.ListCompaniesResponse, error)
	// Update updates a company
	Update(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	// Delete soft deletes a company and deactivates it
	Delete(ctx context.Context, id string) error
	// HardDelete permanently removes a company with no assigned profiles
	HardDelete(ctx context.Context, id string) error
}

// companyService implements CompanyService
type companyService struct {
	companyRepo repository.CompanyRepository
	profileRepo repository.ProfileRepository
	publisher   event.Publisher
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository, profileRepo repository.ProfileRepository, publisher event.Publisher) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

// Create creates a new company
func (s *companyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if valid, errMsg := req.ValidateSlug(); !valid {
		return nil, errors.New(errMsg)
	}

	exists, err := s.companyRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCompanyAlreadyExists
	}

	now := time.Now()
	company := &domain.Company{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Slug:      req.Slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.publish(ctx, event.TypeCompanyCreated, company)

	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// GetByID retrieves a company by ID
func (s *companyService) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// GetBySlug retrieves a company by slug
func (s *companyService) GetBySlug(ctx context.Context, slug string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// List retrieves companies with pagination and filters
func (s *companyService) List(ctx context.Context, query *dto.ListCompaniesQuery) (*dto.ListCompaniesResponse, error) {
	query.SetDefaults()

	companies, totalCount, err := s.companyRepo.List(ctx, query.Page, query.Limit, query.IsActive, query.Search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, dto.ToCompanyResponse(company))
	}

	return &dto.ListCompaniesResponse{
		Companies:  responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// Update updates a company
func (s *companyService) Update(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	wasActive := company.IsActive
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}
	company.UpdatedAt = time.Now()

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	if wasActive && !company.IsActive {
		s.publish(ctx, event.TypeCompanyDeactivated, company)
	}

	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// Delete soft deletes a company and deactivates it
func (s *companyService) Delete(ctx context.Context, id string) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	if err := s.companyRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, event.TypeCompanyDeactivated, company)
	return nil
}

// HardDelete permanently removes a company. The company must have no assigned
// profiles, active or not.
func (s *companyService) HardDelete(ctx context.Context, id string) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	count, err := s.profileRepo.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCompanyHasProfiles
	}

	return s.companyRepo.HardDelete(ctx, id)
}

func (s *companyService) publish(ctx context.Context, eventType string, company *domain.Company) {
	err := s.publisher.Publish(ctx, &event.Event{
		Type:      eventType,
		CompanyID: company.ID,
		Payload: map[string]string{
			"name": company.Name,
			"slug": company.Slug,
		},
	})
	if err != nil {
		logger.ErrorCtx(ctx, "failed to publish company event",
			zap.String("type", eventType),
			zap.String("company_id", company.ID),
			zap.Error(err),
		)
	}
}
