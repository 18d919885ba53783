package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileInactive        = errors.New("profile is deactivated")
	ErrRoleRequiresCompany    = errors.New("role requires a company assignment")
)

// TokenConfig holds settings for issued access tokens
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthService defines the interface for authentication and profile management
type AuthService interface {
	// Register creates a new profile with the USER role and no company
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, error)
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// GetProfile retrieves a profile by ID
	GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error)
	// UpdateProfile updates a profile's own fields
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// AssignRole sets a profile's role and company assignment within the
	// acting company scope
	AssignRole(ctx context.Context, companyID, id string, req *dto.AssignRoleRequest) (*dto.ProfileResponse, error)
	// ListByCompany retrieves profiles assigned to a company
	ListByCompany(ctx context.Context, companyID string, query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error)
	// Deactivate marks a profile inactive within the acting company scope
	Deactivate(ctx context.Context, companyID, id string) error
}

// authService implements AuthService
type authService struct {
	profileRepo repository.ProfileRepository
	companyRepo repository.CompanyRepository
	tokens      TokenConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(profileRepo repository.ProfileRepository, companyRepo repository.CompanyRepository, tokens TokenConfig) AuthService {
	return &authService{
		profileRepo: profileRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
	}
}

// Register creates a new profile with the USER role and no company. Role and
// company assignment happen later through AssignRole.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleUser.String(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.ToProfileResponse(profile)
	return &resp, nil
}

// Login verifies credentials and issues an access token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if !profile.IsActive {
		return nil, ErrProfileInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(s.tokens.TTL.Seconds()),
		Profile:     dto.ToProfileResponse(profile),
	}, nil
}

// issueToken signs an HMAC access token carrying the profile's identity, role
// and company assignment. The role claim is the normalized form so downstream
// parsing never sees raw stored values.
func (s *authService) issueToken(profile *domain.Profile) (string, error) {
	now := time.Now()
	companyID := ""
	if profile.CompanyID != nil {
		companyID = *profile.CompanyID
	}

	claims := jwt.MapClaims{
		"user_id":    profile.ID,
		"email":      profile.Email,
		"role":       profile.ParsedRole().String(),
		"company_id": companyID,
		"iss":        s.tokens.Issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(s.tokens.TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

// GetProfile retrieves a profile by ID
func (s *authService) GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	resp := dto.ToProfileResponse(profile)
	return &resp, nil
}

// UpdateProfile updates a profile's own fields
func (s *authService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.ToProfileResponse(profile)
	return &resp, nil
}

// AssignRole sets a profile's role and company assignment. Unknown role
// strings normalize to USER. Every role below SUPERADMIN requires a company;
// the company must exist. Profiles already assigned to another company are
// invisible within the acting scope, and an explicit company request must
// match it.
func (s *authService) AssignRole(ctx context.Context, companyID, id string, req *dto.AssignRoleRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil || (profile.CompanyID != nil && *profile.CompanyID != companyID) {
		return nil, ErrProfileNotFound
	}

	role := domain.ParseRole(req.Role)
	if !role.IsElevated() && req.CompanyID == nil {
		return nil, ErrRoleRequiresCompany
	}

	if req.CompanyID != nil {
		if *req.CompanyID != companyID {
			return nil, ErrCompanyNotFound
		}
		company, err := s.companyRepo.GetByID(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrCompanyNotFound
		}
	}

	profile.Role = role.String()
	profile.CompanyID = req.CompanyID

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.ToProfileResponse(profile)
	return &resp, nil
}

// ListByCompany retrieves profiles assigned to a company
func (s *authService) ListByCompany(ctx context.Context, companyID string, query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error) {
	query.SetDefaults()

	profiles, totalCount, err := s.profileRepo.ListByCompany(ctx, companyID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, dto.ToProfileResponse(profile))
	}

	return &dto.ListProfilesResponse{
		Profiles:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

// Deactivate marks a profile inactive. Profiles outside the acting company
// scope are invisible.
func (s *authService) Deactivate(ctx context.Context, companyID, id string) error {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil || profile.CompanyID == nil || *profile.CompanyID != companyID {
		return ErrProfileNotFound
	}
	return s.profileRepo.Deactivate(ctx, id)
}
