package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/dto"
)

func newAuthService() (AuthService, *memProfileRepo, *memCompanyRepo) {
	profileRepo := newMemProfileRepo()
	companyRepo := newMemCompanyRepo()
	svc := NewAuthService(profileRepo, companyRepo, TokenConfig{
		Secret: "test-secret",
		TTL:    15 * time.Minute,
		Issuer: "billiards-management-test",
	})
	return svc, profileRepo, companyRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, profileRepo, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     "staff@example.com",
		Password:  "password123",
		FirstName: "Nok",
		LastName:  "S",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Role != "USER" {
		t.Errorf("expected new profile role USER, got %s", resp.Role)
	}
	if resp.CompanyID != nil {
		t.Error("expected new profile to have no company assignment")
	}

	stored := profileRepo.profiles[resp.ID]
	if stored.PasswordHash == "password123" || stored.PasswordHash == "" {
		t.Error("expected password to be stored hashed")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "a@example.com", Password: "password123", FirstName: "A", LastName: "B"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Errorf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     "staff@example.com",
		Password:  "password123",
		FirstName: "Nok",
		LastName:  "S",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "staff@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != registered.ID {
		t.Errorf("expected user_id claim %s, got %v", registered.ID, claims["user_id"])
	}
	if claims["role"] != "USER" {
		t.Errorf("expected role claim USER, got %v", claims["role"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "staff@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Deactivated(t *testing.T) {
	svc, profileRepo, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	profileRepo.profiles[registered.ID].IsActive = false

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "staff@example.com", Password: "password123"})
	if !errors.Is(err, ErrProfileInactive) {
		t.Errorf("expected ErrProfileInactive, got %v", err)
	}
}

func TestAuthService_AssignRole(t *testing.T) {
	svc, _, companyRepo := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	companyRepo.companies["c1"] = &domain.Company{ID: "c1", Name: "Acme", Slug: "acme", IsActive: true}
	companyID := "c1"

	resp, err := svc.AssignRole(ctx, "c1", registered.ID, &dto.AssignRoleRequest{Role: "admin", CompanyID: &companyID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %s", resp.Role)
	}
	if resp.CompanyID == nil || *resp.CompanyID != "c1" {
		t.Errorf("expected company c1, got %v", resp.CompanyID)
	}
}

func TestAuthService_AssignRole_UnknownRoleFallsBack(t *testing.T) {
	svc, _, companyRepo := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	companyRepo.companies["c1"] = &domain.Company{ID: "c1", Name: "Acme", Slug: "acme", IsActive: true}
	companyID := "c1"

	resp, err := svc.AssignRole(ctx, "c1", registered.ID, &dto.AssignRoleRequest{Role: "owner", CompanyID: &companyID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != "USER" {
		t.Errorf("expected unknown role to normalize to USER, got %s", resp.Role)
	}
}

func TestAuthService_AssignRole_RequiresCompany(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.AssignRole(ctx, "c1", registered.ID, &dto.AssignRoleRequest{Role: "staff"})
	if !errors.Is(err, ErrRoleRequiresCompany) {
		t.Errorf("expected ErrRoleRequiresCompany, got %v", err)
	}

	// Superadmin needs no company
	resp, err := svc.AssignRole(ctx, "c1", registered.ID, &dto.AssignRoleRequest{Role: "superadmin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != "SUPERADMIN" {
		t.Errorf("expected SUPERADMIN, got %s", resp.Role)
	}
}

func TestAuthService_AssignRole_CompanyMustExist(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "staff@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	companyID := "missing"
	_, err = svc.AssignRole(ctx, "missing", registered.ID, &dto.AssignRoleRequest{Role: "staff", CompanyID: &companyID})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestAuthService_AssignRole_CrossCompanyInvisible(t *testing.T) {
	svc, profileRepo, companyRepo := newAuthService()
	ctx := context.Background()

	companyRepo.companies["c1"] = &domain.Company{ID: "c1", Name: "Acme", Slug: "acme", IsActive: true}
	companyRepo.companies["c2"] = &domain.Company{ID: "c2", Name: "Beta", Slug: "beta", IsActive: true}
	profileRepo.profiles["p1"] = profileForCompany("p1", "c2")

	companyID := "c1"
	_, err := svc.AssignRole(ctx, "c1", "p1", &dto.AssignRoleRequest{Role: "staff", CompanyID: &companyID})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for profile of another company, got %v", err)
	}
}

func TestAuthService_Deactivate_Scoped(t *testing.T) {
	svc, profileRepo, _ := newAuthService()
	ctx := context.Background()

	profileRepo.profiles["p1"] = profileForCompany("p1", "c1")

	if err := svc.Deactivate(ctx, "c2", "p1"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for cross-company deactivate, got %v", err)
	}

	if err := svc.Deactivate(ctx, "c1", "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profileRepo.profiles["p1"].IsActive {
		t.Error("expected profile inactive after deactivate")
	}
}
