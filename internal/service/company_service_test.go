package service

import (
	"context"
	"errors"
	"testing"

	"github.com/boring-ventures/billiards-management/internal/dto"
	"github.com/boring-ventures/billiards-management/internal/event"
)

func newCompanyService() (CompanyService, *memCompanyRepo, *memProfileRepo, *event.MemoryPublisher) {
	companyRepo := newMemCompanyRepo()
	profileRepo := newMemProfileRepo()
	publisher := event.NewMemoryPublisher()
	svc := NewCompanyService(companyRepo, profileRepo, publisher)
	return svc, companyRepo, profileRepo, publisher
}

func TestCompanyService_Create(t *testing.T) {
	svc, _, _, publisher := newCompanyService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme Billiards", Slug: "acme-billiards"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Slug != "acme-billiards" {
		t.Errorf("expected slug acme-billiards, got %s", resp.Slug)
	}
	if !resp.IsActive {
		t.Error("expected new company to be active")
	}

	events := publisher.Events()
	if len(events) != 1 || events[0].Type != event.TypeCompanyCreated {
		t.Errorf("expected one company.created event, got %v", events)
	}
}

func TestCompanyService_Create_DuplicateSlug(t *testing.T) {
	svc, _, _, _ := newCompanyService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme", Slug: "acme"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Other", Slug: "acme"})
	if !errors.Is(err, ErrCompanyAlreadyExists) {
		t.Errorf("expected ErrCompanyAlreadyExists, got %v", err)
	}
}

func TestCompanyService_Create_InvalidSlug(t *testing.T) {
	svc, _, _, _ := newCompanyService()

	_, err := svc.Create(context.Background(), &dto.CreateCompanyRequest{Name: "Acme", Slug: "Not A Slug"})
	if err == nil {
		t.Fatal("expected slug validation error")
	}
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newCompanyService()

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyService_Update_DeactivationEvent(t *testing.T) {
	svc, _, _, publisher := newCompanyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inactive := false
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateCompanyRequest{IsActive: &inactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Error("expected company to be inactive after update")
	}

	events := publisher.Events()
	if len(events) != 2 || events[1].Type != event.TypeCompanyDeactivated {
		t.Errorf("expected company.deactivated event, got %v", events)
	}
}

func TestCompanyService_Delete(t *testing.T) {
	svc, companyRepo, _, _ := newCompanyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := companyRepo.companies[created.ID]
	if stored.DeletedAt == nil || stored.IsActive {
		t.Error("expected soft deleted company to be inactive with deleted_at set")
	}
}

func TestCompanyService_HardDelete_WithProfiles(t *testing.T) {
	svc, _, profileRepo, _ := newCompanyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	companyID := created.ID
	profileRepo.profiles["p1"] = profileForCompany("p1", companyID)

	err = svc.HardDelete(ctx, companyID)
	if !errors.Is(err, ErrCompanyHasProfiles) {
		t.Errorf("expected ErrCompanyHasProfiles, got %v", err)
	}
}

func TestCompanyService_HardDelete_Empty(t *testing.T) {
	svc, companyRepo, _, _ := newCompanyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateCompanyRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.HardDelete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := companyRepo.companies[created.ID]; ok {
		t.Error("expected company to be removed")
	}
}
