// Package scope decides which company an authenticated principal is
// authorized to act upon for a single request.
package scope

import (
	"context"
	"fmt"

	"github.com/boring-ventures/billiards-management/internal/domain"
)

// DenialReason names an expected authorization-negative outcome. Denials are
// values, not errors: infrastructure failures are returned separately and must
// be treated as retryable by callers.
type DenialReason string

const (
	// DenialNoCompanyAssigned - principal has no home company and is not elevated
	DenialNoCompanyAssigned DenialReason = "NO_TENANT_ASSIGNED"
	// DenialForbiddenCrossCompany - non-elevated principal requested a company other than its own
	DenialForbiddenCrossCompany DenialReason = "FORBIDDEN_CROSS_TENANT"
	// DenialCompanyNotFound - requested company id does not exist
	DenialCompanyNotFound DenialReason = "TENANT_NOT_FOUND"
	// DenialCompanyInactive - requested company exists but is deactivated
	DenialCompanyInactive DenialReason = "TENANT_INACTIVE"
	// DenialNoCompanySelected - elevated principal with no home company and no
	// explicit request; recoverable, callers should prompt for selection
	DenialNoCompanySelected DenialReason = "NO_TENANT_SELECTED"
)

// Recoverable reports whether the denial should be surfaced as a selection
// prompt rather than an access failure
func (r DenialReason) Recoverable() bool {
	return r == DenialNoCompanySelected
}

// Principal carries the identity attributes the resolver decides on. It is
// passed explicitly by callers; the resolver never reads ambient request state.
type Principal struct {
	ID        string
	Role      domain.Role
	CompanyID *string // home company assignment, nil when unassigned
}

// Scope is the resolver's decision: either a single authorized company id or
// a named denial. The zero value is not meaningful; construct via Allowed or
// Denied.
type Scope struct {
	CompanyID string
	Denied    bool
	Reason    DenialReason
}

// Allowed constructs an authorized scope for the given company id
func Allowed(companyID string) Scope {
	return Scope{CompanyID: companyID}
}

// Denied constructs a denial with the given reason
func Denied(reason DenialReason) Scope {
	return Scope{Denied: true, Reason: reason}
}

// CompanyDirectory is the single read the resolver may perform. GetByID
// returns nil (with nil error) when no company exists with the given id; the
// returned record is one consistent snapshot of the row.
type CompanyDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
}

// Resolver computes the effective company scope for a request. It is
// stateless and safe for concurrent use.
type Resolver struct {
	companies CompanyDirectory
}

// NewResolver creates a Resolver backed by the given company directory
func NewResolver(companies CompanyDirectory) *Resolver {
	return &Resolver{companies: companies}
}

// Resolve computes the single company id this request may operate against.
//
// Non-elevated principals always resolve to their own assignment and never
// touch the directory. Superadmins may select any active company explicitly;
// with no explicit request they default to their home assignment, and with
// neither the result is a recoverable NO_TENANT_SELECTED denial.
//
// requestedCompanyID is a selector, never an authorization input; the empty
// string means no explicit request. The returned error carries only
// infrastructure failures from the directory lookup and is never a denial.
func (r *Resolver) Resolve(ctx context.Context, p Principal, requestedCompanyID string) (Scope, error) {
	if !p.Role.IsElevated() {
		if p.CompanyID == nil || *p.CompanyID == "" {
			return Denied(DenialNoCompanyAssigned), nil
		}
		if requestedCompanyID != "" && requestedCompanyID != *p.CompanyID {
			return Denied(DenialForbiddenCrossCompany), nil
		}
		return Allowed(*p.CompanyID), nil
	}

	if requestedCompanyID != "" {
		company, err := r.companies.GetByID(ctx, requestedCompanyID)
		if err != nil {
			return Scope{}, fmt.Errorf("company lookup failed: %w", err)
		}
		if company == nil {
			return Denied(DenialCompanyNotFound), nil
		}
		if !company.IsActive {
			return Denied(DenialCompanyInactive), nil
		}
		return Allowed(company.ID), nil
	}

	if p.CompanyID != nil && *p.CompanyID != "" {
		return Allowed(*p.CompanyID), nil
	}

	return Denied(DenialNoCompanySelected), nil
}
