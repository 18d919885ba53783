package domain

import "time"

// Profile represents an authenticated principal's persisted record: identity,
// stored role and company assignment. Profiles are deactivated, never deleted.
type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	// Role is stored as a string and parsed through domain.ParseRole on read;
	// unknown values surface as USER.
	Role      string    `json:"role"`
	CompanyID *string   `json:"company_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParsedRole returns the canonical role for the stored role string
func (p *Profile) ParsedRole() Role {
	return ParseRole(p.Role)
}
