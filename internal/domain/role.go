package domain

import "strings"

// Role is the closed set of principal roles, totally ordered by privilege.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleStaff
	RoleAdmin
	RoleSuperadmin
)

var roleNames = map[Role]string{
	RoleGuest:      "GUEST",
	RoleUser:       "USER",
	RoleStaff:      "STAFF",
	RoleAdmin:      "ADMIN",
	RoleSuperadmin: "SUPERADMIN",
}

var rolesByName = map[string]Role{
	"GUEST":      RoleGuest,
	"USER":       RoleUser,
	"STAFF":      RoleStaff,
	"ADMIN":      RoleAdmin,
	"SUPERADMIN": RoleSuperadmin,
}

// ParseRole is the single canonical conversion from a stored role string.
// Unknown or garbled values fall back to RoleUser (least privilege).
func ParseRole(s string) Role {
	if r, ok := rolesByName[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return r
	}
	return RoleUser
}

// String returns the canonical role name
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[RoleUser]
}

// Valid reports whether the role is one of the defined values
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// AtLeast reports whether the role carries at least the privilege of other
func (r Role) AtLeast(other Role) bool {
	return r >= other
}

// IsElevated reports whether the role permits cross-company operation
func (r Role) IsElevated() bool {
	return r == RoleSuperadmin
}
