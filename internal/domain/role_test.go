package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
	}{
		{"guest", "GUEST", RoleGuest},
		{"user", "USER", RoleUser},
		{"staff", "STAFF", RoleStaff},
		{"admin", "ADMIN", RoleAdmin},
		{"superadmin", "SUPERADMIN", RoleSuperadmin},
		{"lowercase", "superadmin", RoleSuperadmin},
		{"mixed case", "Admin", RoleAdmin},
		{"surrounding whitespace", "  STAFF  ", RoleStaff},
		{"unknown falls back to user", "OWNER", RoleUser},
		{"garbled falls back to user", "sup3radmin!", RoleUser},
		{"empty falls back to user", "", RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.input))
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "SUPERADMIN", RoleSuperadmin.String())
	assert.Equal(t, "GUEST", RoleGuest.String())

	// Out-of-range values render as the least-privilege fallback
	assert.Equal(t, "USER", Role(99).String())
}

func TestRole_Ordering(t *testing.T) {
	assert.True(t, RoleGuest < RoleUser)
	assert.True(t, RoleUser < RoleStaff)
	assert.True(t, RoleStaff < RoleAdmin)
	assert.True(t, RoleAdmin < RoleSuperadmin)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleSuperadmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleStaff.AtLeast(RoleAdmin))
}

func TestRole_IsElevated(t *testing.T) {
	assert.True(t, RoleSuperadmin.IsElevated())
	assert.False(t, RoleAdmin.IsElevated())
	assert.False(t, RoleUser.IsElevated())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleGuest.Valid())
	assert.True(t, RoleSuperadmin.Valid())
	assert.False(t, Role(99).Valid())
	assert.False(t, Role(-1).Valid())
}
