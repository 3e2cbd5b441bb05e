package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oelbekkali/colisops/models"
)

func TestRoleOf(t *testing.T) {
	user := models.User{Role: models.RoleEntity{Name: "ADMIN"}}
	assert.Equal(t, models.RoleAdmin, RoleOf(user))
	assert.Equal(t, models.Role(""), RoleOf(models.User{}))
}

func TestHasRole(t *testing.T) {
	op := models.User{Role: models.RoleEntity{Name: "OPERATEUR"}}

	assert.True(t, HasRole(op, models.RoleOperator))
	assert.True(t, HasRole(op, models.RoleAdmin, models.RoleOperator))
	assert.False(t, HasRole(op, models.RoleAdmin))
	assert.False(t, HasRole(op))
}

func TestRedirectTargetFor(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		want string
	}{
		{name: "admin", role: models.RoleAdmin, want: PathAdmin},
		{name: "operator", role: models.RoleOperator, want: PathOperator},
		{name: "transporter has no workspace", role: models.RoleTransporter, want: PathLogin},
		{name: "unknown role", role: models.Role("GUEST"), want: PathLogin},
		{name: "empty role", role: models.Role(""), want: PathLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedirectTargetFor(tt.role))
		})
	}
}

func TestGuard_Resolve(t *testing.T) {
	hasRole := func(ok bool) func() bool { return func() bool { return ok } }

	tests := []struct {
		name  string
		guard Guard
		want  Decision
	}{
		{
			name:  "unauthenticated goes to fallback",
			guard: Guard{Authenticated: false, FallbackPath: PathLogin},
			want:  Decision{RedirectTo: PathLogin},
		},
		{
			name:  "unauthenticated without fallback goes to login",
			guard: Guard{Authenticated: false},
			want:  Decision{RedirectTo: PathLogin},
		},
		{
			name:  "authenticated with required role passes",
			guard: Guard{Authenticated: true, HasRequiredRole: hasRole(true)},
			want:  Decision{Allow: true},
		},
		{
			name:  "authenticated wrong role lands on dashboard, not login",
			guard: Guard{Authenticated: true, HasRequiredRole: hasRole(false), FallbackPath: PathLogin},
			want:  Decision{RedirectTo: PathDashboard},
		},
		{
			name:  "no role requirement means authenticated is enough",
			guard: Guard{Authenticated: true},
			want:  Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard.Resolve())
		})
	}
}
