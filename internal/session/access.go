package session

import "github.com/oelbekkali/colisops/models"

// Route targets of the console shell.
const (
	PathLogin     = "/login"
	PathAdmin     = "/admin"
	PathOperator  = "/operator"
	PathDashboard = "/dashboard"
)

// RoleOf extracts the role of a user profile.
func RoleOf(user models.User) models.Role {
	return user.Role.Name
}

// HasRole reports whether the user holds one of the wanted roles.
func HasRole(user models.User, wanted ...models.Role) bool {
	role := RoleOf(user)
	for _, w := range wanted {
		if role == w {
			return true
		}
	}
	return false
}

// RedirectTargetFor maps a role to its landing route. Unknown roles
// land on the login screen rather than a half-working workspace.
func RedirectTargetFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return PathAdmin
	case models.RoleOperator:
		return PathOperator
	default:
		return PathLogin
	}
}

// Decision is the outcome of a route guard check.
type Decision struct {
	// Allow is true when the user may enter the route.
	Allow bool

	// RedirectTo is the route to send the user to instead. Empty when
	// Allow is true.
	RedirectTo string
}

// Guard protects one route. Authenticated says whether a session is
// active, HasRequiredRole whether the session's role may enter, and
// FallbackPath where to send unauthenticated visitors.
type Guard struct {
	Authenticated   bool
	HasRequiredRole func() bool
	FallbackPath    string
}

// Resolve applies the guard. Unauthenticated visitors go to the
// fallback (the login screen when none is set). An authenticated user
// with the wrong role is sent to the neutral dashboard, never to the
// fallback: bouncing a signed-in user to the login screen would read
// as a lost session.
func (g Guard) Resolve() Decision {
	if !g.Authenticated {
		fallback := g.FallbackPath
		if fallback == "" {
			fallback = PathLogin
		}
		return Decision{RedirectTo: fallback}
	}

	if g.HasRequiredRole != nil && !g.HasRequiredRole() {
		return Decision{RedirectTo: PathDashboard}
	}

	return Decision{Allow: true}
}
