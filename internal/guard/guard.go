// Package guard decides whether a requested view is reachable for the
// current session, and where to send the user when it is not. It is a UX
// control only: role-scoped writes are enforced inside the facade, so a
// caller bypassing the guard gains nothing.
package guard

import "talent-match/internal/domain/user"

type Policy int

const (
	// PolicyProtected requires an authenticated session.
	PolicyProtected Policy = iota
	// PolicyPublicOnly requires an anonymous session (login/register views).
	PolicyPublicOnly
	// PolicyRoleGated requires the session role to be in the view's
	// allow-list; admin is implicitly allowed everywhere.
	PolicyRoleGated
)

const LoginPath = "/login"

// State is the slice of session the guard consumes: whether anyone is
// signed in, and as what.
type State struct {
	Authenticated bool
	Role          user.Role
}

type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// DefaultLanding is the per-role home view.
func DefaultLanding(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return "/dashboard"
	case user.RoleRecruiter:
		return "/recruiter-dashboard"
	default:
		return "/candidate-dashboard"
	}
}

// Evaluate runs one policy against the session state. Role violations
// redirect to the session role's own landing view, never to login.
func Evaluate(p Policy, state State, allowedRoles []user.Role) Decision {
	switch p {
	case PolicyPublicOnly:
		if !state.Authenticated {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: false, RedirectTo: DefaultLanding(state.Role)}

	case PolicyRoleGated:
		if !state.Authenticated {
			return Decision{Allowed: false, RedirectTo: LoginPath}
		}
		if roleAllowed(state.Role, allowedRoles) {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: false, RedirectTo: DefaultLanding(state.Role)}

	default: // PolicyProtected
		if state.Authenticated {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: false, RedirectTo: LoginPath}
	}
}

func roleAllowed(role user.Role, allowed []user.Role) bool {
	if role == user.RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
