// Package guard decides route access. The decision itself is pure; the
// only side effect is the navigation directive the middleware executes.
package guard

import "strings"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleParent  Role = "PARENT"
)

// Normalize uppercases a role tag for comparison; role checks are always
// case-insensitive.
func Normalize(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

type Directive int

const (
	Allow Directive = iota
	RedirectLogin
	RedirectFallback
)

// Decision is what the caller must do with the current navigation.
type Decision struct {
	Directive Directive
	Target    string
}

const LoginRoute = "/login"

// DashboardFor returns the role-appropriate home route, used as the
// default fallback when a role check fails.
func DashboardFor(role Role) string {
	if Normalize(string(role)) == RoleTutor {
		return "/tutor/dashboard"
	}
	return "/dashboard"
}

// Decide gates one route entry. Unauthenticated users go to login; an
// authenticated user missing a required role goes to the fallback route
// (the role-appropriate dashboard when fallback is empty); everyone else
// passes through unchanged.
func Decide(authenticated bool, role Role, required []Role, fallback string) Decision {
	if !authenticated {
		return Decision{Directive: RedirectLogin, Target: LoginRoute}
	}
	if len(required) == 0 {
		return Decision{Directive: Allow}
	}

	current := Normalize(string(role))
	for _, want := range required {
		if current == Normalize(string(want)) {
			return Decision{Directive: Allow}
		}
	}

	if fallback == "" {
		fallback = DashboardFor(current)
	}
	return Decision{Directive: RedirectFallback, Target: fallback}
}
