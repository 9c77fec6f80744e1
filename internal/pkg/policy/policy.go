// internal/pkg/policy/policy.go
package policy

import "strings"

// Role labels as the upstream CRM reports them. Upstream values are observed
// in mixed case, so every comparison goes through Normalize first.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

// Normalize upper-cases a role for comparison. An absent role becomes the
// empty string, which matches nothing.
func Normalize(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// RoleAllowed reports whether role is one of the allowed roles. It is the
// single authorization decision shared by the route-level and in-page guards.
func RoleAllowed(role string, allowed ...string) bool {
	r := Normalize(role)
	if r == "" {
		return false
	}
	for _, a := range allowed {
		if r == Normalize(a) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role is ADMIN.
func IsAdmin(role string) bool {
	return RoleAllowed(role, RoleAdmin)
}

// CanManageDeals reports whether the role may create or update deals.
func CanManageDeals(role string) bool {
	return RoleAllowed(role, RoleAdmin, RoleManager)
}

// CanCreateTasks reports whether the role may create tasks.
func CanCreateTasks(role string) bool {
	return RoleAllowed(role, RoleAdmin, RoleManager)
}
