// internal/middleware/component_guard.go
package middleware

import (
	"net/http"

	"dealboard-gateway/internal/pkg/policy"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route subtree on an allow-list of roles. Unlike the
// RouteGuard it reads the role from the session store, not from cookies, so
// the two can disagree when the store was cleared behind a live cookie. In
// that case this guard wins and the user lands on /unauthorized.
//
// MUST be mounted after SessionContext.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)

		role := ""
		if sess != nil {
			role = sess.Role
		}

		if !policy.RoleAllowed(role, allowed...) {
			c.Redirect(http.StatusSeeOther, "/unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
