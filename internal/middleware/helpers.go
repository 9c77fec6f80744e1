// internal/middleware/helpers.go
package middleware

import (
	"dealboard-gateway/internal/pkg/policy"

	"github.com/gin-gonic/gin"
)

// IsAuthenticated checks if the request carries a live session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentSession(c).Authenticated()
}

// CurrentRole returns the session role, or "" when there is no session.
func CurrentRole(c *gin.Context) string {
	sess := CurrentSession(c)
	if sess == nil {
		return ""
	}
	return sess.Role
}

// IsAdmin checks if the session role is ADMIN.
func IsAdmin(c *gin.Context) bool {
	return policy.IsAdmin(CurrentRole(c))
}
