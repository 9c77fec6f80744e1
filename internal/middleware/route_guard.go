// internal/middleware/route_guard.go
package middleware

import (
	"net/http"
	"strings"

	"dealboard-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// Paths served without any session, plus the prefixes for static assets and
// raw API passthrough.
var publicPaths = []string{"/", "/login", "/register", "/favicon.ico", "/healthz"}

var publicPrefixes = []string{"/static", "/assets", "/api/"}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RouteGuard gates page navigation before any handler runs. It looks only at
// cookie presence; whether the session behind the token is still live is the
// Component Guard's and the Authenticator's problem. Stateless, evaluated
// fresh on every request.
//
// Outcomes: allow, 303 to /login (no token), or 303 to /organizations (token
// but no active org). The organizations pages themselves are exempt from the
// org-cookie check, which is what prevents a redirect loop.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if isPublicPath(path) {
			c.Next()
			return
		}

		token, err := c.Cookie(session.TokenCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		orgID, err := c.Cookie(session.OrgCookie)
		if (err != nil || orgID == "") && !strings.HasPrefix(path, "/organizations") {
			c.Redirect(http.StatusSeeOther, "/organizations")
			c.Abort()
			return
		}

		c.Next()
	}
}
