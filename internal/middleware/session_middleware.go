// internal/middleware/session_middleware.go
package middleware

import (
	"dealboard-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionContext loads the session behind the token cookie into both the gin
// context and the request context, where the upstream AuthTransport reads it.
// A token cookie with no backing store entry is treated as no session at all:
// the cookie mirror can outlive the cleared store, and that desync is the
// Component Guard's signal to send the user to /unauthorized.
func SessionContext(store *session.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.TokenCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			logger.Debug("no session for token cookie", zap.Error(err))
			c.Next()
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionContext, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
