package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealboard-gateway/internal/pkg/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storeWithSession(t *testing.T, sess *session.Session) *session.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(client, nil, time.Hour, zap.NewNop())
	if sess != nil {
		require.NoError(t, store.Save(context.Background(), sess, time.Time{}))
	}
	return store
}

func roleGatedEngine(store *session.Store, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionContext(store, zap.NewNop()))
	r.GET("/settings", RequireRole(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAllowedRoleRenders(t *testing.T) {
	store := storeWithSession(t, &session.Session{Token: "abc", UserID: "1", Role: "admin"})
	r := roleGatedEngine(store, "ADMIN")

	w := getWithToken(r, "abc")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDisallowedRoleRedirectsToUnauthorized(t *testing.T) {
	store := storeWithSession(t, &session.Session{Token: "abc", UserID: "1", Role: "USER"})
	r := roleGatedEngine(store, "ADMIN", "MANAGER")

	w := getWithToken(r, "abc")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/unauthorized", w.Header().Get("Location"))
}

func TestMissingSessionRedirectsToUnauthorized(t *testing.T) {
	store := storeWithSession(t, nil)
	r := roleGatedEngine(store, "ADMIN")

	// Cookie present, store cleared: the two data sources disagree and the
	// store-backed guard wins.
	w := getWithToken(r, "stale")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/unauthorized", w.Header().Get("Location"))
}

func TestEmptyRoleNeverAllowed(t *testing.T) {
	store := storeWithSession(t, &session.Session{Token: "abc", UserID: "1"})
	r := roleGatedEngine(store, "ADMIN", "MANAGER", "USER")

	w := getWithToken(r, "abc")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}
