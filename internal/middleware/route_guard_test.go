package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dealboard-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard())
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", handler)
	r.GET("/login", handler)
	r.GET("/deals", handler)
	r.GET("/organizations", handler)
	r.GET("/api/ping", handler)
	return r
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie() *http.Cookie {
	return &http.Cookie{Name: session.TokenCookie, Value: "abc"}
}

func orgCookie() *http.Cookie {
	return &http.Cookie{Name: session.OrgCookie, Value: "7"}
}

func TestPublicPathsAllowedWithoutCookies(t *testing.T) {
	r := guardedEngine()
	for _, path := range []string{"/", "/login", "/api/ping"} {
		w := doGet(r, path)
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestMissingTokenRedirectsToLogin(t *testing.T) {
	r := guardedEngine()

	w := doGet(r, "/deals")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestMissingOrgRedirectsToOrganizations(t *testing.T) {
	r := guardedEngine()

	w := doGet(r, "/deals", tokenCookie())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/organizations", w.Header().Get("Location"))
}

func TestOrganizationsPageDoesNotRedirectLoop(t *testing.T) {
	r := guardedEngine()

	w := doGet(r, "/organizations", tokenCookie())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFullSessionAllowed(t *testing.T) {
	r := guardedEngine()

	w := doGet(r, "/deals", tokenCookie(), orgCookie())
	assert.Equal(t, http.StatusOK, w.Code)
}
