// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"dealboard-gateway/internal/domain/auth"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/response"
	"dealboard-gateway/internal/pkg/session"
	service "dealboard-gateway/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge int
	logger       *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge int, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		logger:       logger,
	}
}

// Login exchanges credentials for a gateway session and mirrors the token
// into the cookie the Route Guard checks. Auth failures get an inline error
// message; the login form is the one place that shows errors instead of an
// empty state.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	session.MirrorToken(c.Writer, sess.Token, h.cookieMaxAge)

	response.Success(c, http.StatusOK, "logged in", auth.LoginResponse{
		User: auth.User{
			ID:    sess.UserID,
			Name:  sess.Name,
			Role:  sess.Role,
			Email: req.Email,
		},
		Redirect: "/dashboard",
	})
}

// Register creates an account and logs the user in. With no active org yet,
// the Route Guard will land them on /organizations.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	sess, err := h.authService.Register(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		h.logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Registration failed", nil)
		return
	}

	session.MirrorToken(c.Writer, sess.Token, h.cookieMaxAge)

	response.Success(c, http.StatusCreated, "registered", auth.LoginResponse{
		User: auth.User{
			ID:    sess.UserID,
			Name:  sess.Name,
			Role:  sess.Role,
			Email: req.Email,
		},
		Redirect: "/organizations",
	})
}

// Logout clears the session and drops both cookie mirrors.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.authService.Logout(c.Request.Context(), sess); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
	}

	session.DropCookies(c.Writer)
	response.Success(c, http.StatusOK, "logged out", gin.H{"redirect": "/login"})
}

func clientInfo(c *gin.Context) service.ClientInfo {
	return service.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
