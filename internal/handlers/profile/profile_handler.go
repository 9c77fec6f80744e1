// internal/handlers/profile/profile_handler.go
package profile

import (
	"net/http"

	"dealboard-gateway/internal/domain/user"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/response"
	service "dealboard-gateway/internal/service/crm"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	crmService *service.CRMService
}

func NewProfileHandler(crmService *service.CRMService) *ProfileHandler {
	return &ProfileHandler{crmService: crmService}
}

// GetProfile returns the current user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p := h.crmService.Profile(c.Request.Context())
	response.Success(c, http.StatusOK, "profile retrieved", p)
}

// UpdateProfile updates the current user's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req user.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	updated, err := h.crmService.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to update profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", updated)
}

// GetSettings serves the admin settings view: the session identity as the
// gateway sees it. Reached only through the ADMIN component guard.
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	response.Success(c, http.StatusOK, "settings retrieved", gin.H{
		"user_id": sess.UserID,
		"name":    sess.Name,
		"role":    sess.Role,
		"org_id":  sess.OrgID,
	})
}
