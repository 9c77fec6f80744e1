// internal/handlers/org/org_handler.go
package org

import (
	"net/http"

	"dealboard-gateway/internal/domain/org"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/response"
	"dealboard-gateway/internal/pkg/session"
	service "dealboard-gateway/internal/service/org"

	"github.com/gin-gonic/gin"
)

type OrgHandler struct {
	orgService   *service.OrgService
	cookieMaxAge int
}

func NewOrgHandler(orgService *service.OrgService, cookieMaxAge int) *OrgHandler {
	return &OrgHandler{orgService: orgService, cookieMaxAge: cookieMaxAge}
}

// ListOrganizations returns the caller's memberships with the active one
// flagged. Upstream failure shows as an empty list.
func (h *OrgHandler) ListOrganizations(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	activeOrgID := ""
	if sess != nil {
		activeOrgID = sess.OrgID
	}

	memberships := h.orgService.Memberships(c.Request.Context(), activeOrgID)
	response.Success(c, http.StatusOK, "organizations retrieved", org.MembershipListResponse{
		Memberships: memberships,
		ActiveOrgID: activeOrgID,
	})
}

// SetActive switches the active organization. Org id and membership role hit
// the store before the cookie mirror and the reload instruction go out, so a
// reloaded page can never read a stale role for the fresh org id.
func (h *OrgHandler) SetActive(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "authentication required")
		return
	}

	orgID := c.Param("id")
	membership, err := h.orgService.SelectActive(c.Request.Context(), sess, orgID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to switch organization", err)
		return
	}

	session.MirrorOrg(c.Writer, membership.OrganizationID, h.cookieMaxAge)

	// Full reload is the simplest way to make every role-gated view re-read
	// a consistent session; there is no cross-component state bus.
	response.Reload(c, "organization switched", membership)
}

// CreateOrganization creates a new organization upstream.
func (h *OrgHandler) CreateOrganization(c *gin.Context) {
	var req org.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	created, err := h.orgService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create organization", err)
		return
	}

	response.Success(c, http.StatusCreated, "organization created", created)
}

// AddMember adds a user to an organization.
func (h *OrgHandler) AddMember(c *gin.Context) {
	var req org.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.orgService.AddMember(c.Request.Context(), c.Param("id"), &req); err != nil {
		response.Error(c, http.StatusBadRequest, "failed to add member", err)
		return
	}

	response.Success(c, http.StatusOK, "member added", nil)
}
