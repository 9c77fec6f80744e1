// internal/handlers/deal/deal_handler.go
package deal

import (
	"net/http"

	"dealboard-gateway/internal/domain/deal"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/policy"
	"dealboard-gateway/internal/pkg/response"
	service "dealboard-gateway/internal/service/crm"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	crmService *service.CRMService
}

func NewDealHandler(crmService *service.CRMService) *DealHandler {
	return &DealHandler{crmService: crmService}
}

// ListDeals returns the deal board for the active organization.
func (h *DealHandler) ListDeals(c *gin.Context) {
	list := h.crmService.Deals(c.Request.Context())
	response.Success(c, http.StatusOK, "deals retrieved", gin.H{
		"deals":  list,
		"stages": deal.Stages,
	})
}

// GetDeal returns one deal.
func (h *DealHandler) GetDeal(c *gin.Context) {
	d, err := h.crmService.Deal(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c, "deal not found")
		return
	}
	response.Success(c, http.StatusOK, "deal retrieved", d)
}

// CreateDeal creates a deal. ADMIN and MANAGER only; the same policy that
// hides the create button client-side backs this check.
func (h *DealHandler) CreateDeal(c *gin.Context) {
	if !policy.CanManageDeals(middleware.CurrentRole(c)) {
		response.Forbidden(c, "insufficient permissions")
		return
	}

	var req deal.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	created, err := h.crmService.CreateDeal(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create deal", err)
		return
	}

	response.Success(c, http.StatusCreated, "deal created", created)
}

// UpdateDeal updates a deal. ADMIN and MANAGER only.
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	if !policy.CanManageDeals(middleware.CurrentRole(c)) {
		response.Forbidden(c, "insufficient permissions")
		return
	}

	var req deal.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	updated, err := h.crmService.UpdateDeal(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to update deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal updated", updated)
}

// MoveStage moves a deal across the board. ADMIN and MANAGER only.
func (h *DealHandler) MoveStage(c *gin.Context) {
	if !policy.CanManageDeals(middleware.CurrentRole(c)) {
		response.Forbidden(c, "insufficient permissions")
		return
	}

	var req deal.PatchStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	moved, err := h.crmService.MoveDealStage(c.Request.Context(), c.Param("id"), req.Stage)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to move deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal moved", moved)
}
