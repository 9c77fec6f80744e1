// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"

	"dealboard-gateway/internal/pkg/response"
	service "dealboard-gateway/internal/service/crm"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	crmService *service.CRMService
}

func NewDashboardHandler(crmService *service.CRMService) *DashboardHandler {
	return &DashboardHandler{crmService: crmService}
}

// GetSummary returns the dashboard stats, zeroed when upstream is down.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	stats := h.crmService.DashboardSummary(c.Request.Context())
	response.Success(c, http.StatusOK, "dashboard retrieved", stats)
}
