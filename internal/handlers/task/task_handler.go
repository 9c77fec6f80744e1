// internal/handlers/task/task_handler.go
package task

import (
	"net/http"

	"dealboard-gateway/internal/domain/task"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/policy"
	"dealboard-gateway/internal/pkg/response"
	service "dealboard-gateway/internal/service/crm"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	crmService *service.CRMService
}

func NewTaskHandler(crmService *service.CRMService) *TaskHandler {
	return &TaskHandler{crmService: crmService}
}

// ListTasks returns the tasks of the active organization.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	list := h.crmService.Tasks(c.Request.Context())
	response.Success(c, http.StatusOK, "tasks retrieved", list)
}

// CreateTask creates a task. ADMIN and MANAGER only.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	if !policy.CanCreateTasks(middleware.CurrentRole(c)) {
		response.Forbidden(c, "insufficient permissions")
		return
	}

	var req task.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	created, err := h.crmService.CreateTask(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create task", err)
		return
	}

	response.Success(c, http.StatusCreated, "task created", created)
}

// CompleteTask marks a task completed. Any member can complete their tasks.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	completed, err := h.crmService.CompleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to complete task", err)
		return
	}

	response.Success(c, http.StatusOK, "task completed", completed)
}
