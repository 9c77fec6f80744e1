// internal/app/router.go
package app

import (
	"net/http"

	authHandler "dealboard-gateway/internal/handlers/auth"
	customerHandler "dealboard-gateway/internal/handlers/customer"
	dashboardHandler "dealboard-gateway/internal/handlers/dashboard"
	dealHandler "dealboard-gateway/internal/handlers/deal"
	orgHandler "dealboard-gateway/internal/handlers/org"
	profileHandler "dealboard-gateway/internal/handlers/profile"
	taskHandler "dealboard-gateway/internal/handlers/task"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/policy"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler      *authHandler.AuthHandler
	OrgHandler       *orgHandler.OrgHandler
	CustomerHandler  *customerHandler.CustomerHandler
	DealHandler      *dealHandler.DealHandler
	TaskHandler      *taskHandler.TaskHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	ProfileHandler   *profileHandler.ProfileHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	r.POST("/login", h.AuthHandler.Login)
	r.POST("/register", h.AuthHandler.Register)
	r.POST("/logout", h.AuthHandler.Logout)

	// ==================== Landing for rejected role checks ====================
	r.GET("/unauthorized", func(c *gin.Context) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You do not have permission to view this page",
		})
	})

	// ==================== Dashboard ====================
	r.GET("/dashboard", h.DashboardHandler.GetSummary)

	// ==================== Organizations ====================
	// Reachable without the org cookie so a fresh login can pick one.
	orgs := r.Group("/organizations")
	{
		orgs.GET("", h.OrgHandler.ListOrganizations)
		orgs.POST("", h.OrgHandler.CreateOrganization)
		orgs.POST("/:id/activate", h.OrgHandler.SetActive)
		orgs.POST("/:id/members", h.OrgHandler.AddMember)
	}

	// ==================== Customers ====================
	customers := r.Group("/customers")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.POST("", h.CustomerHandler.CreateCustomer)
		customers.PUT("/:id", h.CustomerHandler.UpdateCustomer)
	}

	// ==================== Deals ====================
	deals := r.Group("/deals")
	{
		deals.GET("", h.DealHandler.ListDeals)
		deals.GET("/:id", h.DealHandler.GetDeal)

		// Mutations are double-gated: the guard here plus the role check
		// inside the handler, mirroring the original page structure.
		manage := deals.Group("")
		manage.Use(middleware.RequireRole(policy.RoleAdmin, policy.RoleManager))
		{
			manage.POST("", h.DealHandler.CreateDeal)
			manage.PUT("/:id", h.DealHandler.UpdateDeal)
			manage.PATCH("/:id/stage", h.DealHandler.MoveStage)
		}
	}

	// ==================== Tasks ====================
	tasks := r.Group("/tasks")
	{
		tasks.GET("", h.TaskHandler.ListTasks)
		tasks.PUT("/:id/complete", h.TaskHandler.CompleteTask)

		tasks.POST("", middleware.RequireRole(policy.RoleAdmin, policy.RoleManager), h.TaskHandler.CreateTask)
	}

	// ==================== Profile ====================
	r.GET("/profile", h.ProfileHandler.GetProfile)
	r.PUT("/profile", h.ProfileHandler.UpdateProfile)

	// ==================== Settings (admin only) ====================
	settings := r.Group("/settings")
	settings.Use(middleware.RequireRole(policy.RoleAdmin))
	{
		settings.GET("", h.ProfileHandler.GetSettings)
	}
}
