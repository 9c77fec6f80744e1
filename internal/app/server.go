// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"dealboard-gateway/internal/config"
	"dealboard-gateway/internal/db"
	authHandler "dealboard-gateway/internal/handlers/auth"
	customerHandler "dealboard-gateway/internal/handlers/customer"
	dashboardHandler "dealboard-gateway/internal/handlers/dashboard"
	dealHandler "dealboard-gateway/internal/handlers/deal"
	orgHandler "dealboard-gateway/internal/handlers/org"
	profileHandler "dealboard-gateway/internal/handlers/profile"
	taskHandler "dealboard-gateway/internal/handlers/task"
	"dealboard-gateway/internal/middleware"
	"dealboard-gateway/internal/pkg/session"
	"dealboard-gateway/internal/repository/postgres"
	authUsecase "dealboard-gateway/internal/service/auth"
	crmUsecase "dealboard-gateway/internal/service/crm"
	orgUsecase "dealboard-gateway/internal/service/org"
	"dealboard-gateway/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	redisCfg := db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	}

	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- PostgreSQL (session audit records, optional) -----
	var recorder session.Recorder
	if s.cfg.DatabaseURL != "" {
		pool, err := db.NewPostgresPool(ctx, s.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		recorder = postgres.NewSessionRepository(pool)
		log.Println("[POSTGRES] connected")
	} else {
		logger.Warn("DATABASE_URL not set, session audit records disabled")
	}

	// ----- Session Store -----
	sessionStore := session.NewStore(redisClient, recorder, s.cfg.SessionTTL, logger)

	// ----- Upstream CRM client -----
	apiClient := upstream.NewClient(s.cfg.UpstreamBaseURL, sessionStore, s.cfg.UpstreamTimeout, logger)

	// ----- Services -----
	authService := authUsecase.NewAuthService(apiClient, sessionStore, recorder, logger)
	orgService := orgUsecase.NewOrgService(apiClient, sessionStore, logger)
	crmService := crmUsecase.NewCRMService(apiClient, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, s.cfg.CookieMaxAge, logger)
	orgHandlerInst := orgHandler.NewOrgHandler(orgService, s.cfg.CookieMaxAge)
	customerHandlerInst := customerHandler.NewCustomerHandler(crmService)
	dealHandlerInst := dealHandler.NewDealHandler(crmService)
	taskHandlerInst := taskHandler.NewTaskHandler(crmService)
	dashboardHandlerInst := dashboardHandler.NewDashboardHandler(crmService)
	profileHandlerInst := profileHandler.NewProfileHandler(crmService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
		middleware.SessionContext(sessionStore, logger),
		middleware.RouteGuard(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:      authHandlerInst,
		OrgHandler:       orgHandlerInst,
		CustomerHandler:  customerHandlerInst,
		DealHandler:      dealHandlerInst,
		TaskHandler:      taskHandlerInst,
		DashboardHandler: dashboardHandlerInst,
		ProfileHandler:   profileHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
