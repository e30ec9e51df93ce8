package app

import (
	"database/sql"
	"net/http"

	"go-leave-approval/internal/approval"
	"go-leave-approval/internal/approver"
	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/auth"
	"go-leave-approval/internal/config"
	"go-leave-approval/internal/leave"
	"go-leave-approval/internal/messaging/kafka"
	"go-leave-approval/internal/middleware"
	"go-leave-approval/internal/notification"
	"go-leave-approval/internal/rbac"
	"go-leave-approval/internal/rbac/infra"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/shared/counter"
	"go-leave-approval/internal/shared/response"
	"go-leave-approval/internal/staff"
	"go-leave-approval/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	clk := clock.NewReal(cfg.Location())

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	workflowRepo := workflow.NewRepository(gormDB)
	stepRepo := approval.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Approval engine ---
	auditSink := audit.NewOutboxSink(outboxRepo)
	directory := staff.NewDirectory(staffRepo, rdb, cfg.Redis.CacheTTL)
	resolver := approver.NewResolver(directory, clk)
	workflowService := workflow.NewService(db, workflowRepo, auditSink, rdb, clk)

	var providers []approval.Provider
	if cfg.Workflow.CatalogueEnabled {
		providers = append(providers, approval.NewCatalogueProvider(workflowService, resolver))
	}
	providers = append(providers, approval.NewFallbackProvider(resolver))
	selector := approval.NewSelector(providers)
	ledger := approval.NewLedger(stepRepo, clk)
	notifier := notification.NewOutboxNotifier(outboxRepo, clk)

	// --- Services ---
	leaveService := leave.NewService(db, leaveRepo, counterRepo, directory, selector, ledger, notifier, auditSink, clk)
	auditService := audit.NewService(auditRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(directory)
	staffHandler := staff.NewHandler(directory, clk)
	workflowHandler := workflow.NewHandler(workflowService)
	approvalHandler := approval.NewHandler(selector, directory)
	leaveHandler := leave.NewHandler(leaveService)
	auditHandler := audit.NewHandler(auditService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	secret := cfg.JWT.Secret
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateBurst))
	{
		auth.RegisterRoutes(api, authHandler, secret)
		staff.RegisterRoutes(api, staffHandler, rbacService, secret)
		workflow.RegisterRoutes(api, workflowHandler, rbacService, secret)
		approval.RegisterRoutes(api, approvalHandler, rbacService, secret)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb, secret)
		audit.RegisterRoutes(api, auditHandler, rbacService, secret)

		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(secret))
		rbac.RegisterRoutes(secured, rbacHandler)
	}

	router.GET("/health", healthHandler(outboxRepo))

	return nil
}

// healthHandler reports outbox backlog by status.
func healthHandler(outbox kafka.OutboxRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := outbox.CountByStatus(c.Request.Context())
		if err != nil {
			zap.L().Named("app.health").Warn("outbox count failed", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unavailable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "outbox": counts}, nil)
	}
}
