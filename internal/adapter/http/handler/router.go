package handler

import (
	"wallet-verification-gateway/internal/adapter/http/middleware"
	redisStore "wallet-verification-gateway/internal/adapter/storage/redis"
	"wallet-verification-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VerificationSvc ports.VerificationService
	StepSvc         ports.StepOrchestrator
	ComplianceSvc   ports.ComplianceService
	AlertRepo       ports.AlertRepository
	TokenSvc        ports.TokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Feature-facing routes (user identity from the gateway) ---
	userCtx := middleware.UserContext()
	verificationHandler := NewVerificationHandler(deps.VerificationSvc, deps.StepSvc)

	verifications := v1.Group("/verifications", userCtx)
	{
		verifications.POST("", rl("verify_create"), verificationHandler.Create)
		verifications.GET("/check", rl("verify_status"), verificationHandler.Check)
		verifications.GET("/:id", rl("verify_status"), verificationHandler.GetStatus)
		verifications.POST("/:id/proof", rl("verify_submit"), verificationHandler.SubmitProof)
		verifications.POST("/:id/confirm", rl("verify_submit"), verificationHandler.ConfirmToken)
		verifications.DELETE("/:id", rl("verify_submit"), verificationHandler.Cancel)
	}

	withdrawals := v1.Group("/withdrawals", userCtx)
	{
		withdrawals.POST("", rl("verify_create"), verificationHandler.InitiateWithdrawal)
		withdrawals.POST("/:id/steps/:step", rl("verify_submit"), verificationHandler.CompleteStep)
	}

	// --- Admin routes (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.VerificationSvc, deps.ComplianceSvc, deps.AlertRepo)

	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/verifications/:id/override", rl("admin"), adminHandler.Override)
		admin.POST("/verifications/:id/reports", rl("admin"), adminHandler.GenerateReport)
		admin.GET("/alerts", rl("admin"), adminHandler.ListAlerts)
		admin.POST("/alerts/:id/resolve", rl("admin"), adminHandler.ResolveAlert)
	}

	return r
}
