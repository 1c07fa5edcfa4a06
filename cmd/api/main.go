package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-verification-gateway/config"
	httpHandler "wallet-verification-gateway/internal/adapter/http/handler"
	pgStorage "wallet-verification-gateway/internal/adapter/storage/postgres"
	redisStorage "wallet-verification-gateway/internal/adapter/storage/redis"
	"wallet-verification-gateway/internal/adapter/verifier"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/internal/service"
	"wallet-verification-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wallet Verification Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	verificationRepo := pgStorage.NewVerificationRepo(pool)
	stepRepo := pgStorage.NewStepRepo(pool)
	sofRepo := pgStorage.NewSourceOfFundsRepo(pool)
	caseRepo := pgStorage.NewAssistedCaseRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	alertRepo := pgStorage.NewAlertRepo(pool)
	reportRepo := pgStorage.NewReportRepo(pool)
	userDirectory := pgStorage.NewUserDirectory(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	confirmTokenStore := redisStorage.NewConfirmTokenStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize crypto services
	secrets, activeVersion, err := cfg.Crypto.KeyRingSecrets()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid crypto key configuration")
	}
	keyRing, err := service.NewKeyRing(secrets, activeVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key ring")
	}
	cipher := service.NewEnvelopeCipherService(keyRing)
	tokenHasher := service.NewHMACTokenHasher(cfg.Crypto.TokenSecret)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize collaborators
	sigVerifier := verifier.NewHTTPVerifier(cfg.Verifier.URL, cfg.Verifier.Timeout, log)
	riskAssessor := service.NewRiskAssessor()
	auditSvc := service.NewAuditService(auditRepo, cipher, log)
	notificationSender := service.NewLogNotificationSender(log)
	webhookNotifier := service.NewHTTPWebhookNotifier(
		cfg.Webhook.CallbackURL,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		log,
	)

	// Initialize method handlers
	handlers := service.NewHandlerSet(
		service.NewStandardSignatureHandler(sigVerifier, cipher, log),
		service.NewMultiSignatureHandler(sigVerifier, cipher, log),
		service.NewAssistedHandler(caseRepo, cipher, log),
		service.NewTimeDelayedHandler(confirmTokenStore, tokenHasher, notificationSender, log),
	)

	// Initialize business services
	complianceSvc := service.NewComplianceService(
		verificationRepo, stepRepo, sofRepo, alertRepo, reportRepo,
		auditRepo, cipher, auditSvc, transactor, log,
	)
	verificationSvc := service.NewVerificationService(service.VerificationServiceDeps{
		Verifications: verificationRepo,
		Steps:         stepRepo,
		SourceOfFunds: sofRepo,
		Cases:         caseRepo,
		Handlers:      handlers,
		Cipher:        cipher,
		Risk:          riskAssessor,
		Users:         userDirectory,
		Nonces:        nonceStore,
		Tokens:        confirmTokenStore,
		Hasher:        tokenHasher,
		Audit:         auditSvc,
		Compliance:    complianceSvc,
		Webhooks:      webhookNotifier,
		Transactor:    transactor,
	}, log)
	stepSvc := service.NewStepOrchestrator(
		verificationRepo, stepRepo, sofRepo, riskAssessor, userDirectory,
		nonceStore, auditSvc, webhookNotifier, transactor, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VerificationSvc: verificationSvc,
		StepSvc:         stepSvc,
		ComplianceSvc:   complianceSvc,
		AlertRepo:       alertRepo,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
