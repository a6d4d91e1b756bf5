package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"account-storefront/config"
	"account-storefront/internal/adapter/gateway"
	httpHandler "account-storefront/internal/adapter/http/handler"
	"account-storefront/internal/adapter/marketplace"
	"account-storefront/internal/adapter/metrics"
	"account-storefront/internal/adapter/storage/memory"
	pgStorage "account-storefront/internal/adapter/storage/postgres"
	redisStorage "account-storefront/internal/adapter/storage/redis"
	"account-storefront/internal/core/ports"
	"account-storefront/internal/service"
	"account-storefront/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("ASF_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Account Storefront")

	ctx := context.Background()

	var (
		store          ports.TransactionStore = memory.NewPaymentStore()
		auditRepo      ports.AuditRepository
		responseCache  ports.ResponseCache
		rateLimiter    *redisStorage.RateLimitStore
		healthCheckers []ports.HealthChecker
	)

	// PostgreSQL is optional; without it payment state lives in memory.
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database schema")
		}

		store = pgStorage.NewPaymentRepo(pool)
		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	} else {
		log.Warn().Msg("Database disabled, payment records are kept in memory only")
	}

	// Redis is optional; it adds caching and rate limiting.
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		store = service.NewCachedTransactionStore(store, redisStorage.NewPaymentCache(rdb), 0, log)
		responseCache = redisStorage.NewResponseCache(rdb)
		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsSvc := metrics.NewService(registry)

	// Upstream clients; each call is a single attempt bounded by the client timeout.
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, &http.Client{Timeout: cfg.Gateway.Timeout})
	marketplaceClient := marketplace.NewClient(cfg.Marketplace.BaseURL, &http.Client{Timeout: cfg.Marketplace.Timeout})

	// Initialize core services
	sigSvc := service.NewSignatureService()
	idSvc := service.NewIdentifierService()
	vaSvc := service.NewVAService(cfg.Gateway, sigSvc, idSvc, gatewayClient, store, metricsSvc, logger.Component(log, "va"))
	callbackSvc := service.NewCallbackService(cfg.Gateway, sigSvc, store, metricsSvc, logger.Component(log, "callback"))
	marketplaceSvc := service.NewMarketplaceService(cfg.Marketplace, marketplaceClient, responseCache, logger.Component(log, "marketplace"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	if !cfg.Gateway.CallbackSecretConfigured() {
		if cfg.Gateway.AllowUnsignedCallbacks {
			log.Warn().Msg("Callback client secret not configured; unsigned callbacks will be ACCEPTED")
		} else {
			log.Warn().Msg("Callback client secret not configured; callbacks will be rejected")
		}
	}

	routerDeps := httpHandler.RouterDeps{
		VASvc:          vaSvc,
		CallbackSvc:    callbackSvc,
		MarketplaceSvc: marketplaceSvc,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		HTTPMetrics:    metricsSvc,
		MetricsHandler: metricsSvc.Handler(),
		Logger:         log,
		Mode:           cfg.Server.Mode,
	}
	if rateLimiter != nil {
		routerDeps.RateLimiter = rateLimiter
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(routerDeps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
