package handler

import (
	"net/http"

	"account-storefront/internal/adapter/http/middleware"
	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VASvc          ports.VirtualAccountService
	CallbackSvc    ports.CallbackService
	MarketplaceSvc ports.MarketplaceService
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService     // nil = audit logging disabled
	HTTPMetrics    middleware.HTTPMetrics // nil = no request metrics
	MetricsHandler http.Handler           // nil = /metrics not exposed
	Logger         zerolog.Logger
	Mode           string // gin mode; defaults to release
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check pings PostgreSQL and Redis when configured
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	// Gateway callback; authenticated by signature, never rate limited
	callbackHandler := NewCallbackHandler(deps.CallbackSvc)
	r.POST(domain.PathPaymentCallback, callbackHandler.Payment)

	// Storefront API v1
	v1 := r.Group("/api/v1")

	vaHandler := NewVAHandler(deps.VASvc)
	va := v1.Group("/va")
	{
		va.POST("", rl("va_create"), vaHandler.CreateVA)
		va.GET("/:trxId", rl("va_status"), vaHandler.GetStatus)
	}

	if deps.MarketplaceSvc != nil {
		marketplaceHandler := NewMarketplaceHandler(deps.MarketplaceSvc)
		v1.GET("/marketplace/:category", rl("marketplace"), marketplaceHandler.Fetch)
	}

	return r
}
