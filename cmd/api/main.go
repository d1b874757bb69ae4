package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sitewerk/sitewerk/config"
	custommw "github.com/sitewerk/sitewerk/pkg/api/middleware"
	"github.com/sitewerk/sitewerk/pkg/container"
	"github.com/sitewerk/sitewerk/pkg/jobs"
	custommiddleware "github.com/sitewerk/sitewerk/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer app.Close()

	// Initialize cron manager for preview expiry and pipeline stats
	cronManager := jobs.NewCronManager(app.DB.Ent, app.WebsiteService, app.Metrics, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Generation endpoints each hold an LLM call open for up to 90 seconds
	generationRateLimiter := custommiddleware.NewPerEndpointRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	generationRateLimiter.SetEndpointLimit("POST /api/v1/websites/preview", 10, 2)
	generationRateLimiter.SetEndpointLimit("POST /api/v1/websites/:id/regenerate", 10, 2)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(app.Metrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Sitewerk API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := app.DB.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := app.Cache.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Auth routes (public, tighter rate limits)
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", app.AuthHandler.Register, authRateLimiter.RateLimitMiddleware())
		authGroup.POST("/login", app.AuthHandler.Login, authRateLimiter.RateLimitMiddleware())
	}

	// Public site rendering route: previews and live customer sites
	v1.GET("/sites/:slug", app.WebsiteHandler.GetBySlug)

	// Stripe webhook (public, signature-verified)
	v1.POST("/webhook/stripe", app.BillingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Protected routes (JWT required)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, app.TokenBlacklist, app.DB.Ent))
	{
		protected.POST("/auth/logout", app.AuthHandler.Logout)
		protected.GET("/auth/me", app.AuthHandler.Me)
		protected.PUT("/auth/profile", app.AuthHandler.UpdateProfile)

		// Customer onboarding on their purchased site
		protected.PATCH("/websites/:id/onboarding", app.WebsiteHandler.UpdateOnboarding)
		protected.POST("/websites/:id/onboarding/complete", app.WebsiteHandler.CompleteOnboarding)

		// Billing
		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", app.BillingHandler.CreateCheckout)
			billingGroup.POST("/portal", app.BillingHandler.CreatePortalSession)
		}

		// Sales tooling: prospect pipeline and preview generation
		salesGroup := protected.Group("")
		salesGroup.Use(custommiddleware.RequireSales(app.DB.Ent))
		{
			salesGroup.POST("/prospects/ingest", app.ProspectHandler.Ingest)
			salesGroup.GET("/prospects", app.ProspectHandler.List)
			salesGroup.GET("/prospects/:id", app.ProspectHandler.Get)
			salesGroup.PATCH("/prospects/:id/status", app.ProspectHandler.UpdateStatus)

			salesGroup.POST("/websites/preview", app.WebsiteHandler.CreatePreview, generationRateLimiter.RateLimitMiddleware())
			salesGroup.POST("/websites/:id/regenerate", app.WebsiteHandler.Regenerate, generationRateLimiter.RateLimitMiddleware())
			salesGroup.GET("/websites", app.WebsiteHandler.List)
		}

		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(app.DB.Ent))
		{
			adminGroup.POST("/websites/:id/deactivate", app.WebsiteHandler.Deactivate)
		}
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Sitewerk API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Hourly (expire previews), Daily 7AM (pipeline stats)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
