package container

import (
	"github.com/sitewerk/sitewerk/config"
	"github.com/sitewerk/sitewerk/pkg/ai/llm"
	"github.com/sitewerk/sitewerk/pkg/api/handlers"
	"github.com/sitewerk/sitewerk/pkg/auth"
	"github.com/sitewerk/sitewerk/pkg/billing"
	"github.com/sitewerk/sitewerk/pkg/cache"
	"github.com/sitewerk/sitewerk/pkg/database"
	"github.com/sitewerk/sitewerk/pkg/email"
	"github.com/sitewerk/sitewerk/pkg/generator"
	"github.com/sitewerk/sitewerk/pkg/logger"
	"github.com/sitewerk/sitewerk/pkg/metrics"
	"github.com/sitewerk/sitewerk/pkg/prospects"
	"github.com/sitewerk/sitewerk/pkg/websites"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   *cache.Client
	Metrics *metrics.Metrics

	// Services
	GeneratorService *generator.Service
	WebsiteService   *websites.Service
	ProspectService  *prospects.Service
	BillingService   *billing.Service
	EmailService     *email.Service

	// Auth
	TokenBlacklist *auth.TokenBlacklist

	// Handlers
	AuthHandler     *handlers.AuthHandler
	WebsiteHandler  *handlers.WebsiteHandler
	ProspectHandler *handlers.ProspectHandler
	BillingHandler  *handlers.BillingHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	// Database
	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	// Cache
	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	// Prometheus metrics
	c.Metrics = metrics.New()

	c.Logger.Info("Infrastructure initialized",
		"database", "connected",
		"cache", "connected")

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() {
	c.TokenBlacklist = auth.NewTokenBlacklist(c.Cache)

	c.EmailService = email.NewService(
		c.Config.EmailFrom,
		c.Config.EmailFromName,
		c.Config.FrontendURL,
		c.Config.SendGridAPIKey,
	)

	// Generation pipeline: LLM client, round-robin archetype assigner, and
	// the generator service on top of both.
	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:      c.Config.OpenAIAPIKey,
		Model:       c.Config.OpenAIModel,
		Temperature: float32(c.Config.OpenAITemperature),
		MaxTokens:   c.Config.OpenAIMaxTokens,
		Timeout:     c.Config.OpenAITimeout,
	}, c.Logger)

	assigner := generator.NewAssigner(c.Cache, c.Logger)
	c.GeneratorService = generator.NewService(llmClient, assigner, c.Logger)
	if c.Config.SiteLanguage != "" {
		c.GeneratorService.SetLanguage(c.Config.SiteLanguage)
	}

	c.WebsiteService = websites.NewService(c.DB.Ent, c.GeneratorService, c.EmailService, c.Logger)

	placesClient := prospects.NewGooglePlacesClient(c.Config.GooglePlacesAPIKey, c.Logger)
	c.ProspectService = prospects.NewService(c.DB.Ent, placesClient, c.Logger)

	c.BillingService = billing.NewService(
		c.DB.Ent,
		c.WebsiteService,
		&billing.StripeConfig{
			SecretKey:     c.Config.StripeSecretKey,
			WebhookSecret: c.Config.StripeWebhookSecret,
			PriceMonthly:  c.Config.StripePriceMonthly,
			SuccessURL:    c.Config.FrontendURL + "/dashboard/billing?success=true",
			CancelURL:     c.Config.FrontendURL + "/dashboard/billing?canceled=true",
		},
		c.Logger,
	)

	c.Logger.Info("Services initialized",
		"generator_service", "ready",
		"website_service", "ready",
		"prospect_service", "ready",
		"billing_service", "ready")
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.AuthHandler = handlers.NewAuthHandler(c.DB.Ent, c.Config, c.TokenBlacklist, c.Metrics)
	c.WebsiteHandler = handlers.NewWebsiteHandler(c.WebsiteService, c.Metrics)
	c.ProspectHandler = handlers.NewProspectHandler(c.ProspectService, c.Metrics)
	c.BillingHandler = handlers.NewBillingHandler(c.BillingService, c.Metrics)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
