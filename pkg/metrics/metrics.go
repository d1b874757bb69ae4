package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  *prometheus.HistogramVec
	WebsiteTransitions  *prometheus.CounterVec
	ProspectsIngested   prometheus.Counter
	UsersRegistered     prometheus.Counter
	LoginAttempts       *prometheus.CounterVec
	SubscriptionsSold   prometheus.Counter
	WebhookEvents       *prometheus.CounterVec
	PreviewsExpired     prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets, // 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		GenerationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generations_total",
				Help: "Total number of website generation attempts",
			},
			[]string{"status"}, // success, transport_error, malformed
		),
		GenerationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "generation_duration_seconds",
				Help:    "Website generation latency in seconds",
				Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 90, 120},
			},
			[]string{"status"},
		),
		WebsiteTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_transitions_total",
				Help: "Total number of website status transitions",
			},
			[]string{"from", "to"},
		),
		ProspectsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "prospects_ingested_total",
			Help: "Total number of prospects ingested",
		}),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		SubscriptionsSold: promauto.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_sold_total",
			Help: "Total number of subscriptions sold",
		}),
		WebhookEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stripe_webhook_events_total",
				Help: "Total number of Stripe webhook events processed",
			},
			[]string{"type", "status"}, // handled, failed, ignored
		),
		PreviewsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "previews_expired_total",
			Help: "Total number of preview websites deactivated by expiry",
		}),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/sites/:slug)

			// Measure request size
			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordGeneration records a generation attempt with its outcome and duration
func (m *Metrics) RecordGeneration(status string, duration time.Duration) {
	m.GenerationsTotal.WithLabelValues(status).Inc()
	m.GenerationDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordWebsiteTransition increments the website status transition counter
func (m *Metrics) RecordWebsiteTransition(from, to string) {
	m.WebsiteTransitions.WithLabelValues(from, to).Inc()
}

// RecordProspectsIngested adds to the prospects ingested counter
func (m *Metrics) RecordProspectsIngested(count int) {
	m.ProspectsIngested.Add(float64(count))
}

// RecordUserRegistered increments users registered counter
func (m *Metrics) RecordUserRegistered() {
	m.UsersRegistered.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordSubscriptionSold increments subscriptions sold counter
func (m *Metrics) RecordSubscriptionSold() {
	m.SubscriptionsSold.Inc()
}

// RecordWebhookEvent increments the Stripe webhook event counter
func (m *Metrics) RecordWebhookEvent(eventType, status string) {
	m.WebhookEvents.WithLabelValues(eventType, status).Inc()
}

// RecordPreviewsExpired adds to the expired previews counter
func (m *Metrics) RecordPreviewsExpired(count int) {
	m.PreviewsExpired.Add(float64(count))
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
