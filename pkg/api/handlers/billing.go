package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sitewerk/sitewerk/pkg/api/errors"
	"github.com/sitewerk/sitewerk/pkg/billing"
	"github.com/sitewerk/sitewerk/pkg/metrics"
	"github.com/sitewerk/sitewerk/pkg/models"
)

// BillingHandler handles Stripe checkout and webhook endpoints
type BillingHandler struct {
	billing   *billing.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(bs *billing.Service, m *metrics.Metrics) *BillingHandler {
	return &BillingHandler{
		billing:   bs,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateCheckout creates a Stripe checkout session for a website preview
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.billing.CreateCheckoutSession(c.Request().Context(), userID, req.WebsiteID)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// PortalRequest carries an optional return URL for the customer portal
type PortalRequest struct {
	ReturnURL string `json:"return_url,omitempty" validate:"omitempty,url"`
}

// CreatePortalSession creates a Stripe customer portal session
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req PortalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.billing.CreateCustomerPortalSession(c.Request().Context(), userID, req.ReturnURL)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleWebhook processes incoming Stripe webhook events. Signature
// verification happens inside the billing service; a failed event returns
// 400 so Stripe retries it.
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to read request body",
		})
	}

	eventType := webhookEventType(payload)
	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.billing.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		if h.metrics != nil {
			h.metrics.RecordWebhookEvent(eventType, "failed")
		}
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: "Failed to process webhook event",
		})
	}

	if h.metrics != nil {
		h.metrics.RecordWebhookEvent(eventType, "handled")
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// webhookEventType peeks at the event type for metrics labels without
// trusting the payload beyond that.
func webhookEventType(payload []byte) string {
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &peek); err != nil || peek.Type == "" {
		return "unknown"
	}
	return peek.Type
}
