package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/sitewerk/sitewerk/ent"
	entsub "github.com/sitewerk/sitewerk/ent/subscription"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/logger"
	"github.com/sitewerk/sitewerk/pkg/websites"
)

// Service handles Stripe billing operations: checkout for purchasing a
// previewed website and webhooks that drive the website lifecycle.
type Service struct {
	db       *ent.Client
	websites *websites.Service
	config   *StripeConfig
	log      logger.Logger
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceMonthly  string
	SuccessURL    string
	CancelURL     string
}

// CheckoutResponse carries the hosted checkout URL to the frontend.
type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// CustomerPortalResponse carries the Stripe customer portal URL.
type CustomerPortalResponse struct {
	PortalURL string `json:"portal_url"`
}

// NewService creates a new billing service
func NewService(db *ent.Client, websiteService *websites.Service, config *StripeConfig, log logger.Logger) *Service {
	stripe.Key = config.SecretKey
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:       db,
		websites: websiteService,
		config:   config,
		log:      log,
	}
}

// CreateCheckoutSession creates a Stripe checkout session for buying one
// previewed website. Website and user IDs travel in the session metadata so
// the completion webhook can finish the sale without extra lookups.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID, websiteID int) (*CheckoutResponse, error) {
	w, err := s.db.Website.Get(ctx, websiteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("website")
		}
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	if string(w.Status) != string(websites.StatusPreview) {
		return nil, domain.NewInvalidStateChangeError(string(w.Status), "checkout")
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID, err := s.ensureCustomer(ctx, u)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"user_id":    strconv.Itoa(userID),
		"website_id": strconv.Itoa(websiteID),
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.config.PriceMonthly),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata:   metadata,
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.log.Info("checkout session created",
		"user_id", userID, "website_id", websiteID, "session_id", sess.ID)
	return &CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// CreateCustomerPortalSession creates a Stripe customer portal session so
// customers can manage payment methods and cancel themselves.
func (s *Service) CreateCustomerPortalSession(ctx context.Context, userID int, returnURL string) (*CustomerPortalResponse, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u.StripeCustomerID == nil || *u.StripeCustomerID == "" {
		return nil, domain.NewBadRequestError("user has no billing account")
	}

	sess, err := billingportalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*u.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}
	return &CustomerPortalResponse{PortalURL: sess.URL}, nil
}

func (s *Service) ensureCustomer(ctx context.Context, u *ent.User) (string, error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, nil
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(u.Email),
		Name:  stripe.String(u.Name),
		Metadata: map[string]string{
			"user_id": strconv.Itoa(u.ID),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	if err := u.Update().SetStripeCustomerID(cust.ID).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to save customer ID: %w", err)
	}
	return cust.ID, nil
}

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	s.log.Info("stripe webhook received", "type", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	default:
		s.log.Debug("unhandled webhook event type", "type", event.Type)
	}
	return nil
}

// handleCheckoutCompleted finishes a sale: records the subscription and moves
// the website from preview to sold.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userID, err := metadataID(sess.Metadata, "user_id")
	if err != nil {
		return err
	}
	websiteID, err := metadataID(sess.Metadata, "website_id")
	if err != nil {
		return err
	}

	if sess.Subscription != nil {
		exists, err := s.db.Subscription.
			Query().
			Where(entsub.StripeSubscriptionIDEQ(sess.Subscription.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check subscription: %w", err)
		}
		// Replayed webhooks deliver the same subscription again.
		if !exists {
			_, err = s.db.Subscription.
				Create().
				SetStripeSubscriptionID(sess.Subscription.ID).
				SetStripeCustomerID(sess.Customer.ID).
				SetPriceID(s.config.PriceMonthly).
				SetStatus(entsub.StatusActive).
				SetWebsiteID(websiteID).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to record subscription: %w", err)
			}
		}
	}

	if _, err := s.websites.MarkSold(ctx, websiteID, userID); err != nil {
		// A replayed webhook hits an already-sold site; that is not a failure.
		if domain.IsInvalidStateChange(err) {
			s.log.Warn("checkout completed for non-preview website",
				"website_id", websiteID, "error", err)
			return nil
		}
		return err
	}

	s.log.Info("website purchase completed", "website_id", websiteID, "user_id", userID)
	return nil
}

// handleSubscriptionUpdated mirrors Stripe's subscription status locally.
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	n, err := s.db.Subscription.
		Update().
		Where(entsub.StripeSubscriptionIDEQ(sub.ID)).
		SetStatus(entsub.Status(mapStripeStatus(sub.Status))).
		SetCurrentPeriodEnd(time.Unix(sub.CurrentPeriodEnd, 0)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if n == 0 {
		s.log.Warn("subscription update for unknown subscription", "stripe_id", sub.ID)
	}
	return nil
}

// handleSubscriptionDeleted takes the backing website offline.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	stored, err := s.db.Subscription.
		Query().
		Where(entsub.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Warn("cancellation for unknown subscription", "stripe_id", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to look up subscription: %w", err)
	}

	if err := stored.Update().
		SetStatus(entsub.StatusCanceled).
		SetCanceledAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	w, err := stored.QueryWebsite().Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to resolve website: %w", err)
	}

	if _, err := s.websites.Deactivate(ctx, w.ID); err != nil {
		if domain.IsInvalidStateChange(err) {
			s.log.Warn("cancellation for website not active", "website_id", w.ID, "error", err)
			return nil
		}
		return err
	}

	s.log.Info("website deactivated after cancellation", "website_id", w.ID)
	return nil
}

// handleInvoicePaymentFailed marks the subscription past due. The site stays
// up until Stripe gives up and sends the deletion event.
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}
	if invoice.Subscription == nil {
		return nil
	}

	_, err := s.db.Subscription.
		Update().
		Where(entsub.StripeSubscriptionIDEQ(invoice.Subscription.ID)).
		SetStatus(entsub.StatusPastDue).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to flag subscription past due: %w", err)
	}
	return nil
}

func mapStripeStatus(status stripe.SubscriptionStatus) string {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return "active"
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return "past_due"
	case stripe.SubscriptionStatusCanceled:
		return "canceled"
	default:
		return "incomplete"
	}
}

func metadataID(metadata map[string]string, key string) (int, error) {
	raw, ok := metadata[key]
	if !ok {
		return 0, fmt.Errorf("%s not found in metadata", key)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s in metadata: %w", key, err)
	}
	return id, nil
}
