package models

// CheckoutRequest represents a request to create a checkout session
type CheckoutRequest struct {
	WebsiteID int `json:"website_id" validate:"required,min=1"`
}
