package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestMapStripeStatus(t *testing.T) {
	assert.Equal(t, "active", mapStripeStatus(stripe.SubscriptionStatusActive))
	assert.Equal(t, "active", mapStripeStatus(stripe.SubscriptionStatusTrialing))
	assert.Equal(t, "past_due", mapStripeStatus(stripe.SubscriptionStatusPastDue))
	assert.Equal(t, "past_due", mapStripeStatus(stripe.SubscriptionStatusUnpaid))
	assert.Equal(t, "canceled", mapStripeStatus(stripe.SubscriptionStatusCanceled))
	assert.Equal(t, "incomplete", mapStripeStatus(stripe.SubscriptionStatusIncomplete))
}

func TestMetadataID(t *testing.T) {
	id, err := metadataID(map[string]string{"website_id": "42"}, "website_id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = metadataID(map[string]string{}, "website_id")
	assert.Error(t, err)

	_, err = metadataID(map[string]string{"website_id": "forty-two"}, "website_id")
	assert.Error(t, err)
}
