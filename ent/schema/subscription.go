package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity,
// mirroring the Stripe subscription that keeps a website paid for.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("stripe_subscription_id").
			Unique().
			NotEmpty().
			Comment("Stripe subscription ID"),
		field.String("stripe_customer_id").
			NotEmpty().
			Comment("Stripe customer ID"),
		field.String("price_id").
			NotEmpty().
			Comment("Stripe price the customer is billed on"),
		field.Enum("status").
			Values("active", "past_due", "canceled", "incomplete").
			Default("incomplete").
			Comment("Subscription status as reported by Stripe"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("End of the current billing period"),
		field.Time("canceled_at").
			Optional().
			Nillable().
			Comment("When the subscription was canceled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("website", Website.Type).
			Ref("subscriptions").
			Unique().
			Comment("The website this subscription pays for"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_subscription_id").Unique(),
		index.Fields("stripe_customer_id"),
		index.Fields("status"),
	}
}
