package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Website holds the schema definition for the Website entity: one generated
// site with its full content document, design selection and lifecycle state.
type Website struct {
	ent.Schema
}

// Fields of the Website.
func (Website) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("URL slug the preview and live site are served under"),
		field.String("business_name").
			NotEmpty().
			Comment("Business name at generation time"),
		field.String("industry_key").
			Default("general").
			Comment("Industry key the design selection was made for"),
		field.String("archetype_id").
			NotEmpty().
			Comment("Design archetype assigned by the layout rotation"),
		field.Enum("status").
			Values("preview", "sold", "active", "inactive").
			Default("preview").
			Comment("Website lifecycle status"),
		field.Enum("onboarding_status").
			Values("pending", "in_progress", "completed").
			Default("pending").
			Comment("Customer onboarding progress after purchase"),
		field.String("tagline").
			Optional().
			Comment("Generated tagline"),
		field.Text("description").
			Optional().
			Comment("Generated meta description"),
		field.JSON("sections", []map[string]interface{}{}).
			Comment("Ordered content sections of the generated site"),
		field.JSON("design_tokens", map[string]interface{}{}).
			Comment("Sanitized design tokens the renderer consumes"),
		field.JSON("color_scheme", map[string]string{}).
			Comment("Selected palette including derived on-colors"),
		field.String("hero_image").
			Optional().
			Comment("Curated hero image URL"),
		field.JSON("gallery", []string{}).
			Optional().
			Comment("Curated gallery image URLs"),
		field.JSON("onboarding_data", map[string]interface{}{}).
			Optional().
			Comment("Customer-supplied corrections and additions from onboarding"),
		field.Int("generation_count").
			Default(1).
			Positive().
			Comment("How many times content was generated for this site"),
		field.Time("sold_at").
			Optional().
			Nillable().
			Comment("When the site was purchased"),
		field.Time("published_at").
			Optional().
			Nillable().
			Comment("When the site first went live"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Preview expiry; unsold previews are deactivated after this"),
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

// Edges of the Website.
func (Website) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prospect", Prospect.Type).
			Ref("websites").
			Unique().
			Comment("The prospect this site was generated for"),
		edge.From("owner", User.Type).
			Ref("websites").
			Unique().
			Comment("Owning customer once the site is sold"),
		edge.To("subscriptions", Subscription.Type).
			Comment("Billing subscriptions backing this site"),
	}
}

// Indexes of the Website.
func (Website) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
		index.Fields("status"),
		index.Fields("industry_key"),
		index.Fields("archetype_id"),
		index.Fields("expires_at"),
		index.Fields("created_at"),
	}
}
