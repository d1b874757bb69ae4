package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prospect holds the schema definition for the Prospect entity: a local
// business discovered through Places ingestion, before and after it gets a
// generated website.
type Prospect struct {
	ent.Schema
}

// Fields of the Prospect.
func (Prospect) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Business name"),
		field.String("category").
			Optional().
			Comment("Raw business category as discovered (e.g. Friseursalon)"),
		field.String("industry_key").
			Default("general").
			Comment("Normalized industry key from classification"),
		field.String("address").
			Optional().
			Comment("Full street address"),
		field.String("city").
			Optional().
			Comment("City name"),
		field.String("postal_code").
			Optional().
			Comment("Postal code"),
		field.String("phone").
			Optional().
			Comment("Phone number in E.164 format"),
		field.String("email").
			Optional().
			Comment("Contact email if known"),
		field.String("existing_website").
			Optional().
			Comment("URL of an existing site, empty when the business has none"),
		field.Float("rating").
			Optional().
			Nillable().
			Comment("Aggregated review rating (0-5)"),
		field.Int("review_count").
			Default(0).
			NonNegative().
			Comment("Number of public reviews"),
		field.JSON("opening_hours", []string{}).
			Optional().
			Comment("Human-readable opening hours lines"),
		field.String("place_id").
			Optional().
			Comment("External place identifier from the ingestion source"),
		field.Int("score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Outreach priority score"),
		field.Enum("status").
			Values("new", "generated", "contacted", "converted", "rejected").
			Default("new").
			Comment("Outreach pipeline status"),
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

// Edges of the Prospect.
func (Prospect) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("websites", Website.Type).
			Comment("Generated websites for this prospect"),
	}
}

// Indexes of the Prospect.
func (Prospect) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("place_id").Unique(),
		index.Fields("industry_key"),
		index.Fields("status"),
		index.Fields("city"),
		index.Fields("score"),
		index.Fields("created_at"),
	}
}
