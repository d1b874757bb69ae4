// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProspectsColumns holds the columns for the "prospects" table.
	ProspectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "industry_key", Type: field.TypeString, Default: "general"},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "existing_website", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "opening_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "place_id", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "generated", "contacted", "converted", "rejected"}, Default: "new"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProspectsTable holds the schema information for the "prospects" table.
	ProspectsTable = &schema.Table{
		Name:       "prospects",
		Columns:    ProspectsColumns,
		PrimaryKey: []*schema.Column{ProspectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prospect_place_id",
				Unique:  true,
				Columns: []*schema.Column{ProspectsColumns[13]},
			},
			{
				Name:    "prospect_industry_key",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[3]},
			},
			{
				Name:    "prospect_status",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[15]},
			},
			{
				Name:    "prospect_city",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[5]},
			},
			{
				Name:    "prospect_score",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[14]},
			},
			{
				Name:    "prospect_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[16]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "stripe_customer_id", Type: field.TypeString},
		{Name: "price_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "canceled", "incomplete"}, Default: "incomplete"},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "website_subscriptions", Type: field.TypeInt, Nullable: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_websites_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[9]},
				RefColumns: []*schema.Column{WebsitesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[1]},
			},
			{
				Name:    "subscription_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[2]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"customer", "sales", "admin"}, Default: "customer"},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// WebsitesColumns holds the columns for the "websites" table.
	WebsitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "business_name", Type: field.TypeString},
		{Name: "industry_key", Type: field.TypeString, Default: "general"},
		{Name: "archetype_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"preview", "sold", "active", "inactive"}, Default: "preview"},
		{Name: "onboarding_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "tagline", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sections", Type: field.TypeJSON},
		{Name: "design_tokens", Type: field.TypeJSON},
		{Name: "color_scheme", Type: field.TypeJSON},
		{Name: "hero_image", Type: field.TypeString, Nullable: true},
		{Name: "gallery", Type: field.TypeJSON, Nullable: true},
		{Name: "onboarding_data", Type: field.TypeJSON, Nullable: true},
		{Name: "generation_count", Type: field.TypeInt, Default: 1},
		{Name: "sold_at", Type: field.TypeTime, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prospect_websites", Type: field.TypeInt, Nullable: true},
		{Name: "user_websites", Type: field.TypeInt, Nullable: true},
	}
	// WebsitesTable holds the schema information for the "websites" table.
	WebsitesTable = &schema.Table{
		Name:       "websites",
		Columns:    WebsitesColumns,
		PrimaryKey: []*schema.Column{WebsitesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "websites_prospects_websites",
				Columns:    []*schema.Column{WebsitesColumns[21]},
				RefColumns: []*schema.Column{ProspectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "websites_users_websites",
				Columns:    []*schema.Column{WebsitesColumns[22]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "website_slug",
				Unique:  true,
				Columns: []*schema.Column{WebsitesColumns[1]},
			},
			{
				Name:    "website_status",
				Unique:  false,
				Columns: []*schema.Column{WebsitesColumns[5]},
			},
			{
				Name:    "website_industry_key",
				Unique:  false,
				Columns: []*schema.Column{WebsitesColumns[3]},
			},
			{
				Name:    "website_archetype_id",
				Unique:  false,
				Columns: []*schema.Column{WebsitesColumns[4]},
			},
			{
				Name:    "website_expires_at",
				Unique:  false,
				Columns: []*schema.Column{WebsitesColumns[18]},
			},
			{
				Name:    "website_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebsitesColumns[19]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProspectsTable,
		SubscriptionsTable,
		UsersTable,
		WebsitesTable,
	}
)

func init() {
	SubscriptionsTable.ForeignKeys[0].RefTable = WebsitesTable
	WebsitesTable.ForeignKeys[0].RefTable = ProspectsTable
	WebsitesTable.ForeignKeys[1].RefTable = UsersTable
}
