// Code generated by ent, DO NOT EDIT.

package website

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the website type in the database.
	Label = "website"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldIndustryKey holds the string denoting the industry_key field in the database.
	FieldIndustryKey = "industry_key"
	// FieldArchetypeID holds the string denoting the archetype_id field in the database.
	FieldArchetypeID = "archetype_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOnboardingStatus holds the string denoting the onboarding_status field in the database.
	FieldOnboardingStatus = "onboarding_status"
	// FieldTagline holds the string denoting the tagline field in the database.
	FieldTagline = "tagline"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSections holds the string denoting the sections field in the database.
	FieldSections = "sections"
	// FieldDesignTokens holds the string denoting the design_tokens field in the database.
	FieldDesignTokens = "design_tokens"
	// FieldColorScheme holds the string denoting the color_scheme field in the database.
	FieldColorScheme = "color_scheme"
	// FieldHeroImage holds the string denoting the hero_image field in the database.
	FieldHeroImage = "hero_image"
	// FieldGallery holds the string denoting the gallery field in the database.
	FieldGallery = "gallery"
	// FieldOnboardingData holds the string denoting the onboarding_data field in the database.
	FieldOnboardingData = "onboarding_data"
	// FieldGenerationCount holds the string denoting the generation_count field in the database.
	FieldGenerationCount = "generation_count"
	// FieldSoldAt holds the string denoting the sold_at field in the database.
	FieldSoldAt = "sold_at"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProspect holds the string denoting the prospect edge name in mutations.
	EdgeProspect = "prospect"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeSubscriptions holds the string denoting the subscriptions edge name in mutations.
	EdgeSubscriptions = "subscriptions"
	// Table holds the table name of the website in the database.
	Table = "websites"
	// ProspectTable is the table that holds the prospect relation/edge.
	ProspectTable = "websites"
	// ProspectInverseTable is the table name for the Prospect entity.
	// It exists in this package in order to avoid circular dependency with the "prospect" package.
	ProspectInverseTable = "prospects"
	// ProspectColumn is the table column denoting the prospect relation/edge.
	ProspectColumn = "prospect_websites"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "websites"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_websites"
	// SubscriptionsTable is the table that holds the subscriptions relation/edge.
	SubscriptionsTable = "subscriptions"
	// SubscriptionsInverseTable is the table name for the Subscription entity.
	// It exists in this package in order to avoid circular dependency with the "subscription" package.
	SubscriptionsInverseTable = "subscriptions"
	// SubscriptionsColumn is the table column denoting the subscriptions relation/edge.
	SubscriptionsColumn = "website_subscriptions"
)

// Columns holds all SQL columns for website fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldBusinessName,
	FieldIndustryKey,
	FieldArchetypeID,
	FieldStatus,
	FieldOnboardingStatus,
	FieldTagline,
	FieldDescription,
	FieldSections,
	FieldDesignTokens,
	FieldColorScheme,
	FieldHeroImage,
	FieldGallery,
	FieldOnboardingData,
	FieldGenerationCount,
	FieldSoldAt,
	FieldPublishedAt,
	FieldExpiresAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "websites"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"prospect_websites",
	"user_websites",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	BusinessNameValidator func(string) error
	// DefaultIndustryKey holds the default value on creation for the "industry_key" field.
	DefaultIndustryKey string
	// ArchetypeIDValidator is a validator for the "archetype_id" field. It is called by the builders before save.
	ArchetypeIDValidator func(string) error
	// DefaultGenerationCount holds the default value on creation for the "generation_count" field.
	DefaultGenerationCount int
	// GenerationCountValidator is a validator for the "generation_count" field. It is called by the builders before save.
	GenerationCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPreview is the default value of the Status enum.
const DefaultStatus = StatusPreview

// Status values.
const (
	StatusPreview  Status = "preview"
	StatusSold     Status = "sold"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPreview, StatusSold, StatusActive, StatusInactive:
		return nil
	default:
		return fmt.Errorf("website: invalid enum value for status field: %q", s)
	}
}

// OnboardingStatus defines the type for the "onboarding_status" enum field.
type OnboardingStatus string

// OnboardingStatusPending is the default value of the OnboardingStatus enum.
const DefaultOnboardingStatus = OnboardingStatusPending

// OnboardingStatus values.
const (
	OnboardingStatusPending    OnboardingStatus = "pending"
	OnboardingStatusInProgress OnboardingStatus = "in_progress"
	OnboardingStatusCompleted  OnboardingStatus = "completed"
)

func (os OnboardingStatus) String() string {
	return string(os)
}

// OnboardingStatusValidator is a validator for the "onboarding_status" field enum values. It is called by the builders before save.
func OnboardingStatusValidator(os OnboardingStatus) error {
	switch os {
	case OnboardingStatusPending, OnboardingStatusInProgress, OnboardingStatusCompleted:
		return nil
	default:
		return fmt.Errorf("website: invalid enum value for onboarding_status field: %q", os)
	}
}

// OrderOption defines the ordering options for the Website queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByIndustryKey orders the results by the industry_key field.
func ByIndustryKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustryKey, opts...).ToFunc()
}

// ByArchetypeID orders the results by the archetype_id field.
func ByArchetypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchetypeID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOnboardingStatus orders the results by the onboarding_status field.
func ByOnboardingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnboardingStatus, opts...).ToFunc()
}

// ByTagline orders the results by the tagline field.
func ByTagline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagline, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByHeroImage orders the results by the hero_image field.
func ByHeroImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeroImage, opts...).ToFunc()
}

// ByGenerationCount orders the results by the generation_count field.
func ByGenerationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationCount, opts...).ToFunc()
}

// BySoldAt orders the results by the sold_at field.
func BySoldAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoldAt, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProspectField orders the results by prospect field.
func ByProspectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProspectStep(), sql.OrderByField(field, opts...))
	}
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// BySubscriptionsCount orders the results by subscriptions count.
func BySubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscriptionsStep(), opts...)
	}
}

// BySubscriptions orders the results by subscriptions terms.
func BySubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProspectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProspectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
	)
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
	)
}
