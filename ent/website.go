// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/ent/website"
)

// Website is the model entity for the Website schema.
type Website struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// URL slug the preview and live site are served under
	Slug string `json:"slug,omitempty"`
	// Business name at generation time
	BusinessName string `json:"business_name,omitempty"`
	// Industry key the design selection was made for
	IndustryKey string `json:"industry_key,omitempty"`
	// Design archetype assigned by the layout rotation
	ArchetypeID string `json:"archetype_id,omitempty"`
	// Website lifecycle status
	Status website.Status `json:"status,omitempty"`
	// Customer onboarding progress after purchase
	OnboardingStatus website.OnboardingStatus `json:"onboarding_status,omitempty"`
	// Generated tagline
	Tagline string `json:"tagline,omitempty"`
	// Generated meta description
	Description string `json:"description,omitempty"`
	// Ordered content sections of the generated site
	Sections []map[string]interface{} `json:"sections,omitempty"`
	// Sanitized design tokens the renderer consumes
	DesignTokens map[string]interface{} `json:"design_tokens,omitempty"`
	// Selected palette including derived on-colors
	ColorScheme map[string]string `json:"color_scheme,omitempty"`
	// Curated hero image URL
	HeroImage string `json:"hero_image,omitempty"`
	// Curated gallery image URLs
	Gallery []string `json:"gallery,omitempty"`
	// Customer-supplied corrections and additions from onboarding
	OnboardingData map[string]interface{} `json:"onboarding_data,omitempty"`
	// How many times content was generated for this site
	GenerationCount int `json:"generation_count,omitempty"`
	// When the site was purchased
	SoldAt *time.Time `json:"sold_at,omitempty"`
	// When the site first went live
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Preview expiry; unsold previews are deactivated after this
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebsiteQuery when eager-loading is set.
	Edges             WebsiteEdges `json:"edges"`
	prospect_websites *int
	user_websites     *int
	selectValues      sql.SelectValues
}

// WebsiteEdges holds the relations/edges for other nodes in the graph.
type WebsiteEdges struct {
	// The prospect this site was generated for
	Prospect *Prospect `json:"prospect,omitempty"`
	// Owning customer once the site is sold
	Owner *User `json:"owner,omitempty"`
	// Billing subscriptions backing this site
	Subscriptions []*Subscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProspectOrErr returns the Prospect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebsiteEdges) ProspectOrErr() (*Prospect, error) {
	if e.Prospect != nil {
		return e.Prospect, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prospect.Label}
	}
	return nil, &NotLoadedError{edge: "prospect"}
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebsiteEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e WebsiteEdges) SubscriptionsOrErr() ([]*Subscription, error) {
	if e.loadedTypes[2] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Website) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case website.FieldSections, website.FieldDesignTokens, website.FieldColorScheme, website.FieldGallery, website.FieldOnboardingData:
			values[i] = new([]byte)
		case website.FieldID, website.FieldGenerationCount:
			values[i] = new(sql.NullInt64)
		case website.FieldSlug, website.FieldBusinessName, website.FieldIndustryKey, website.FieldArchetypeID, website.FieldStatus, website.FieldOnboardingStatus, website.FieldTagline, website.FieldDescription, website.FieldHeroImage:
			values[i] = new(sql.NullString)
		case website.FieldSoldAt, website.FieldPublishedAt, website.FieldExpiresAt, website.FieldCreatedAt, website.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case website.ForeignKeys[0]: // prospect_websites
			values[i] = new(sql.NullInt64)
		case website.ForeignKeys[1]: // user_websites
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Website fields.
func (_m *Website) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case website.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case website.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case website.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case website.FieldIndustryKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry_key", values[i])
			} else if value.Valid {
				_m.IndustryKey = value.String
			}
		case website.FieldArchetypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archetype_id", values[i])
			} else if value.Valid {
				_m.ArchetypeID = value.String
			}
		case website.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = website.Status(value.String)
			}
		case website.FieldOnboardingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_status", values[i])
			} else if value.Valid {
				_m.OnboardingStatus = website.OnboardingStatus(value.String)
			}
		case website.FieldTagline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tagline", values[i])
			} else if value.Valid {
				_m.Tagline = value.String
			}
		case website.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case website.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case website.FieldDesignTokens:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field design_tokens", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DesignTokens); err != nil {
					return fmt.Errorf("unmarshal field design_tokens: %w", err)
				}
			}
		case website.FieldColorScheme:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field color_scheme", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ColorScheme); err != nil {
					return fmt.Errorf("unmarshal field color_scheme: %w", err)
				}
			}
		case website.FieldHeroImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hero_image", values[i])
			} else if value.Valid {
				_m.HeroImage = value.String
			}
		case website.FieldGallery:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gallery", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gallery); err != nil {
					return fmt.Errorf("unmarshal field gallery: %w", err)
				}
			}
		case website.FieldOnboardingData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OnboardingData); err != nil {
					return fmt.Errorf("unmarshal field onboarding_data: %w", err)
				}
			}
		case website.FieldGenerationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_count", values[i])
			} else if value.Valid {
				_m.GenerationCount = int(value.Int64)
			}
		case website.FieldSoldAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sold_at", values[i])
			} else if value.Valid {
				_m.SoldAt = new(time.Time)
				*_m.SoldAt = value.Time
			}
		case website.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case website.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case website.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case website.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case website.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field prospect_websites", value)
			} else if value.Valid {
				_m.prospect_websites = new(int)
				*_m.prospect_websites = int(value.Int64)
			}
		case website.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field user_websites", value)
			} else if value.Valid {
				_m.user_websites = new(int)
				*_m.user_websites = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Website.
// This includes values selected through modifiers, order, etc.
func (_m *Website) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProspect queries the "prospect" edge of the Website entity.
func (_m *Website) QueryProspect() *ProspectQuery {
	return NewWebsiteClient(_m.config).QueryProspect(_m)
}

// QueryOwner queries the "owner" edge of the Website entity.
func (_m *Website) QueryOwner() *UserQuery {
	return NewWebsiteClient(_m.config).QueryOwner(_m)
}

// QuerySubscriptions queries the "subscriptions" edge of the Website entity.
func (_m *Website) QuerySubscriptions() *SubscriptionQuery {
	return NewWebsiteClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this Website.
// Note that you need to call Website.Unwrap() before calling this method if this Website
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Website) Update() *WebsiteUpdateOne {
	return NewWebsiteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Website entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Website) Unwrap() *Website {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Website is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Website) String() string {
	var builder strings.Builder
	builder.WriteString("Website(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("business_name=")
	builder.WriteString(_m.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("industry_key=")
	builder.WriteString(_m.IndustryKey)
	builder.WriteString(", ")
	builder.WriteString("archetype_id=")
	builder.WriteString(_m.ArchetypeID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("onboarding_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingStatus))
	builder.WriteString(", ")
	builder.WriteString("tagline=")
	builder.WriteString(_m.Tagline)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("design_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.DesignTokens))
	builder.WriteString(", ")
	builder.WriteString("color_scheme=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColorScheme))
	builder.WriteString(", ")
	builder.WriteString("hero_image=")
	builder.WriteString(_m.HeroImage)
	builder.WriteString(", ")
	builder.WriteString("gallery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gallery))
	builder.WriteString(", ")
	builder.WriteString("onboarding_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingData))
	builder.WriteString(", ")
	builder.WriteString("generation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationCount))
	builder.WriteString(", ")
	if v := _m.SoldAt; v != nil {
		builder.WriteString("sold_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Websites is a parsable slice of Website.
type Websites []*Website
