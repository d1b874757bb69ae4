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
)

// Prospect is the model entity for the Prospect schema.
type Prospect struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Business name
	Name string `json:"name,omitempty"`
	// Raw business category as discovered (e.g. Friseursalon)
	Category string `json:"category,omitempty"`
	// Normalized industry key from classification
	IndustryKey string `json:"industry_key,omitempty"`
	// Full street address
	Address string `json:"address,omitempty"`
	// City name
	City string `json:"city,omitempty"`
	// Postal code
	PostalCode string `json:"postal_code,omitempty"`
	// Phone number in E.164 format
	Phone string `json:"phone,omitempty"`
	// Contact email if known
	Email string `json:"email,omitempty"`
	// URL of an existing site, empty when the business has none
	ExistingWebsite string `json:"existing_website,omitempty"`
	// Aggregated review rating (0-5)
	Rating *float64 `json:"rating,omitempty"`
	// Number of public reviews
	ReviewCount int `json:"review_count,omitempty"`
	// Human-readable opening hours lines
	OpeningHours []string `json:"opening_hours,omitempty"`
	// External place identifier from the ingestion source
	PlaceID string `json:"place_id,omitempty"`
	// Outreach priority score
	Score int `json:"score,omitempty"`
	// Outreach pipeline status
	Status prospect.Status `json:"status,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProspectQuery when eager-loading is set.
	Edges        ProspectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProspectEdges holds the relations/edges for other nodes in the graph.
type ProspectEdges struct {
	// Generated websites for this prospect
	Websites []*Website `json:"websites,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WebsitesOrErr returns the Websites value or an error if the edge
// was not loaded in eager-loading.
func (e ProspectEdges) WebsitesOrErr() ([]*Website, error) {
	if e.loadedTypes[0] {
		return e.Websites, nil
	}
	return nil, &NotLoadedError{edge: "websites"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prospect) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prospect.FieldOpeningHours:
			values[i] = new([]byte)
		case prospect.FieldRating:
			values[i] = new(sql.NullFloat64)
		case prospect.FieldID, prospect.FieldReviewCount, prospect.FieldScore:
			values[i] = new(sql.NullInt64)
		case prospect.FieldName, prospect.FieldCategory, prospect.FieldIndustryKey, prospect.FieldAddress, prospect.FieldCity, prospect.FieldPostalCode, prospect.FieldPhone, prospect.FieldEmail, prospect.FieldExistingWebsite, prospect.FieldPlaceID, prospect.FieldStatus:
			values[i] = new(sql.NullString)
		case prospect.FieldCreatedAt, prospect.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prospect fields.
func (_m *Prospect) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prospect.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case prospect.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case prospect.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case prospect.FieldIndustryKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry_key", values[i])
			} else if value.Valid {
				_m.IndustryKey = value.String
			}
		case prospect.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case prospect.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case prospect.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = value.String
			}
		case prospect.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case prospect.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case prospect.FieldExistingWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field existing_website", values[i])
			} else if value.Valid {
				_m.ExistingWebsite = value.String
			}
		case prospect.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = new(float64)
				*_m.Rating = value.Float64
			}
		case prospect.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case prospect.FieldOpeningHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opening_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OpeningHours); err != nil {
					return fmt.Errorf("unmarshal field opening_hours: %w", err)
				}
			}
		case prospect.FieldPlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field place_id", values[i])
			} else if value.Valid {
				_m.PlaceID = value.String
			}
		case prospect.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case prospect.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prospect.Status(value.String)
			}
		case prospect.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prospect.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prospect.
// This includes values selected through modifiers, order, etc.
func (_m *Prospect) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWebsites queries the "websites" edge of the Prospect entity.
func (_m *Prospect) QueryWebsites() *WebsiteQuery {
	return NewProspectClient(_m.config).QueryWebsites(_m)
}

// Update returns a builder for updating this Prospect.
// Note that you need to call Prospect.Unwrap() before calling this method if this Prospect
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prospect) Update() *ProspectUpdateOne {
	return NewProspectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prospect entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prospect) Unwrap() *Prospect {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prospect is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prospect) String() string {
	var builder strings.Builder
	builder.WriteString("Prospect(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("industry_key=")
	builder.WriteString(_m.IndustryKey)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(_m.PostalCode)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("existing_website=")
	builder.WriteString(_m.ExistingWebsite)
	builder.WriteString(", ")
	if v := _m.Rating; v != nil {
		builder.WriteString("rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("opening_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpeningHours))
	builder.WriteString(", ")
	builder.WriteString("place_id=")
	builder.WriteString(_m.PlaceID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Prospects is a parsable slice of Prospect.
type Prospects []*Prospect
