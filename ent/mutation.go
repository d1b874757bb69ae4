// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sitewerk/sitewerk/ent/predicate"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/subscription"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/ent/website"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProspect     = "Prospect"
	TypeSubscription = "Subscription"
	TypeUser         = "User"
	TypeWebsite      = "Website"
)

// ProspectMutation represents an operation that mutates the Prospect nodes in the graph.
type ProspectMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	category            *string
	industry_key        *string
	address             *string
	city                *string
	postal_code         *string
	phone               *string
	email               *string
	existing_website    *string
	rating              *float64
	addrating           *float64
	review_count        *int
	addreview_count     *int
	opening_hours       *[]string
	appendopening_hours []string
	place_id            *string
	score               *int
	addscore            *int
	status              *prospect.Status
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	websites            map[int]struct{}
	removedwebsites     map[int]struct{}
	clearedwebsites     bool
	done                bool
	oldValue            func(context.Context) (*Prospect, error)
	predicates          []predicate.Prospect
}

var _ ent.Mutation = (*ProspectMutation)(nil)

// prospectOption allows management of the mutation configuration using functional options.
type prospectOption func(*ProspectMutation)

// newProspectMutation creates new mutation for the Prospect entity.
func newProspectMutation(c config, op Op, opts ...prospectOption) *ProspectMutation {
	m := &ProspectMutation{
		config:        c,
		op:            op,
		typ:           TypeProspect,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProspectID sets the ID field of the mutation.
func withProspectID(id int) prospectOption {
	return func(m *ProspectMutation) {
		var (
			err   error
			once  sync.Once
			value *Prospect
		)
		m.oldValue = func(ctx context.Context) (*Prospect, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prospect.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProspect sets the old Prospect of the mutation.
func withProspect(node *Prospect) prospectOption {
	return func(m *ProspectMutation) {
		m.oldValue = func(context.Context) (*Prospect, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProspectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProspectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProspectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProspectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prospect.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProspectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProspectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProspectMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *ProspectMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ProspectMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ProspectMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[prospect.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ProspectMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[prospect.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ProspectMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, prospect.FieldCategory)
}

// SetIndustryKey sets the "industry_key" field.
func (m *ProspectMutation) SetIndustryKey(s string) {
	m.industry_key = &s
}

// IndustryKey returns the value of the "industry_key" field in the mutation.
func (m *ProspectMutation) IndustryKey() (r string, exists bool) {
	v := m.industry_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustryKey returns the old "industry_key" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldIndustryKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustryKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustryKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustryKey: %w", err)
	}
	return oldValue.IndustryKey, nil
}

// ResetIndustryKey resets all changes to the "industry_key" field.
func (m *ProspectMutation) ResetIndustryKey() {
	m.industry_key = nil
}

// SetAddress sets the "address" field.
func (m *ProspectMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ProspectMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ProspectMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[prospect.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ProspectMutation) AddressCleared() bool {
	_, ok := m.clearedFields[prospect.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ProspectMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, prospect.FieldAddress)
}

// SetCity sets the "city" field.
func (m *ProspectMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ProspectMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ProspectMutation) ClearCity() {
	m.city = nil
	m.clearedFields[prospect.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ProspectMutation) CityCleared() bool {
	_, ok := m.clearedFields[prospect.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ProspectMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, prospect.FieldCity)
}

// SetPostalCode sets the "postal_code" field.
func (m *ProspectMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *ProspectMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *ProspectMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[prospect.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *ProspectMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *ProspectMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, prospect.FieldPostalCode)
}

// SetPhone sets the "phone" field.
func (m *ProspectMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ProspectMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ProspectMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[prospect.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ProspectMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ProspectMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, prospect.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *ProspectMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProspectMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProspectMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[prospect.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProspectMutation) EmailCleared() bool {
	_, ok := m.clearedFields[prospect.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProspectMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, prospect.FieldEmail)
}

// SetExistingWebsite sets the "existing_website" field.
func (m *ProspectMutation) SetExistingWebsite(s string) {
	m.existing_website = &s
}

// ExistingWebsite returns the value of the "existing_website" field in the mutation.
func (m *ProspectMutation) ExistingWebsite() (r string, exists bool) {
	v := m.existing_website
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingWebsite returns the old "existing_website" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldExistingWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingWebsite: %w", err)
	}
	return oldValue.ExistingWebsite, nil
}

// ClearExistingWebsite clears the value of the "existing_website" field.
func (m *ProspectMutation) ClearExistingWebsite() {
	m.existing_website = nil
	m.clearedFields[prospect.FieldExistingWebsite] = struct{}{}
}

// ExistingWebsiteCleared returns if the "existing_website" field was cleared in this mutation.
func (m *ProspectMutation) ExistingWebsiteCleared() bool {
	_, ok := m.clearedFields[prospect.FieldExistingWebsite]
	return ok
}

// ResetExistingWebsite resets all changes to the "existing_website" field.
func (m *ProspectMutation) ResetExistingWebsite() {
	m.existing_website = nil
	delete(m.clearedFields, prospect.FieldExistingWebsite)
}

// SetRating sets the "rating" field.
func (m *ProspectMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ProspectMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldRating(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *ProspectMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ProspectMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *ProspectMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[prospect.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *ProspectMutation) RatingCleared() bool {
	_, ok := m.clearedFields[prospect.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *ProspectMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, prospect.FieldRating)
}

// SetReviewCount sets the "review_count" field.
func (m *ProspectMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *ProspectMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *ProspectMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *ProspectMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *ProspectMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetOpeningHours sets the "opening_hours" field.
func (m *ProspectMutation) SetOpeningHours(s []string) {
	m.opening_hours = &s
	m.appendopening_hours = nil
}

// OpeningHours returns the value of the "opening_hours" field in the mutation.
func (m *ProspectMutation) OpeningHours() (r []string, exists bool) {
	v := m.opening_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningHours returns the old "opening_hours" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldOpeningHours(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningHours: %w", err)
	}
	return oldValue.OpeningHours, nil
}

// AppendOpeningHours adds s to the "opening_hours" field.
func (m *ProspectMutation) AppendOpeningHours(s []string) {
	m.appendopening_hours = append(m.appendopening_hours, s...)
}

// AppendedOpeningHours returns the list of values that were appended to the "opening_hours" field in this mutation.
func (m *ProspectMutation) AppendedOpeningHours() ([]string, bool) {
	if len(m.appendopening_hours) == 0 {
		return nil, false
	}
	return m.appendopening_hours, true
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (m *ProspectMutation) ClearOpeningHours() {
	m.opening_hours = nil
	m.appendopening_hours = nil
	m.clearedFields[prospect.FieldOpeningHours] = struct{}{}
}

// OpeningHoursCleared returns if the "opening_hours" field was cleared in this mutation.
func (m *ProspectMutation) OpeningHoursCleared() bool {
	_, ok := m.clearedFields[prospect.FieldOpeningHours]
	return ok
}

// ResetOpeningHours resets all changes to the "opening_hours" field.
func (m *ProspectMutation) ResetOpeningHours() {
	m.opening_hours = nil
	m.appendopening_hours = nil
	delete(m.clearedFields, prospect.FieldOpeningHours)
}

// SetPlaceID sets the "place_id" field.
func (m *ProspectMutation) SetPlaceID(s string) {
	m.place_id = &s
}

// PlaceID returns the value of the "place_id" field in the mutation.
func (m *ProspectMutation) PlaceID() (r string, exists bool) {
	v := m.place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceID returns the old "place_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceID: %w", err)
	}
	return oldValue.PlaceID, nil
}

// ClearPlaceID clears the value of the "place_id" field.
func (m *ProspectMutation) ClearPlaceID() {
	m.place_id = nil
	m.clearedFields[prospect.FieldPlaceID] = struct{}{}
}

// PlaceIDCleared returns if the "place_id" field was cleared in this mutation.
func (m *ProspectMutation) PlaceIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPlaceID]
	return ok
}

// ResetPlaceID resets all changes to the "place_id" field.
func (m *ProspectMutation) ResetPlaceID() {
	m.place_id = nil
	delete(m.clearedFields, prospect.FieldPlaceID)
}

// SetScore sets the "score" field.
func (m *ProspectMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ProspectMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ProspectMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ProspectMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ProspectMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetStatus sets the "status" field.
func (m *ProspectMutation) SetStatus(pr prospect.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProspectMutation) Status() (r prospect.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldStatus(ctx context.Context) (v prospect.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProspectMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProspectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProspectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProspectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProspectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProspectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProspectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddWebsiteIDs adds the "websites" edge to the Website entity by ids.
func (m *ProspectMutation) AddWebsiteIDs(ids ...int) {
	if m.websites == nil {
		m.websites = make(map[int]struct{})
	}
	for i := range ids {
		m.websites[ids[i]] = struct{}{}
	}
}

// ClearWebsites clears the "websites" edge to the Website entity.
func (m *ProspectMutation) ClearWebsites() {
	m.clearedwebsites = true
}

// WebsitesCleared reports if the "websites" edge to the Website entity was cleared.
func (m *ProspectMutation) WebsitesCleared() bool {
	return m.clearedwebsites
}

// RemoveWebsiteIDs removes the "websites" edge to the Website entity by IDs.
func (m *ProspectMutation) RemoveWebsiteIDs(ids ...int) {
	if m.removedwebsites == nil {
		m.removedwebsites = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.websites, ids[i])
		m.removedwebsites[ids[i]] = struct{}{}
	}
}

// RemovedWebsites returns the removed IDs of the "websites" edge to the Website entity.
func (m *ProspectMutation) RemovedWebsitesIDs() (ids []int) {
	for id := range m.removedwebsites {
		ids = append(ids, id)
	}
	return
}

// WebsitesIDs returns the "websites" edge IDs in the mutation.
func (m *ProspectMutation) WebsitesIDs() (ids []int) {
	for id := range m.websites {
		ids = append(ids, id)
	}
	return
}

// ResetWebsites resets all changes to the "websites" edge.
func (m *ProspectMutation) ResetWebsites() {
	m.websites = nil
	m.clearedwebsites = false
	m.removedwebsites = nil
}

// Where appends a list predicates to the ProspectMutation builder.
func (m *ProspectMutation) Where(ps ...predicate.Prospect) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProspectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProspectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prospect, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProspectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProspectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prospect).
func (m *ProspectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProspectMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.name != nil {
		fields = append(fields, prospect.FieldName)
	}
	if m.category != nil {
		fields = append(fields, prospect.FieldCategory)
	}
	if m.industry_key != nil {
		fields = append(fields, prospect.FieldIndustryKey)
	}
	if m.address != nil {
		fields = append(fields, prospect.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, prospect.FieldCity)
	}
	if m.postal_code != nil {
		fields = append(fields, prospect.FieldPostalCode)
	}
	if m.phone != nil {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.existing_website != nil {
		fields = append(fields, prospect.FieldExistingWebsite)
	}
	if m.rating != nil {
		fields = append(fields, prospect.FieldRating)
	}
	if m.review_count != nil {
		fields = append(fields, prospect.FieldReviewCount)
	}
	if m.opening_hours != nil {
		fields = append(fields, prospect.FieldOpeningHours)
	}
	if m.place_id != nil {
		fields = append(fields, prospect.FieldPlaceID)
	}
	if m.score != nil {
		fields = append(fields, prospect.FieldScore)
	}
	if m.status != nil {
		fields = append(fields, prospect.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, prospect.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prospect.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProspectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldName:
		return m.Name()
	case prospect.FieldCategory:
		return m.Category()
	case prospect.FieldIndustryKey:
		return m.IndustryKey()
	case prospect.FieldAddress:
		return m.Address()
	case prospect.FieldCity:
		return m.City()
	case prospect.FieldPostalCode:
		return m.PostalCode()
	case prospect.FieldPhone:
		return m.Phone()
	case prospect.FieldEmail:
		return m.Email()
	case prospect.FieldExistingWebsite:
		return m.ExistingWebsite()
	case prospect.FieldRating:
		return m.Rating()
	case prospect.FieldReviewCount:
		return m.ReviewCount()
	case prospect.FieldOpeningHours:
		return m.OpeningHours()
	case prospect.FieldPlaceID:
		return m.PlaceID()
	case prospect.FieldScore:
		return m.Score()
	case prospect.FieldStatus:
		return m.Status()
	case prospect.FieldCreatedAt:
		return m.CreatedAt()
	case prospect.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProspectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prospect.FieldName:
		return m.OldName(ctx)
	case prospect.FieldCategory:
		return m.OldCategory(ctx)
	case prospect.FieldIndustryKey:
		return m.OldIndustryKey(ctx)
	case prospect.FieldAddress:
		return m.OldAddress(ctx)
	case prospect.FieldCity:
		return m.OldCity(ctx)
	case prospect.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case prospect.FieldPhone:
		return m.OldPhone(ctx)
	case prospect.FieldEmail:
		return m.OldEmail(ctx)
	case prospect.FieldExistingWebsite:
		return m.OldExistingWebsite(ctx)
	case prospect.FieldRating:
		return m.OldRating(ctx)
	case prospect.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case prospect.FieldOpeningHours:
		return m.OldOpeningHours(ctx)
	case prospect.FieldPlaceID:
		return m.OldPlaceID(ctx)
	case prospect.FieldScore:
		return m.OldScore(ctx)
	case prospect.FieldStatus:
		return m.OldStatus(ctx)
	case prospect.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prospect.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prospect field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prospect.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case prospect.FieldIndustryKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustryKey(v)
		return nil
	case prospect.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case prospect.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case prospect.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case prospect.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case prospect.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case prospect.FieldExistingWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingWebsite(v)
		return nil
	case prospect.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case prospect.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case prospect.FieldOpeningHours:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningHours(v)
		return nil
	case prospect.FieldPlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceID(v)
		return nil
	case prospect.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case prospect.FieldStatus:
		v, ok := value.(prospect.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case prospect.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prospect.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProspectMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, prospect.FieldRating)
	}
	if m.addreview_count != nil {
		fields = append(fields, prospect.FieldReviewCount)
	}
	if m.addscore != nil {
		fields = append(fields, prospect.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProspectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldRating:
		return m.AddedRating()
	case prospect.FieldReviewCount:
		return m.AddedReviewCount()
	case prospect.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case prospect.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case prospect.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProspectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prospect.FieldCategory) {
		fields = append(fields, prospect.FieldCategory)
	}
	if m.FieldCleared(prospect.FieldAddress) {
		fields = append(fields, prospect.FieldAddress)
	}
	if m.FieldCleared(prospect.FieldCity) {
		fields = append(fields, prospect.FieldCity)
	}
	if m.FieldCleared(prospect.FieldPostalCode) {
		fields = append(fields, prospect.FieldPostalCode)
	}
	if m.FieldCleared(prospect.FieldPhone) {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.FieldCleared(prospect.FieldEmail) {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.FieldCleared(prospect.FieldExistingWebsite) {
		fields = append(fields, prospect.FieldExistingWebsite)
	}
	if m.FieldCleared(prospect.FieldRating) {
		fields = append(fields, prospect.FieldRating)
	}
	if m.FieldCleared(prospect.FieldOpeningHours) {
		fields = append(fields, prospect.FieldOpeningHours)
	}
	if m.FieldCleared(prospect.FieldPlaceID) {
		fields = append(fields, prospect.FieldPlaceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProspectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProspectMutation) ClearField(name string) error {
	switch name {
	case prospect.FieldCategory:
		m.ClearCategory()
		return nil
	case prospect.FieldAddress:
		m.ClearAddress()
		return nil
	case prospect.FieldCity:
		m.ClearCity()
		return nil
	case prospect.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case prospect.FieldPhone:
		m.ClearPhone()
		return nil
	case prospect.FieldEmail:
		m.ClearEmail()
		return nil
	case prospect.FieldExistingWebsite:
		m.ClearExistingWebsite()
		return nil
	case prospect.FieldRating:
		m.ClearRating()
		return nil
	case prospect.FieldOpeningHours:
		m.ClearOpeningHours()
		return nil
	case prospect.FieldPlaceID:
		m.ClearPlaceID()
		return nil
	}
	return fmt.Errorf("unknown Prospect nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProspectMutation) ResetField(name string) error {
	switch name {
	case prospect.FieldName:
		m.ResetName()
		return nil
	case prospect.FieldCategory:
		m.ResetCategory()
		return nil
	case prospect.FieldIndustryKey:
		m.ResetIndustryKey()
		return nil
	case prospect.FieldAddress:
		m.ResetAddress()
		return nil
	case prospect.FieldCity:
		m.ResetCity()
		return nil
	case prospect.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case prospect.FieldPhone:
		m.ResetPhone()
		return nil
	case prospect.FieldEmail:
		m.ResetEmail()
		return nil
	case prospect.FieldExistingWebsite:
		m.ResetExistingWebsite()
		return nil
	case prospect.FieldRating:
		m.ResetRating()
		return nil
	case prospect.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case prospect.FieldOpeningHours:
		m.ResetOpeningHours()
		return nil
	case prospect.FieldPlaceID:
		m.ResetPlaceID()
		return nil
	case prospect.FieldScore:
		m.ResetScore()
		return nil
	case prospect.FieldStatus:
		m.ResetStatus()
		return nil
	case prospect.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prospect.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProspectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.websites != nil {
		edges = append(edges, prospect.EdgeWebsites)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProspectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeWebsites:
		ids := make([]ent.Value, 0, len(m.websites))
		for id := range m.websites {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProspectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedwebsites != nil {
		edges = append(edges, prospect.EdgeWebsites)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProspectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeWebsites:
		ids := make([]ent.Value, 0, len(m.removedwebsites))
		for id := range m.removedwebsites {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProspectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwebsites {
		edges = append(edges, prospect.EdgeWebsites)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProspectMutation) EdgeCleared(name string) bool {
	switch name {
	case prospect.EdgeWebsites:
		return m.clearedwebsites
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProspectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Prospect unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProspectMutation) ResetEdge(name string) error {
	switch name {
	case prospect.EdgeWebsites:
		m.ResetWebsites()
		return nil
	}
	return fmt.Errorf("unknown Prospect edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	stripe_subscription_id *string
	stripe_customer_id     *string
	price_id               *string
	status                 *subscription.Status
	current_period_end     *time.Time
	canceled_at            *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	website                *int
	clearedwebsite         bool
	done                   bool
	oldValue               func(context.Context) (*Subscription, error)
	predicates             []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id int) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (m *SubscriptionMutation) SetStripeSubscriptionID(s string) {
	m.stripe_subscription_id = &s
}

// StripeSubscriptionID returns the value of the "stripe_subscription_id" field in the mutation.
func (m *SubscriptionMutation) StripeSubscriptionID() (r string, exists bool) {
	v := m.stripe_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionID returns the old "stripe_subscription_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStripeSubscriptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionID: %w", err)
	}
	return oldValue.StripeSubscriptionID, nil
}

// ResetStripeSubscriptionID resets all changes to the "stripe_subscription_id" field.
func (m *SubscriptionMutation) ResetStripeSubscriptionID() {
	m.stripe_subscription_id = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *SubscriptionMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *SubscriptionMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStripeCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *SubscriptionMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
}

// SetPriceID sets the "price_id" field.
func (m *SubscriptionMutation) SetPriceID(s string) {
	m.price_id = &s
}

// PriceID returns the value of the "price_id" field in the mutation.
func (m *SubscriptionMutation) PriceID() (r string, exists bool) {
	v := m.price_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceID returns the old "price_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPriceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceID: %w", err)
	}
	return oldValue.PriceID, nil
}

// ResetPriceID resets all changes to the "price_id" field.
func (m *SubscriptionMutation) ResetPriceID() {
	m.price_id = nil
}

// SetStatus sets the "status" field.
func (m *SubscriptionMutation) SetStatus(s subscription.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubscriptionMutation) Status() (r subscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStatus(ctx context.Context) (v subscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *SubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *SubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (m *SubscriptionMutation) ClearCurrentPeriodEnd() {
	m.current_period_end = nil
	m.clearedFields[subscription.FieldCurrentPeriodEnd] = struct{}{}
}

// CurrentPeriodEndCleared returns if the "current_period_end" field was cleared in this mutation.
func (m *SubscriptionMutation) CurrentPeriodEndCleared() bool {
	_, ok := m.clearedFields[subscription.FieldCurrentPeriodEnd]
	return ok
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *SubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
	delete(m.clearedFields, subscription.FieldCurrentPeriodEnd)
}

// SetCanceledAt sets the "canceled_at" field.
func (m *SubscriptionMutation) SetCanceledAt(t time.Time) {
	m.canceled_at = &t
}

// CanceledAt returns the value of the "canceled_at" field in the mutation.
func (m *SubscriptionMutation) CanceledAt() (r time.Time, exists bool) {
	v := m.canceled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCanceledAt returns the old "canceled_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCanceledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanceledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanceledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanceledAt: %w", err)
	}
	return oldValue.CanceledAt, nil
}

// ClearCanceledAt clears the value of the "canceled_at" field.
func (m *SubscriptionMutation) ClearCanceledAt() {
	m.canceled_at = nil
	m.clearedFields[subscription.FieldCanceledAt] = struct{}{}
}

// CanceledAtCleared returns if the "canceled_at" field was cleared in this mutation.
func (m *SubscriptionMutation) CanceledAtCleared() bool {
	_, ok := m.clearedFields[subscription.FieldCanceledAt]
	return ok
}

// ResetCanceledAt resets all changes to the "canceled_at" field.
func (m *SubscriptionMutation) ResetCanceledAt() {
	m.canceled_at = nil
	delete(m.clearedFields, subscription.FieldCanceledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWebsiteID sets the "website" edge to the Website entity by id.
func (m *SubscriptionMutation) SetWebsiteID(id int) {
	m.website = &id
}

// ClearWebsite clears the "website" edge to the Website entity.
func (m *SubscriptionMutation) ClearWebsite() {
	m.clearedwebsite = true
}

// WebsiteCleared reports if the "website" edge to the Website entity was cleared.
func (m *SubscriptionMutation) WebsiteCleared() bool {
	return m.clearedwebsite
}

// WebsiteID returns the "website" edge ID in the mutation.
func (m *SubscriptionMutation) WebsiteID() (id int, exists bool) {
	if m.website != nil {
		return *m.website, true
	}
	return
}

// WebsiteIDs returns the "website" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WebsiteID instead. It exists only for internal usage by the builders.
func (m *SubscriptionMutation) WebsiteIDs() (ids []int) {
	if id := m.website; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWebsite resets all changes to the "website" edge.
func (m *SubscriptionMutation) ResetWebsite() {
	m.website = nil
	m.clearedwebsite = false
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.stripe_subscription_id != nil {
		fields = append(fields, subscription.FieldStripeSubscriptionID)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, subscription.FieldStripeCustomerID)
	}
	if m.price_id != nil {
		fields = append(fields, subscription.FieldPriceID)
	}
	if m.status != nil {
		fields = append(fields, subscription.FieldStatus)
	}
	if m.current_period_end != nil {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	if m.canceled_at != nil {
		fields = append(fields, subscription.FieldCanceledAt)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldStripeSubscriptionID:
		return m.StripeSubscriptionID()
	case subscription.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case subscription.FieldPriceID:
		return m.PriceID()
	case subscription.FieldStatus:
		return m.Status()
	case subscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case subscription.FieldCanceledAt:
		return m.CanceledAt()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldStripeSubscriptionID:
		return m.OldStripeSubscriptionID(ctx)
	case subscription.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case subscription.FieldPriceID:
		return m.OldPriceID(ctx)
	case subscription.FieldStatus:
		return m.OldStatus(ctx)
	case subscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case subscription.FieldCanceledAt:
		return m.OldCanceledAt(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldStripeSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionID(v)
		return nil
	case subscription.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case subscription.FieldPriceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceID(v)
		return nil
	case subscription.FieldStatus:
		v, ok := value.(subscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case subscription.FieldCanceledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanceledAt(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldCurrentPeriodEnd) {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	if m.FieldCleared(subscription.FieldCanceledAt) {
		fields = append(fields, subscription.FieldCanceledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldCurrentPeriodEnd:
		m.ClearCurrentPeriodEnd()
		return nil
	case subscription.FieldCanceledAt:
		m.ClearCanceledAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldStripeSubscriptionID:
		m.ResetStripeSubscriptionID()
		return nil
	case subscription.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case subscription.FieldPriceID:
		m.ResetPriceID()
		return nil
	case subscription.FieldStatus:
		m.ResetStatus()
		return nil
	case subscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case subscription.FieldCanceledAt:
		m.ResetCanceledAt()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.website != nil {
		edges = append(edges, subscription.EdgeWebsite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeWebsite:
		if id := m.website; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwebsite {
		edges = append(edges, subscription.EdgeWebsite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case subscription.EdgeWebsite:
		return m.clearedwebsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case subscription.EdgeWebsite:
		m.ClearWebsite()
		return nil
	}
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case subscription.EdgeWebsite:
		m.ResetWebsite()
		return nil
	}
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	email              *string
	password_hash      *string
	name               *string
	role               *user.Role
	stripe_customer_id *string
	last_login_at      *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	websites           map[int]struct{}
	removedwebsites    map[int]struct{}
	clearedwebsites    bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *UserMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *UserMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *UserMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[user.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *UserMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[user.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *UserMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, user.FieldStripeCustomerID)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddWebsiteIDs adds the "websites" edge to the Website entity by ids.
func (m *UserMutation) AddWebsiteIDs(ids ...int) {
	if m.websites == nil {
		m.websites = make(map[int]struct{})
	}
	for i := range ids {
		m.websites[ids[i]] = struct{}{}
	}
}

// ClearWebsites clears the "websites" edge to the Website entity.
func (m *UserMutation) ClearWebsites() {
	m.clearedwebsites = true
}

// WebsitesCleared reports if the "websites" edge to the Website entity was cleared.
func (m *UserMutation) WebsitesCleared() bool {
	return m.clearedwebsites
}

// RemoveWebsiteIDs removes the "websites" edge to the Website entity by IDs.
func (m *UserMutation) RemoveWebsiteIDs(ids ...int) {
	if m.removedwebsites == nil {
		m.removedwebsites = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.websites, ids[i])
		m.removedwebsites[ids[i]] = struct{}{}
	}
}

// RemovedWebsites returns the removed IDs of the "websites" edge to the Website entity.
func (m *UserMutation) RemovedWebsitesIDs() (ids []int) {
	for id := range m.removedwebsites {
		ids = append(ids, id)
	}
	return
}

// WebsitesIDs returns the "websites" edge IDs in the mutation.
func (m *UserMutation) WebsitesIDs() (ids []int) {
	for id := range m.websites {
		ids = append(ids, id)
	}
	return
}

// ResetWebsites resets all changes to the "websites" edge.
func (m *UserMutation) ResetWebsites() {
	m.websites = nil
	m.clearedwebsites = false
	m.removedwebsites = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, user.FieldStripeCustomerID)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldRole:
		return m.Role()
	case user.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldStripeCustomerID) {
		fields = append(fields, user.FieldStripeCustomerID)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.websites != nil {
		edges = append(edges, user.EdgeWebsites)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeWebsites:
		ids := make([]ent.Value, 0, len(m.websites))
		for id := range m.websites {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedwebsites != nil {
		edges = append(edges, user.EdgeWebsites)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeWebsites:
		ids := make([]ent.Value, 0, len(m.removedwebsites))
		for id := range m.removedwebsites {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwebsites {
		edges = append(edges, user.EdgeWebsites)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeWebsites:
		return m.clearedwebsites
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeWebsites:
		m.ResetWebsites()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WebsiteMutation represents an operation that mutates the Website nodes in the graph.
type WebsiteMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	slug                 *string
	business_name        *string
	industry_key         *string
	archetype_id         *string
	status               *website.Status
	onboarding_status    *website.OnboardingStatus
	tagline              *string
	description          *string
	sections             *[]map[string]interface{}
	appendsections       []map[string]interface{}
	design_tokens        *map[string]interface{}
	color_scheme         *map[string]string
	hero_image           *string
	gallery              *[]string
	appendgallery        []string
	onboarding_data      *map[string]interface{}
	generation_count     *int
	addgeneration_count  *int
	sold_at              *time.Time
	published_at         *time.Time
	expires_at           *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	prospect             *int
	clearedprospect      bool
	owner                *int
	clearedowner         bool
	subscriptions        map[int]struct{}
	removedsubscriptions map[int]struct{}
	clearedsubscriptions bool
	done                 bool
	oldValue             func(context.Context) (*Website, error)
	predicates           []predicate.Website
}

var _ ent.Mutation = (*WebsiteMutation)(nil)

// websiteOption allows management of the mutation configuration using functional options.
type websiteOption func(*WebsiteMutation)

// newWebsiteMutation creates new mutation for the Website entity.
func newWebsiteMutation(c config, op Op, opts ...websiteOption) *WebsiteMutation {
	m := &WebsiteMutation{
		config:        c,
		op:            op,
		typ:           TypeWebsite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebsiteID sets the ID field of the mutation.
func withWebsiteID(id int) websiteOption {
	return func(m *WebsiteMutation) {
		var (
			err   error
			once  sync.Once
			value *Website
		)
		m.oldValue = func(ctx context.Context) (*Website, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Website.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebsite sets the old Website of the mutation.
func withWebsite(node *Website) websiteOption {
	return func(m *WebsiteMutation) {
		m.oldValue = func(context.Context) (*Website, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebsiteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebsiteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebsiteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebsiteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Website.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *WebsiteMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *WebsiteMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *WebsiteMutation) ResetSlug() {
	m.slug = nil
}

// SetBusinessName sets the "business_name" field.
func (m *WebsiteMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *WebsiteMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *WebsiteMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetIndustryKey sets the "industry_key" field.
func (m *WebsiteMutation) SetIndustryKey(s string) {
	m.industry_key = &s
}

// IndustryKey returns the value of the "industry_key" field in the mutation.
func (m *WebsiteMutation) IndustryKey() (r string, exists bool) {
	v := m.industry_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustryKey returns the old "industry_key" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldIndustryKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustryKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustryKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustryKey: %w", err)
	}
	return oldValue.IndustryKey, nil
}

// ResetIndustryKey resets all changes to the "industry_key" field.
func (m *WebsiteMutation) ResetIndustryKey() {
	m.industry_key = nil
}

// SetArchetypeID sets the "archetype_id" field.
func (m *WebsiteMutation) SetArchetypeID(s string) {
	m.archetype_id = &s
}

// ArchetypeID returns the value of the "archetype_id" field in the mutation.
func (m *WebsiteMutation) ArchetypeID() (r string, exists bool) {
	v := m.archetype_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArchetypeID returns the old "archetype_id" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldArchetypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchetypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchetypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchetypeID: %w", err)
	}
	return oldValue.ArchetypeID, nil
}

// ResetArchetypeID resets all changes to the "archetype_id" field.
func (m *WebsiteMutation) ResetArchetypeID() {
	m.archetype_id = nil
}

// SetStatus sets the "status" field.
func (m *WebsiteMutation) SetStatus(w website.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebsiteMutation) Status() (r website.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldStatus(ctx context.Context) (v website.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebsiteMutation) ResetStatus() {
	m.status = nil
}

// SetOnboardingStatus sets the "onboarding_status" field.
func (m *WebsiteMutation) SetOnboardingStatus(ws website.OnboardingStatus) {
	m.onboarding_status = &ws
}

// OnboardingStatus returns the value of the "onboarding_status" field in the mutation.
func (m *WebsiteMutation) OnboardingStatus() (r website.OnboardingStatus, exists bool) {
	v := m.onboarding_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOnboardingStatus returns the old "onboarding_status" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldOnboardingStatus(ctx context.Context) (v website.OnboardingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnboardingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnboardingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnboardingStatus: %w", err)
	}
	return oldValue.OnboardingStatus, nil
}

// ResetOnboardingStatus resets all changes to the "onboarding_status" field.
func (m *WebsiteMutation) ResetOnboardingStatus() {
	m.onboarding_status = nil
}

// SetTagline sets the "tagline" field.
func (m *WebsiteMutation) SetTagline(s string) {
	m.tagline = &s
}

// Tagline returns the value of the "tagline" field in the mutation.
func (m *WebsiteMutation) Tagline() (r string, exists bool) {
	v := m.tagline
	if v == nil {
		return
	}
	return *v, true
}

// OldTagline returns the old "tagline" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldTagline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagline: %w", err)
	}
	return oldValue.Tagline, nil
}

// ClearTagline clears the value of the "tagline" field.
func (m *WebsiteMutation) ClearTagline() {
	m.tagline = nil
	m.clearedFields[website.FieldTagline] = struct{}{}
}

// TaglineCleared returns if the "tagline" field was cleared in this mutation.
func (m *WebsiteMutation) TaglineCleared() bool {
	_, ok := m.clearedFields[website.FieldTagline]
	return ok
}

// ResetTagline resets all changes to the "tagline" field.
func (m *WebsiteMutation) ResetTagline() {
	m.tagline = nil
	delete(m.clearedFields, website.FieldTagline)
}

// SetDescription sets the "description" field.
func (m *WebsiteMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WebsiteMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WebsiteMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[website.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WebsiteMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[website.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WebsiteMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, website.FieldDescription)
}

// SetSections sets the "sections" field.
func (m *WebsiteMutation) SetSections(value []map[string]interface{}) {
	m.sections = &value
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *WebsiteMutation) Sections() (r []map[string]interface{}, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldSections(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds value to the "sections" field.
func (m *WebsiteMutation) AppendSections(value []map[string]interface{}) {
	m.appendsections = append(m.appendsections, value...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *WebsiteMutation) AppendedSections() ([]map[string]interface{}, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ResetSections resets all changes to the "sections" field.
func (m *WebsiteMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
}

// SetDesignTokens sets the "design_tokens" field.
func (m *WebsiteMutation) SetDesignTokens(value map[string]interface{}) {
	m.design_tokens = &value
}

// DesignTokens returns the value of the "design_tokens" field in the mutation.
func (m *WebsiteMutation) DesignTokens() (r map[string]interface{}, exists bool) {
	v := m.design_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignTokens returns the old "design_tokens" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldDesignTokens(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignTokens: %w", err)
	}
	return oldValue.DesignTokens, nil
}

// ResetDesignTokens resets all changes to the "design_tokens" field.
func (m *WebsiteMutation) ResetDesignTokens() {
	m.design_tokens = nil
}

// SetColorScheme sets the "color_scheme" field.
func (m *WebsiteMutation) SetColorScheme(value map[string]string) {
	m.color_scheme = &value
}

// ColorScheme returns the value of the "color_scheme" field in the mutation.
func (m *WebsiteMutation) ColorScheme() (r map[string]string, exists bool) {
	v := m.color_scheme
	if v == nil {
		return
	}
	return *v, true
}

// OldColorScheme returns the old "color_scheme" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldColorScheme(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorScheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorScheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorScheme: %w", err)
	}
	return oldValue.ColorScheme, nil
}

// ResetColorScheme resets all changes to the "color_scheme" field.
func (m *WebsiteMutation) ResetColorScheme() {
	m.color_scheme = nil
}

// SetHeroImage sets the "hero_image" field.
func (m *WebsiteMutation) SetHeroImage(s string) {
	m.hero_image = &s
}

// HeroImage returns the value of the "hero_image" field in the mutation.
func (m *WebsiteMutation) HeroImage() (r string, exists bool) {
	v := m.hero_image
	if v == nil {
		return
	}
	return *v, true
}

// OldHeroImage returns the old "hero_image" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldHeroImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeroImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeroImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeroImage: %w", err)
	}
	return oldValue.HeroImage, nil
}

// ClearHeroImage clears the value of the "hero_image" field.
func (m *WebsiteMutation) ClearHeroImage() {
	m.hero_image = nil
	m.clearedFields[website.FieldHeroImage] = struct{}{}
}

// HeroImageCleared returns if the "hero_image" field was cleared in this mutation.
func (m *WebsiteMutation) HeroImageCleared() bool {
	_, ok := m.clearedFields[website.FieldHeroImage]
	return ok
}

// ResetHeroImage resets all changes to the "hero_image" field.
func (m *WebsiteMutation) ResetHeroImage() {
	m.hero_image = nil
	delete(m.clearedFields, website.FieldHeroImage)
}

// SetGallery sets the "gallery" field.
func (m *WebsiteMutation) SetGallery(s []string) {
	m.gallery = &s
	m.appendgallery = nil
}

// Gallery returns the value of the "gallery" field in the mutation.
func (m *WebsiteMutation) Gallery() (r []string, exists bool) {
	v := m.gallery
	if v == nil {
		return
	}
	return *v, true
}

// OldGallery returns the old "gallery" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldGallery(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGallery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGallery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGallery: %w", err)
	}
	return oldValue.Gallery, nil
}

// AppendGallery adds s to the "gallery" field.
func (m *WebsiteMutation) AppendGallery(s []string) {
	m.appendgallery = append(m.appendgallery, s...)
}

// AppendedGallery returns the list of values that were appended to the "gallery" field in this mutation.
func (m *WebsiteMutation) AppendedGallery() ([]string, bool) {
	if len(m.appendgallery) == 0 {
		return nil, false
	}
	return m.appendgallery, true
}

// ClearGallery clears the value of the "gallery" field.
func (m *WebsiteMutation) ClearGallery() {
	m.gallery = nil
	m.appendgallery = nil
	m.clearedFields[website.FieldGallery] = struct{}{}
}

// GalleryCleared returns if the "gallery" field was cleared in this mutation.
func (m *WebsiteMutation) GalleryCleared() bool {
	_, ok := m.clearedFields[website.FieldGallery]
	return ok
}

// ResetGallery resets all changes to the "gallery" field.
func (m *WebsiteMutation) ResetGallery() {
	m.gallery = nil
	m.appendgallery = nil
	delete(m.clearedFields, website.FieldGallery)
}

// SetOnboardingData sets the "onboarding_data" field.
func (m *WebsiteMutation) SetOnboardingData(value map[string]interface{}) {
	m.onboarding_data = &value
}

// OnboardingData returns the value of the "onboarding_data" field in the mutation.
func (m *WebsiteMutation) OnboardingData() (r map[string]interface{}, exists bool) {
	v := m.onboarding_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOnboardingData returns the old "onboarding_data" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldOnboardingData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnboardingData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnboardingData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnboardingData: %w", err)
	}
	return oldValue.OnboardingData, nil
}

// ClearOnboardingData clears the value of the "onboarding_data" field.
func (m *WebsiteMutation) ClearOnboardingData() {
	m.onboarding_data = nil
	m.clearedFields[website.FieldOnboardingData] = struct{}{}
}

// OnboardingDataCleared returns if the "onboarding_data" field was cleared in this mutation.
func (m *WebsiteMutation) OnboardingDataCleared() bool {
	_, ok := m.clearedFields[website.FieldOnboardingData]
	return ok
}

// ResetOnboardingData resets all changes to the "onboarding_data" field.
func (m *WebsiteMutation) ResetOnboardingData() {
	m.onboarding_data = nil
	delete(m.clearedFields, website.FieldOnboardingData)
}

// SetGenerationCount sets the "generation_count" field.
func (m *WebsiteMutation) SetGenerationCount(i int) {
	m.generation_count = &i
	m.addgeneration_count = nil
}

// GenerationCount returns the value of the "generation_count" field in the mutation.
func (m *WebsiteMutation) GenerationCount() (r int, exists bool) {
	v := m.generation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationCount returns the old "generation_count" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldGenerationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationCount: %w", err)
	}
	return oldValue.GenerationCount, nil
}

// AddGenerationCount adds i to the "generation_count" field.
func (m *WebsiteMutation) AddGenerationCount(i int) {
	if m.addgeneration_count != nil {
		*m.addgeneration_count += i
	} else {
		m.addgeneration_count = &i
	}
}

// AddedGenerationCount returns the value that was added to the "generation_count" field in this mutation.
func (m *WebsiteMutation) AddedGenerationCount() (r int, exists bool) {
	v := m.addgeneration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetGenerationCount resets all changes to the "generation_count" field.
func (m *WebsiteMutation) ResetGenerationCount() {
	m.generation_count = nil
	m.addgeneration_count = nil
}

// SetSoldAt sets the "sold_at" field.
func (m *WebsiteMutation) SetSoldAt(t time.Time) {
	m.sold_at = &t
}

// SoldAt returns the value of the "sold_at" field in the mutation.
func (m *WebsiteMutation) SoldAt() (r time.Time, exists bool) {
	v := m.sold_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSoldAt returns the old "sold_at" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldSoldAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoldAt: %w", err)
	}
	return oldValue.SoldAt, nil
}

// ClearSoldAt clears the value of the "sold_at" field.
func (m *WebsiteMutation) ClearSoldAt() {
	m.sold_at = nil
	m.clearedFields[website.FieldSoldAt] = struct{}{}
}

// SoldAtCleared returns if the "sold_at" field was cleared in this mutation.
func (m *WebsiteMutation) SoldAtCleared() bool {
	_, ok := m.clearedFields[website.FieldSoldAt]
	return ok
}

// ResetSoldAt resets all changes to the "sold_at" field.
func (m *WebsiteMutation) ResetSoldAt() {
	m.sold_at = nil
	delete(m.clearedFields, website.FieldSoldAt)
}

// SetPublishedAt sets the "published_at" field.
func (m *WebsiteMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *WebsiteMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *WebsiteMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[website.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *WebsiteMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[website.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *WebsiteMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, website.FieldPublishedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *WebsiteMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *WebsiteMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *WebsiteMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[website.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *WebsiteMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[website.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *WebsiteMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, website.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebsiteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebsiteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebsiteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebsiteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebsiteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Website entity.
// If the Website object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebsiteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebsiteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProspectID sets the "prospect" edge to the Prospect entity by id.
func (m *WebsiteMutation) SetProspectID(id int) {
	m.prospect = &id
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (m *WebsiteMutation) ClearProspect() {
	m.clearedprospect = true
}

// ProspectCleared reports if the "prospect" edge to the Prospect entity was cleared.
func (m *WebsiteMutation) ProspectCleared() bool {
	return m.clearedprospect
}

// ProspectID returns the "prospect" edge ID in the mutation.
func (m *WebsiteMutation) ProspectID() (id int, exists bool) {
	if m.prospect != nil {
		return *m.prospect, true
	}
	return
}

// ProspectIDs returns the "prospect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProspectID instead. It exists only for internal usage by the builders.
func (m *WebsiteMutation) ProspectIDs() (ids []int) {
	if id := m.prospect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProspect resets all changes to the "prospect" edge.
func (m *WebsiteMutation) ResetProspect() {
	m.prospect = nil
	m.clearedprospect = false
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *WebsiteMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *WebsiteMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *WebsiteMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *WebsiteMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *WebsiteMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *WebsiteMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by ids.
func (m *WebsiteMutation) AddSubscriptionIDs(ids ...int) {
	if m.subscriptions == nil {
		m.subscriptions = make(map[int]struct{})
	}
	for i := range ids {
		m.subscriptions[ids[i]] = struct{}{}
	}
}

// ClearSubscriptions clears the "subscriptions" edge to the Subscription entity.
func (m *WebsiteMutation) ClearSubscriptions() {
	m.clearedsubscriptions = true
}

// SubscriptionsCleared reports if the "subscriptions" edge to the Subscription entity was cleared.
func (m *WebsiteMutation) SubscriptionsCleared() bool {
	return m.clearedsubscriptions
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to the Subscription entity by IDs.
func (m *WebsiteMutation) RemoveSubscriptionIDs(ids ...int) {
	if m.removedsubscriptions == nil {
		m.removedsubscriptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subscriptions, ids[i])
		m.removedsubscriptions[ids[i]] = struct{}{}
	}
}

// RemovedSubscriptions returns the removed IDs of the "subscriptions" edge to the Subscription entity.
func (m *WebsiteMutation) RemovedSubscriptionsIDs() (ids []int) {
	for id := range m.removedsubscriptions {
		ids = append(ids, id)
	}
	return
}

// SubscriptionsIDs returns the "subscriptions" edge IDs in the mutation.
func (m *WebsiteMutation) SubscriptionsIDs() (ids []int) {
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetSubscriptions resets all changes to the "subscriptions" edge.
func (m *WebsiteMutation) ResetSubscriptions() {
	m.subscriptions = nil
	m.clearedsubscriptions = false
	m.removedsubscriptions = nil
}

// Where appends a list predicates to the WebsiteMutation builder.
func (m *WebsiteMutation) Where(ps ...predicate.Website) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebsiteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebsiteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Website, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebsiteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebsiteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Website).
func (m *WebsiteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebsiteMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.slug != nil {
		fields = append(fields, website.FieldSlug)
	}
	if m.business_name != nil {
		fields = append(fields, website.FieldBusinessName)
	}
	if m.industry_key != nil {
		fields = append(fields, website.FieldIndustryKey)
	}
	if m.archetype_id != nil {
		fields = append(fields, website.FieldArchetypeID)
	}
	if m.status != nil {
		fields = append(fields, website.FieldStatus)
	}
	if m.onboarding_status != nil {
		fields = append(fields, website.FieldOnboardingStatus)
	}
	if m.tagline != nil {
		fields = append(fields, website.FieldTagline)
	}
	if m.description != nil {
		fields = append(fields, website.FieldDescription)
	}
	if m.sections != nil {
		fields = append(fields, website.FieldSections)
	}
	if m.design_tokens != nil {
		fields = append(fields, website.FieldDesignTokens)
	}
	if m.color_scheme != nil {
		fields = append(fields, website.FieldColorScheme)
	}
	if m.hero_image != nil {
		fields = append(fields, website.FieldHeroImage)
	}
	if m.gallery != nil {
		fields = append(fields, website.FieldGallery)
	}
	if m.onboarding_data != nil {
		fields = append(fields, website.FieldOnboardingData)
	}
	if m.generation_count != nil {
		fields = append(fields, website.FieldGenerationCount)
	}
	if m.sold_at != nil {
		fields = append(fields, website.FieldSoldAt)
	}
	if m.published_at != nil {
		fields = append(fields, website.FieldPublishedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, website.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, website.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, website.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebsiteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case website.FieldSlug:
		return m.Slug()
	case website.FieldBusinessName:
		return m.BusinessName()
	case website.FieldIndustryKey:
		return m.IndustryKey()
	case website.FieldArchetypeID:
		return m.ArchetypeID()
	case website.FieldStatus:
		return m.Status()
	case website.FieldOnboardingStatus:
		return m.OnboardingStatus()
	case website.FieldTagline:
		return m.Tagline()
	case website.FieldDescription:
		return m.Description()
	case website.FieldSections:
		return m.Sections()
	case website.FieldDesignTokens:
		return m.DesignTokens()
	case website.FieldColorScheme:
		return m.ColorScheme()
	case website.FieldHeroImage:
		return m.HeroImage()
	case website.FieldGallery:
		return m.Gallery()
	case website.FieldOnboardingData:
		return m.OnboardingData()
	case website.FieldGenerationCount:
		return m.GenerationCount()
	case website.FieldSoldAt:
		return m.SoldAt()
	case website.FieldPublishedAt:
		return m.PublishedAt()
	case website.FieldExpiresAt:
		return m.ExpiresAt()
	case website.FieldCreatedAt:
		return m.CreatedAt()
	case website.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebsiteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case website.FieldSlug:
		return m.OldSlug(ctx)
	case website.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case website.FieldIndustryKey:
		return m.OldIndustryKey(ctx)
	case website.FieldArchetypeID:
		return m.OldArchetypeID(ctx)
	case website.FieldStatus:
		return m.OldStatus(ctx)
	case website.FieldOnboardingStatus:
		return m.OldOnboardingStatus(ctx)
	case website.FieldTagline:
		return m.OldTagline(ctx)
	case website.FieldDescription:
		return m.OldDescription(ctx)
	case website.FieldSections:
		return m.OldSections(ctx)
	case website.FieldDesignTokens:
		return m.OldDesignTokens(ctx)
	case website.FieldColorScheme:
		return m.OldColorScheme(ctx)
	case website.FieldHeroImage:
		return m.OldHeroImage(ctx)
	case website.FieldGallery:
		return m.OldGallery(ctx)
	case website.FieldOnboardingData:
		return m.OldOnboardingData(ctx)
	case website.FieldGenerationCount:
		return m.OldGenerationCount(ctx)
	case website.FieldSoldAt:
		return m.OldSoldAt(ctx)
	case website.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case website.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case website.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case website.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Website field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebsiteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case website.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case website.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case website.FieldIndustryKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustryKey(v)
		return nil
	case website.FieldArchetypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchetypeID(v)
		return nil
	case website.FieldStatus:
		v, ok := value.(website.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case website.FieldOnboardingStatus:
		v, ok := value.(website.OnboardingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnboardingStatus(v)
		return nil
	case website.FieldTagline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagline(v)
		return nil
	case website.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case website.FieldSections:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case website.FieldDesignTokens:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignTokens(v)
		return nil
	case website.FieldColorScheme:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorScheme(v)
		return nil
	case website.FieldHeroImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeroImage(v)
		return nil
	case website.FieldGallery:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGallery(v)
		return nil
	case website.FieldOnboardingData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnboardingData(v)
		return nil
	case website.FieldGenerationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationCount(v)
		return nil
	case website.FieldSoldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoldAt(v)
		return nil
	case website.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case website.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case website.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case website.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Website field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebsiteMutation) AddedFields() []string {
	var fields []string
	if m.addgeneration_count != nil {
		fields = append(fields, website.FieldGenerationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebsiteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case website.FieldGenerationCount:
		return m.AddedGenerationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebsiteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case website.FieldGenerationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Website numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebsiteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(website.FieldTagline) {
		fields = append(fields, website.FieldTagline)
	}
	if m.FieldCleared(website.FieldDescription) {
		fields = append(fields, website.FieldDescription)
	}
	if m.FieldCleared(website.FieldHeroImage) {
		fields = append(fields, website.FieldHeroImage)
	}
	if m.FieldCleared(website.FieldGallery) {
		fields = append(fields, website.FieldGallery)
	}
	if m.FieldCleared(website.FieldOnboardingData) {
		fields = append(fields, website.FieldOnboardingData)
	}
	if m.FieldCleared(website.FieldSoldAt) {
		fields = append(fields, website.FieldSoldAt)
	}
	if m.FieldCleared(website.FieldPublishedAt) {
		fields = append(fields, website.FieldPublishedAt)
	}
	if m.FieldCleared(website.FieldExpiresAt) {
		fields = append(fields, website.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebsiteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebsiteMutation) ClearField(name string) error {
	switch name {
	case website.FieldTagline:
		m.ClearTagline()
		return nil
	case website.FieldDescription:
		m.ClearDescription()
		return nil
	case website.FieldHeroImage:
		m.ClearHeroImage()
		return nil
	case website.FieldGallery:
		m.ClearGallery()
		return nil
	case website.FieldOnboardingData:
		m.ClearOnboardingData()
		return nil
	case website.FieldSoldAt:
		m.ClearSoldAt()
		return nil
	case website.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case website.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Website nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebsiteMutation) ResetField(name string) error {
	switch name {
	case website.FieldSlug:
		m.ResetSlug()
		return nil
	case website.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case website.FieldIndustryKey:
		m.ResetIndustryKey()
		return nil
	case website.FieldArchetypeID:
		m.ResetArchetypeID()
		return nil
	case website.FieldStatus:
		m.ResetStatus()
		return nil
	case website.FieldOnboardingStatus:
		m.ResetOnboardingStatus()
		return nil
	case website.FieldTagline:
		m.ResetTagline()
		return nil
	case website.FieldDescription:
		m.ResetDescription()
		return nil
	case website.FieldSections:
		m.ResetSections()
		return nil
	case website.FieldDesignTokens:
		m.ResetDesignTokens()
		return nil
	case website.FieldColorScheme:
		m.ResetColorScheme()
		return nil
	case website.FieldHeroImage:
		m.ResetHeroImage()
		return nil
	case website.FieldGallery:
		m.ResetGallery()
		return nil
	case website.FieldOnboardingData:
		m.ResetOnboardingData()
		return nil
	case website.FieldGenerationCount:
		m.ResetGenerationCount()
		return nil
	case website.FieldSoldAt:
		m.ResetSoldAt()
		return nil
	case website.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case website.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case website.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case website.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Website field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebsiteMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.prospect != nil {
		edges = append(edges, website.EdgeProspect)
	}
	if m.owner != nil {
		edges = append(edges, website.EdgeOwner)
	}
	if m.subscriptions != nil {
		edges = append(edges, website.EdgeSubscriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebsiteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case website.EdgeProspect:
		if id := m.prospect; id != nil {
			return []ent.Value{*id}
		}
	case website.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case website.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.subscriptions))
		for id := range m.subscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebsiteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsubscriptions != nil {
		edges = append(edges, website.EdgeSubscriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebsiteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case website.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedsubscriptions))
		for id := range m.removedsubscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebsiteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprospect {
		edges = append(edges, website.EdgeProspect)
	}
	if m.clearedowner {
		edges = append(edges, website.EdgeOwner)
	}
	if m.clearedsubscriptions {
		edges = append(edges, website.EdgeSubscriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebsiteMutation) EdgeCleared(name string) bool {
	switch name {
	case website.EdgeProspect:
		return m.clearedprospect
	case website.EdgeOwner:
		return m.clearedowner
	case website.EdgeSubscriptions:
		return m.clearedsubscriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebsiteMutation) ClearEdge(name string) error {
	switch name {
	case website.EdgeProspect:
		m.ClearProspect()
		return nil
	case website.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Website unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebsiteMutation) ResetEdge(name string) error {
	switch name {
	case website.EdgeProspect:
		m.ResetProspect()
		return nil
	case website.EdgeOwner:
		m.ResetOwner()
		return nil
	case website.EdgeSubscriptions:
		m.ResetSubscriptions()
		return nil
	}
	return fmt.Errorf("unknown Website edge %s", name)
}
