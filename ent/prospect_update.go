// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sitewerk/sitewerk/ent/predicate"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/website"
)

// ProspectUpdate is the builder for updating Prospect entities.
type ProspectUpdate struct {
	config
	hooks    []Hook
	mutation *ProspectMutation
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdate) Where(ps ...predicate.Prospect) *ProspectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProspectUpdate) SetName(v string) *ProspectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableName(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProspectUpdate) SetCategory(v string) *ProspectUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCategory(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProspectUpdate) ClearCategory() *ProspectUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *ProspectUpdate) SetIndustryKey(v string) *ProspectUpdate {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableIndustryKey(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ProspectUpdate) SetAddress(v string) *ProspectUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableAddress(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ProspectUpdate) ClearAddress() *ProspectUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProspectUpdate) SetCity(v string) *ProspectUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCity(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProspectUpdate) ClearCity() *ProspectUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ProspectUpdate) SetPostalCode(v string) *ProspectUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePostalCode(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ProspectUpdate) ClearPostalCode() *ProspectUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdate) SetPhone(v string) *ProspectUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePhone(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdate) ClearPhone() *ProspectUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdate) SetEmail(v string) *ProspectUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableEmail(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdate) ClearEmail() *ProspectUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetExistingWebsite sets the "existing_website" field.
func (_u *ProspectUpdate) SetExistingWebsite(v string) *ProspectUpdate {
	_u.mutation.SetExistingWebsite(v)
	return _u
}

// SetNillableExistingWebsite sets the "existing_website" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableExistingWebsite(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetExistingWebsite(*v)
	}
	return _u
}

// ClearExistingWebsite clears the value of the "existing_website" field.
func (_u *ProspectUpdate) ClearExistingWebsite() *ProspectUpdate {
	_u.mutation.ClearExistingWebsite()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ProspectUpdate) SetRating(v float64) *ProspectUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableRating(v *float64) *ProspectUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ProspectUpdate) AddRating(v float64) *ProspectUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ProspectUpdate) ClearRating() *ProspectUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ProspectUpdate) SetReviewCount(v int) *ProspectUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableReviewCount(v *int) *ProspectUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ProspectUpdate) AddReviewCount(v int) *ProspectUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ProspectUpdate) SetOpeningHours(v []string) *ProspectUpdate {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// AppendOpeningHours appends value to the "opening_hours" field.
func (_u *ProspectUpdate) AppendOpeningHours(v []string) *ProspectUpdate {
	_u.mutation.AppendOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ProspectUpdate) ClearOpeningHours() *ProspectUpdate {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *ProspectUpdate) SetPlaceID(v string) *ProspectUpdate {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePlaceID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *ProspectUpdate) ClearPlaceID() *ProspectUpdate {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetScore sets the "score" field.
func (_u *ProspectUpdate) SetScore(v int) *ProspectUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableScore(v *int) *ProspectUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ProspectUpdate) AddScore(v int) *ProspectUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdate) SetStatus(v prospect.Status) *ProspectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableStatus(v *prospect.Status) *ProspectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdate) SetUpdatedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWebsiteIDs adds the "websites" edge to the Website entity by IDs.
func (_u *ProspectUpdate) AddWebsiteIDs(ids ...int) *ProspectUpdate {
	_u.mutation.AddWebsiteIDs(ids...)
	return _u
}

// AddWebsites adds the "websites" edges to the Website entity.
func (_u *ProspectUpdate) AddWebsites(v ...*Website) *ProspectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWebsiteIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdate) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearWebsites clears all "websites" edges to the Website entity.
func (_u *ProspectUpdate) ClearWebsites() *ProspectUpdate {
	_u.mutation.ClearWebsites()
	return _u
}

// RemoveWebsiteIDs removes the "websites" edge to Website entities by IDs.
func (_u *ProspectUpdate) RemoveWebsiteIDs(ids ...int) *ProspectUpdate {
	_u.mutation.RemoveWebsiteIDs(ids...)
	return _u
}

// RemoveWebsites removes "websites" edges to Website entities.
func (_u *ProspectUpdate) RemoveWebsites(v ...*Website) *ProspectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWebsiteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProspectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProspectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := prospect.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Prospect.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := prospect.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Prospect.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prospect.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(prospect.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(prospect.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(prospect.FieldIndustryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(prospect.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(prospect.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(prospect.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ExistingWebsite(); ok {
		_spec.SetField(prospect.FieldExistingWebsite, field.TypeString, value)
	}
	if _u.mutation.ExistingWebsiteCleared() {
		_spec.ClearField(prospect.FieldExistingWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(prospect.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(prospect.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(prospect.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(prospect.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(prospect.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpeningHours(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prospect.FieldOpeningHours, value)
		})
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(prospect.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(prospect.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(prospect.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(prospect.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(prospect.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WebsitesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWebsitesIDs(); len(nodes) > 0 && !_u.mutation.WebsitesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WebsitesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProspectUpdateOne is the builder for updating a single Prospect entity.
type ProspectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProspectMutation
}

// SetName sets the "name" field.
func (_u *ProspectUpdateOne) SetName(v string) *ProspectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableName(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProspectUpdateOne) SetCategory(v string) *ProspectUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCategory(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProspectUpdateOne) ClearCategory() *ProspectUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *ProspectUpdateOne) SetIndustryKey(v string) *ProspectUpdateOne {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableIndustryKey(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ProspectUpdateOne) SetAddress(v string) *ProspectUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableAddress(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ProspectUpdateOne) ClearAddress() *ProspectUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProspectUpdateOne) SetCity(v string) *ProspectUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCity(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProspectUpdateOne) ClearCity() *ProspectUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ProspectUpdateOne) SetPostalCode(v string) *ProspectUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePostalCode(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ProspectUpdateOne) ClearPostalCode() *ProspectUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdateOne) SetPhone(v string) *ProspectUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePhone(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdateOne) ClearPhone() *ProspectUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdateOne) SetEmail(v string) *ProspectUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableEmail(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdateOne) ClearEmail() *ProspectUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetExistingWebsite sets the "existing_website" field.
func (_u *ProspectUpdateOne) SetExistingWebsite(v string) *ProspectUpdateOne {
	_u.mutation.SetExistingWebsite(v)
	return _u
}

// SetNillableExistingWebsite sets the "existing_website" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableExistingWebsite(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetExistingWebsite(*v)
	}
	return _u
}

// ClearExistingWebsite clears the value of the "existing_website" field.
func (_u *ProspectUpdateOne) ClearExistingWebsite() *ProspectUpdateOne {
	_u.mutation.ClearExistingWebsite()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ProspectUpdateOne) SetRating(v float64) *ProspectUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableRating(v *float64) *ProspectUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ProspectUpdateOne) AddRating(v float64) *ProspectUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ProspectUpdateOne) ClearRating() *ProspectUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ProspectUpdateOne) SetReviewCount(v int) *ProspectUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableReviewCount(v *int) *ProspectUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ProspectUpdateOne) AddReviewCount(v int) *ProspectUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ProspectUpdateOne) SetOpeningHours(v []string) *ProspectUpdateOne {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// AppendOpeningHours appends value to the "opening_hours" field.
func (_u *ProspectUpdateOne) AppendOpeningHours(v []string) *ProspectUpdateOne {
	_u.mutation.AppendOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ProspectUpdateOne) ClearOpeningHours() *ProspectUpdateOne {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *ProspectUpdateOne) SetPlaceID(v string) *ProspectUpdateOne {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePlaceID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *ProspectUpdateOne) ClearPlaceID() *ProspectUpdateOne {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetScore sets the "score" field.
func (_u *ProspectUpdateOne) SetScore(v int) *ProspectUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableScore(v *int) *ProspectUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ProspectUpdateOne) AddScore(v int) *ProspectUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdateOne) SetStatus(v prospect.Status) *ProspectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableStatus(v *prospect.Status) *ProspectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdateOne) SetUpdatedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWebsiteIDs adds the "websites" edge to the Website entity by IDs.
func (_u *ProspectUpdateOne) AddWebsiteIDs(ids ...int) *ProspectUpdateOne {
	_u.mutation.AddWebsiteIDs(ids...)
	return _u
}

// AddWebsites adds the "websites" edges to the Website entity.
func (_u *ProspectUpdateOne) AddWebsites(v ...*Website) *ProspectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWebsiteIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdateOne) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearWebsites clears all "websites" edges to the Website entity.
func (_u *ProspectUpdateOne) ClearWebsites() *ProspectUpdateOne {
	_u.mutation.ClearWebsites()
	return _u
}

// RemoveWebsiteIDs removes the "websites" edge to Website entities by IDs.
func (_u *ProspectUpdateOne) RemoveWebsiteIDs(ids ...int) *ProspectUpdateOne {
	_u.mutation.RemoveWebsiteIDs(ids...)
	return _u
}

// RemoveWebsites removes "websites" edges to Website entities.
func (_u *ProspectUpdateOne) RemoveWebsites(v ...*Website) *ProspectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWebsiteIDs(ids...)
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdateOne) Where(ps ...predicate.Prospect) *ProspectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProspectUpdateOne) Select(field string, fields ...string) *ProspectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prospect entity.
func (_u *ProspectUpdateOne) Save(ctx context.Context) (*Prospect, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdateOne) SaveX(ctx context.Context) *Prospect {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProspectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := prospect.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Prospect.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := prospect.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Prospect.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdateOne) sqlSave(ctx context.Context) (_node *Prospect, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prospect.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospect.FieldID)
		for _, f := range fields {
			if !prospect.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prospect.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prospect.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(prospect.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(prospect.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(prospect.FieldIndustryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(prospect.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(prospect.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(prospect.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ExistingWebsite(); ok {
		_spec.SetField(prospect.FieldExistingWebsite, field.TypeString, value)
	}
	if _u.mutation.ExistingWebsiteCleared() {
		_spec.ClearField(prospect.FieldExistingWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(prospect.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(prospect.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(prospect.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(prospect.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(prospect.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpeningHours(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prospect.FieldOpeningHours, value)
		})
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(prospect.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(prospect.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(prospect.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(prospect.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(prospect.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WebsitesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWebsitesIDs(); len(nodes) > 0 && !_u.mutation.WebsitesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WebsitesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.WebsitesTable,
			Columns: []string{prospect.WebsitesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prospect{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
