// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/website"
)

// ProspectCreate is the builder for creating a Prospect entity.
type ProspectCreate struct {
	config
	mutation *ProspectMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProspectCreate) SetName(v string) *ProspectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ProspectCreate) SetCategory(v string) *ProspectCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCategory(v *string) *ProspectCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetIndustryKey sets the "industry_key" field.
func (_c *ProspectCreate) SetIndustryKey(v string) *ProspectCreate {
	_c.mutation.SetIndustryKey(v)
	return _c
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableIndustryKey(v *string) *ProspectCreate {
	if v != nil {
		_c.SetIndustryKey(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ProspectCreate) SetAddress(v string) *ProspectCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableAddress(v *string) *ProspectCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ProspectCreate) SetCity(v string) *ProspectCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCity(v *string) *ProspectCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *ProspectCreate) SetPostalCode(v string) *ProspectCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePostalCode(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProspectCreate) SetPhone(v string) *ProspectCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePhone(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProspectCreate) SetEmail(v string) *ProspectCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableEmail(v *string) *ProspectCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetExistingWebsite sets the "existing_website" field.
func (_c *ProspectCreate) SetExistingWebsite(v string) *ProspectCreate {
	_c.mutation.SetExistingWebsite(v)
	return _c
}

// SetNillableExistingWebsite sets the "existing_website" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableExistingWebsite(v *string) *ProspectCreate {
	if v != nil {
		_c.SetExistingWebsite(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *ProspectCreate) SetRating(v float64) *ProspectCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableRating(v *float64) *ProspectCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ProspectCreate) SetReviewCount(v int) *ProspectCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableReviewCount(v *int) *ProspectCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetOpeningHours sets the "opening_hours" field.
func (_c *ProspectCreate) SetOpeningHours(v []string) *ProspectCreate {
	_c.mutation.SetOpeningHours(v)
	return _c
}

// SetPlaceID sets the "place_id" field.
func (_c *ProspectCreate) SetPlaceID(v string) *ProspectCreate {
	_c.mutation.SetPlaceID(v)
	return _c
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePlaceID(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPlaceID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ProspectCreate) SetScore(v int) *ProspectCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableScore(v *int) *ProspectCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProspectCreate) SetStatus(v prospect.Status) *ProspectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableStatus(v *prospect.Status) *ProspectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProspectCreate) SetCreatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCreatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProspectCreate) SetUpdatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableUpdatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddWebsiteIDs adds the "websites" edge to the Website entity by IDs.
func (_c *ProspectCreate) AddWebsiteIDs(ids ...int) *ProspectCreate {
	_c.mutation.AddWebsiteIDs(ids...)
	return _c
}

// AddWebsites adds the "websites" edges to the Website entity.
func (_c *ProspectCreate) AddWebsites(v ...*Website) *ProspectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWebsiteIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_c *ProspectCreate) Mutation() *ProspectMutation {
	return _c.mutation
}

// Save creates the Prospect in the database.
func (_c *ProspectCreate) Save(ctx context.Context) (*Prospect, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProspectCreate) SaveX(ctx context.Context) *Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProspectCreate) defaults() {
	if _, ok := _c.mutation.IndustryKey(); !ok {
		v := prospect.DefaultIndustryKey
		_c.mutation.SetIndustryKey(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := prospect.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := prospect.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := prospect.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prospect.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prospect.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProspectCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Prospect.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IndustryKey(); !ok {
		return &ValidationError{Name: "industry_key", err: errors.New(`ent: missing required field "Prospect.industry_key"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Prospect.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := prospect.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Prospect.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Prospect.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := prospect.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Prospect.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Prospect.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prospect.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prospect.updated_at"`)}
	}
	return nil
}

func (_c *ProspectCreate) sqlSave(ctx context.Context) (*Prospect, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProspectCreate) createSpec() (*Prospect, *sqlgraph.CreateSpec) {
	var (
		_node = &Prospect{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prospect.Table, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prospect.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(prospect.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IndustryKey(); ok {
		_spec.SetField(prospect.FieldIndustryKey, field.TypeString, value)
		_node.IndustryKey = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.ExistingWebsite(); ok {
		_spec.SetField(prospect.FieldExistingWebsite, field.TypeString, value)
		_node.ExistingWebsite = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(prospect.FieldRating, field.TypeFloat64, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(prospect.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
		_node.OpeningHours = value
	}
	if value, ok := _c.mutation.PlaceID(); ok {
		_spec.SetField(prospect.FieldPlaceID, field.TypeString, value)
		_node.PlaceID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(prospect.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prospect.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WebsitesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProspectCreateBulk is the builder for creating many Prospect entities in bulk.
type ProspectCreateBulk struct {
	config
	err      error
	builders []*ProspectCreate
}

// Save creates the Prospect entities in the database.
func (_c *ProspectCreateBulk) Save(ctx context.Context) ([]*Prospect, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prospect, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProspectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProspectCreateBulk) SaveX(ctx context.Context) []*Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
