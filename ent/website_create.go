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
	"github.com/sitewerk/sitewerk/ent/subscription"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/ent/website"
)

// WebsiteCreate is the builder for creating a Website entity.
type WebsiteCreate struct {
	config
	mutation *WebsiteMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *WebsiteCreate) SetSlug(v string) *WebsiteCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *WebsiteCreate) SetBusinessName(v string) *WebsiteCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetIndustryKey sets the "industry_key" field.
func (_c *WebsiteCreate) SetIndustryKey(v string) *WebsiteCreate {
	_c.mutation.SetIndustryKey(v)
	return _c
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableIndustryKey(v *string) *WebsiteCreate {
	if v != nil {
		_c.SetIndustryKey(*v)
	}
	return _c
}

// SetArchetypeID sets the "archetype_id" field.
func (_c *WebsiteCreate) SetArchetypeID(v string) *WebsiteCreate {
	_c.mutation.SetArchetypeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WebsiteCreate) SetStatus(v website.Status) *WebsiteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableStatus(v *website.Status) *WebsiteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOnboardingStatus sets the "onboarding_status" field.
func (_c *WebsiteCreate) SetOnboardingStatus(v website.OnboardingStatus) *WebsiteCreate {
	_c.mutation.SetOnboardingStatus(v)
	return _c
}

// SetNillableOnboardingStatus sets the "onboarding_status" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableOnboardingStatus(v *website.OnboardingStatus) *WebsiteCreate {
	if v != nil {
		_c.SetOnboardingStatus(*v)
	}
	return _c
}

// SetTagline sets the "tagline" field.
func (_c *WebsiteCreate) SetTagline(v string) *WebsiteCreate {
	_c.mutation.SetTagline(v)
	return _c
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableTagline(v *string) *WebsiteCreate {
	if v != nil {
		_c.SetTagline(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *WebsiteCreate) SetDescription(v string) *WebsiteCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableDescription(v *string) *WebsiteCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSections sets the "sections" field.
func (_c *WebsiteCreate) SetSections(v []map[string]interface{}) *WebsiteCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetDesignTokens sets the "design_tokens" field.
func (_c *WebsiteCreate) SetDesignTokens(v map[string]interface{}) *WebsiteCreate {
	_c.mutation.SetDesignTokens(v)
	return _c
}

// SetColorScheme sets the "color_scheme" field.
func (_c *WebsiteCreate) SetColorScheme(v map[string]string) *WebsiteCreate {
	_c.mutation.SetColorScheme(v)
	return _c
}

// SetHeroImage sets the "hero_image" field.
func (_c *WebsiteCreate) SetHeroImage(v string) *WebsiteCreate {
	_c.mutation.SetHeroImage(v)
	return _c
}

// SetNillableHeroImage sets the "hero_image" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableHeroImage(v *string) *WebsiteCreate {
	if v != nil {
		_c.SetHeroImage(*v)
	}
	return _c
}

// SetGallery sets the "gallery" field.
func (_c *WebsiteCreate) SetGallery(v []string) *WebsiteCreate {
	_c.mutation.SetGallery(v)
	return _c
}

// SetOnboardingData sets the "onboarding_data" field.
func (_c *WebsiteCreate) SetOnboardingData(v map[string]interface{}) *WebsiteCreate {
	_c.mutation.SetOnboardingData(v)
	return _c
}

// SetGenerationCount sets the "generation_count" field.
func (_c *WebsiteCreate) SetGenerationCount(v int) *WebsiteCreate {
	_c.mutation.SetGenerationCount(v)
	return _c
}

// SetNillableGenerationCount sets the "generation_count" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableGenerationCount(v *int) *WebsiteCreate {
	if v != nil {
		_c.SetGenerationCount(*v)
	}
	return _c
}

// SetSoldAt sets the "sold_at" field.
func (_c *WebsiteCreate) SetSoldAt(v time.Time) *WebsiteCreate {
	_c.mutation.SetSoldAt(v)
	return _c
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableSoldAt(v *time.Time) *WebsiteCreate {
	if v != nil {
		_c.SetSoldAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *WebsiteCreate) SetPublishedAt(v time.Time) *WebsiteCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillablePublishedAt(v *time.Time) *WebsiteCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *WebsiteCreate) SetExpiresAt(v time.Time) *WebsiteCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableExpiresAt(v *time.Time) *WebsiteCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebsiteCreate) SetCreatedAt(v time.Time) *WebsiteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableCreatedAt(v *time.Time) *WebsiteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebsiteCreate) SetUpdatedAt(v time.Time) *WebsiteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebsiteCreate) SetNillableUpdatedAt(v *time.Time) *WebsiteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_c *WebsiteCreate) SetProspectID(id int) *WebsiteCreate {
	_c.mutation.SetProspectID(id)
	return _c
}

// SetNillableProspectID sets the "prospect" edge to the Prospect entity by ID if the given value is not nil.
func (_c *WebsiteCreate) SetNillableProspectID(id *int) *WebsiteCreate {
	if id != nil {
		_c = _c.SetProspectID(*id)
	}
	return _c
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_c *WebsiteCreate) SetProspect(v *Prospect) *WebsiteCreate {
	return _c.SetProspectID(v.ID)
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *WebsiteCreate) SetOwnerID(id int) *WebsiteCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_c *WebsiteCreate) SetNillableOwnerID(id *int) *WebsiteCreate {
	if id != nil {
		_c = _c.SetOwnerID(*id)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *WebsiteCreate) SetOwner(v *User) *WebsiteCreate {
	return _c.SetOwnerID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_c *WebsiteCreate) AddSubscriptionIDs(ids ...int) *WebsiteCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_c *WebsiteCreate) AddSubscriptions(v ...*Subscription) *WebsiteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the WebsiteMutation object of the builder.
func (_c *WebsiteCreate) Mutation() *WebsiteMutation {
	return _c.mutation
}

// Save creates the Website in the database.
func (_c *WebsiteCreate) Save(ctx context.Context) (*Website, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebsiteCreate) SaveX(ctx context.Context) *Website {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebsiteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebsiteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebsiteCreate) defaults() {
	if _, ok := _c.mutation.IndustryKey(); !ok {
		v := website.DefaultIndustryKey
		_c.mutation.SetIndustryKey(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := website.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OnboardingStatus(); !ok {
		v := website.DefaultOnboardingStatus
		_c.mutation.SetOnboardingStatus(v)
	}
	if _, ok := _c.mutation.GenerationCount(); !ok {
		v := website.DefaultGenerationCount
		_c.mutation.SetGenerationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := website.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := website.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebsiteCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Website.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := website.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Website.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "Website.business_name"`)}
	}
	if v, ok := _c.mutation.BusinessName(); ok {
		if err := website.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Website.business_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IndustryKey(); !ok {
		return &ValidationError{Name: "industry_key", err: errors.New(`ent: missing required field "Website.industry_key"`)}
	}
	if _, ok := _c.mutation.ArchetypeID(); !ok {
		return &ValidationError{Name: "archetype_id", err: errors.New(`ent: missing required field "Website.archetype_id"`)}
	}
	if v, ok := _c.mutation.ArchetypeID(); ok {
		if err := website.ArchetypeIDValidator(v); err != nil {
			return &ValidationError{Name: "archetype_id", err: fmt.Errorf(`ent: validator failed for field "Website.archetype_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Website.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := website.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Website.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OnboardingStatus(); !ok {
		return &ValidationError{Name: "onboarding_status", err: errors.New(`ent: missing required field "Website.onboarding_status"`)}
	}
	if v, ok := _c.mutation.OnboardingStatus(); ok {
		if err := website.OnboardingStatusValidator(v); err != nil {
			return &ValidationError{Name: "onboarding_status", err: fmt.Errorf(`ent: validator failed for field "Website.onboarding_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sections(); !ok {
		return &ValidationError{Name: "sections", err: errors.New(`ent: missing required field "Website.sections"`)}
	}
	if _, ok := _c.mutation.DesignTokens(); !ok {
		return &ValidationError{Name: "design_tokens", err: errors.New(`ent: missing required field "Website.design_tokens"`)}
	}
	if _, ok := _c.mutation.ColorScheme(); !ok {
		return &ValidationError{Name: "color_scheme", err: errors.New(`ent: missing required field "Website.color_scheme"`)}
	}
	if _, ok := _c.mutation.GenerationCount(); !ok {
		return &ValidationError{Name: "generation_count", err: errors.New(`ent: missing required field "Website.generation_count"`)}
	}
	if v, ok := _c.mutation.GenerationCount(); ok {
		if err := website.GenerationCountValidator(v); err != nil {
			return &ValidationError{Name: "generation_count", err: fmt.Errorf(`ent: validator failed for field "Website.generation_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Website.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Website.updated_at"`)}
	}
	return nil
}

func (_c *WebsiteCreate) sqlSave(ctx context.Context) (*Website, error) {
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

func (_c *WebsiteCreate) createSpec() (*Website, *sqlgraph.CreateSpec) {
	var (
		_node = &Website{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(website.Table, sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(website.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(website.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.IndustryKey(); ok {
		_spec.SetField(website.FieldIndustryKey, field.TypeString, value)
		_node.IndustryKey = value
	}
	if value, ok := _c.mutation.ArchetypeID(); ok {
		_spec.SetField(website.FieldArchetypeID, field.TypeString, value)
		_node.ArchetypeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(website.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OnboardingStatus(); ok {
		_spec.SetField(website.FieldOnboardingStatus, field.TypeEnum, value)
		_node.OnboardingStatus = value
	}
	if value, ok := _c.mutation.Tagline(); ok {
		_spec.SetField(website.FieldTagline, field.TypeString, value)
		_node.Tagline = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(website.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(website.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.DesignTokens(); ok {
		_spec.SetField(website.FieldDesignTokens, field.TypeJSON, value)
		_node.DesignTokens = value
	}
	if value, ok := _c.mutation.ColorScheme(); ok {
		_spec.SetField(website.FieldColorScheme, field.TypeJSON, value)
		_node.ColorScheme = value
	}
	if value, ok := _c.mutation.HeroImage(); ok {
		_spec.SetField(website.FieldHeroImage, field.TypeString, value)
		_node.HeroImage = value
	}
	if value, ok := _c.mutation.Gallery(); ok {
		_spec.SetField(website.FieldGallery, field.TypeJSON, value)
		_node.Gallery = value
	}
	if value, ok := _c.mutation.OnboardingData(); ok {
		_spec.SetField(website.FieldOnboardingData, field.TypeJSON, value)
		_node.OnboardingData = value
	}
	if value, ok := _c.mutation.GenerationCount(); ok {
		_spec.SetField(website.FieldGenerationCount, field.TypeInt, value)
		_node.GenerationCount = value
	}
	if value, ok := _c.mutation.SoldAt(); ok {
		_spec.SetField(website.FieldSoldAt, field.TypeTime, value)
		_node.SoldAt = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(website.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(website.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(website.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(website.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProspectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   website.ProspectTable,
			Columns: []string{website.ProspectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.prospect_websites = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   website.OwnerTable,
			Columns: []string{website.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_websites = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   website.SubscriptionsTable,
			Columns: []string{website.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebsiteCreateBulk is the builder for creating many Website entities in bulk.
type WebsiteCreateBulk struct {
	config
	err      error
	builders []*WebsiteCreate
}

// Save creates the Website entities in the database.
func (_c *WebsiteCreateBulk) Save(ctx context.Context) ([]*Website, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Website, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebsiteMutation)
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
func (_c *WebsiteCreateBulk) SaveX(ctx context.Context) []*Website {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebsiteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebsiteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
