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
	"github.com/sitewerk/sitewerk/ent/subscription"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/ent/website"
)

// WebsiteUpdate is the builder for updating Website entities.
type WebsiteUpdate struct {
	config
	hooks    []Hook
	mutation *WebsiteMutation
}

// Where appends a list predicates to the WebsiteUpdate builder.
func (_u *WebsiteUpdate) Where(ps ...predicate.Website) *WebsiteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *WebsiteUpdate) SetSlug(v string) *WebsiteUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableSlug(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *WebsiteUpdate) SetBusinessName(v string) *WebsiteUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableBusinessName(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *WebsiteUpdate) SetIndustryKey(v string) *WebsiteUpdate {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableIndustryKey(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// SetArchetypeID sets the "archetype_id" field.
func (_u *WebsiteUpdate) SetArchetypeID(v string) *WebsiteUpdate {
	_u.mutation.SetArchetypeID(v)
	return _u
}

// SetNillableArchetypeID sets the "archetype_id" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableArchetypeID(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetArchetypeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebsiteUpdate) SetStatus(v website.Status) *WebsiteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableStatus(v *website.Status) *WebsiteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOnboardingStatus sets the "onboarding_status" field.
func (_u *WebsiteUpdate) SetOnboardingStatus(v website.OnboardingStatus) *WebsiteUpdate {
	_u.mutation.SetOnboardingStatus(v)
	return _u
}

// SetNillableOnboardingStatus sets the "onboarding_status" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableOnboardingStatus(v *website.OnboardingStatus) *WebsiteUpdate {
	if v != nil {
		_u.SetOnboardingStatus(*v)
	}
	return _u
}

// SetTagline sets the "tagline" field.
func (_u *WebsiteUpdate) SetTagline(v string) *WebsiteUpdate {
	_u.mutation.SetTagline(v)
	return _u
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableTagline(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetTagline(*v)
	}
	return _u
}

// ClearTagline clears the value of the "tagline" field.
func (_u *WebsiteUpdate) ClearTagline() *WebsiteUpdate {
	_u.mutation.ClearTagline()
	return _u
}

// SetDescription sets the "description" field.
func (_u *WebsiteUpdate) SetDescription(v string) *WebsiteUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableDescription(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WebsiteUpdate) ClearDescription() *WebsiteUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSections sets the "sections" field.
func (_u *WebsiteUpdate) SetSections(v []map[string]interface{}) *WebsiteUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *WebsiteUpdate) AppendSections(v []map[string]interface{}) *WebsiteUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// SetDesignTokens sets the "design_tokens" field.
func (_u *WebsiteUpdate) SetDesignTokens(v map[string]interface{}) *WebsiteUpdate {
	_u.mutation.SetDesignTokens(v)
	return _u
}

// SetColorScheme sets the "color_scheme" field.
func (_u *WebsiteUpdate) SetColorScheme(v map[string]string) *WebsiteUpdate {
	_u.mutation.SetColorScheme(v)
	return _u
}

// SetHeroImage sets the "hero_image" field.
func (_u *WebsiteUpdate) SetHeroImage(v string) *WebsiteUpdate {
	_u.mutation.SetHeroImage(v)
	return _u
}

// SetNillableHeroImage sets the "hero_image" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableHeroImage(v *string) *WebsiteUpdate {
	if v != nil {
		_u.SetHeroImage(*v)
	}
	return _u
}

// ClearHeroImage clears the value of the "hero_image" field.
func (_u *WebsiteUpdate) ClearHeroImage() *WebsiteUpdate {
	_u.mutation.ClearHeroImage()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *WebsiteUpdate) SetGallery(v []string) *WebsiteUpdate {
	_u.mutation.SetGallery(v)
	return _u
}

// AppendGallery appends value to the "gallery" field.
func (_u *WebsiteUpdate) AppendGallery(v []string) *WebsiteUpdate {
	_u.mutation.AppendGallery(v)
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *WebsiteUpdate) ClearGallery() *WebsiteUpdate {
	_u.mutation.ClearGallery()
	return _u
}

// SetOnboardingData sets the "onboarding_data" field.
func (_u *WebsiteUpdate) SetOnboardingData(v map[string]interface{}) *WebsiteUpdate {
	_u.mutation.SetOnboardingData(v)
	return _u
}

// ClearOnboardingData clears the value of the "onboarding_data" field.
func (_u *WebsiteUpdate) ClearOnboardingData() *WebsiteUpdate {
	_u.mutation.ClearOnboardingData()
	return _u
}

// SetGenerationCount sets the "generation_count" field.
func (_u *WebsiteUpdate) SetGenerationCount(v int) *WebsiteUpdate {
	_u.mutation.ResetGenerationCount()
	_u.mutation.SetGenerationCount(v)
	return _u
}

// SetNillableGenerationCount sets the "generation_count" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableGenerationCount(v *int) *WebsiteUpdate {
	if v != nil {
		_u.SetGenerationCount(*v)
	}
	return _u
}

// AddGenerationCount adds value to the "generation_count" field.
func (_u *WebsiteUpdate) AddGenerationCount(v int) *WebsiteUpdate {
	_u.mutation.AddGenerationCount(v)
	return _u
}

// SetSoldAt sets the "sold_at" field.
func (_u *WebsiteUpdate) SetSoldAt(v time.Time) *WebsiteUpdate {
	_u.mutation.SetSoldAt(v)
	return _u
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableSoldAt(v *time.Time) *WebsiteUpdate {
	if v != nil {
		_u.SetSoldAt(*v)
	}
	return _u
}

// ClearSoldAt clears the value of the "sold_at" field.
func (_u *WebsiteUpdate) ClearSoldAt() *WebsiteUpdate {
	_u.mutation.ClearSoldAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *WebsiteUpdate) SetPublishedAt(v time.Time) *WebsiteUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillablePublishedAt(v *time.Time) *WebsiteUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *WebsiteUpdate) ClearPublishedAt() *WebsiteUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *WebsiteUpdate) SetExpiresAt(v time.Time) *WebsiteUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableExpiresAt(v *time.Time) *WebsiteUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *WebsiteUpdate) ClearExpiresAt() *WebsiteUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebsiteUpdate) SetUpdatedAt(v time.Time) *WebsiteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *WebsiteUpdate) SetProspectID(id int) *WebsiteUpdate {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetNillableProspectID sets the "prospect" edge to the Prospect entity by ID if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableProspectID(id *int) *WebsiteUpdate {
	if id != nil {
		_u = _u.SetProspectID(*id)
	}
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *WebsiteUpdate) SetProspect(v *Prospect) *WebsiteUpdate {
	return _u.SetProspectID(v.ID)
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *WebsiteUpdate) SetOwnerID(id int) *WebsiteUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *WebsiteUpdate) SetNillableOwnerID(id *int) *WebsiteUpdate {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *WebsiteUpdate) SetOwner(v *User) *WebsiteUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *WebsiteUpdate) AddSubscriptionIDs(ids ...int) *WebsiteUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *WebsiteUpdate) AddSubscriptions(v ...*Subscription) *WebsiteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the WebsiteMutation object of the builder.
func (_u *WebsiteUpdate) Mutation() *WebsiteMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *WebsiteUpdate) ClearProspect() *WebsiteUpdate {
	_u.mutation.ClearProspect()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *WebsiteUpdate) ClearOwner() *WebsiteUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *WebsiteUpdate) ClearSubscriptions() *WebsiteUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *WebsiteUpdate) RemoveSubscriptionIDs(ids ...int) *WebsiteUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *WebsiteUpdate) RemoveSubscriptions(v ...*Subscription) *WebsiteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebsiteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebsiteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebsiteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebsiteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebsiteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := website.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebsiteUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := website.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Website.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := website.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Website.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchetypeID(); ok {
		if err := website.ArchetypeIDValidator(v); err != nil {
			return &ValidationError{Name: "archetype_id", err: fmt.Errorf(`ent: validator failed for field "Website.archetype_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := website.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Website.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnboardingStatus(); ok {
		if err := website.OnboardingStatusValidator(v); err != nil {
			return &ValidationError{Name: "onboarding_status", err: fmt.Errorf(`ent: validator failed for field "Website.onboarding_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenerationCount(); ok {
		if err := website.GenerationCountValidator(v); err != nil {
			return &ValidationError{Name: "generation_count", err: fmt.Errorf(`ent: validator failed for field "Website.generation_count": %w`, err)}
		}
	}
	return nil
}

func (_u *WebsiteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(website.Table, website.Columns, sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(website.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(website.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(website.FieldIndustryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchetypeID(); ok {
		_spec.SetField(website.FieldArchetypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(website.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OnboardingStatus(); ok {
		_spec.SetField(website.FieldOnboardingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tagline(); ok {
		_spec.SetField(website.FieldTagline, field.TypeString, value)
	}
	if _u.mutation.TaglineCleared() {
		_spec.ClearField(website.FieldTagline, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(website.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(website.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(website.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, website.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.DesignTokens(); ok {
		_spec.SetField(website.FieldDesignTokens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ColorScheme(); ok {
		_spec.SetField(website.FieldColorScheme, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.HeroImage(); ok {
		_spec.SetField(website.FieldHeroImage, field.TypeString, value)
	}
	if _u.mutation.HeroImageCleared() {
		_spec.ClearField(website.FieldHeroImage, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(website.FieldGallery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGallery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, website.FieldGallery, value)
		})
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(website.FieldGallery, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingData(); ok {
		_spec.SetField(website.FieldOnboardingData, field.TypeJSON, value)
	}
	if _u.mutation.OnboardingDataCleared() {
		_spec.ClearField(website.FieldOnboardingData, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenerationCount(); ok {
		_spec.SetField(website.FieldGenerationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationCount(); ok {
		_spec.AddField(website.FieldGenerationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SoldAt(); ok {
		_spec.SetField(website.FieldSoldAt, field.TypeTime, value)
	}
	if _u.mutation.SoldAtCleared() {
		_spec.ClearField(website.FieldSoldAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(website.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(website.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(website.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(website.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(website.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{website.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebsiteUpdateOne is the builder for updating a single Website entity.
type WebsiteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebsiteMutation
}

// SetSlug sets the "slug" field.
func (_u *WebsiteUpdateOne) SetSlug(v string) *WebsiteUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableSlug(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *WebsiteUpdateOne) SetBusinessName(v string) *WebsiteUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableBusinessName(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *WebsiteUpdateOne) SetIndustryKey(v string) *WebsiteUpdateOne {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableIndustryKey(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// SetArchetypeID sets the "archetype_id" field.
func (_u *WebsiteUpdateOne) SetArchetypeID(v string) *WebsiteUpdateOne {
	_u.mutation.SetArchetypeID(v)
	return _u
}

// SetNillableArchetypeID sets the "archetype_id" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableArchetypeID(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetArchetypeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebsiteUpdateOne) SetStatus(v website.Status) *WebsiteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableStatus(v *website.Status) *WebsiteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOnboardingStatus sets the "onboarding_status" field.
func (_u *WebsiteUpdateOne) SetOnboardingStatus(v website.OnboardingStatus) *WebsiteUpdateOne {
	_u.mutation.SetOnboardingStatus(v)
	return _u
}

// SetNillableOnboardingStatus sets the "onboarding_status" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableOnboardingStatus(v *website.OnboardingStatus) *WebsiteUpdateOne {
	if v != nil {
		_u.SetOnboardingStatus(*v)
	}
	return _u
}

// SetTagline sets the "tagline" field.
func (_u *WebsiteUpdateOne) SetTagline(v string) *WebsiteUpdateOne {
	_u.mutation.SetTagline(v)
	return _u
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableTagline(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetTagline(*v)
	}
	return _u
}

// ClearTagline clears the value of the "tagline" field.
func (_u *WebsiteUpdateOne) ClearTagline() *WebsiteUpdateOne {
	_u.mutation.ClearTagline()
	return _u
}

// SetDescription sets the "description" field.
func (_u *WebsiteUpdateOne) SetDescription(v string) *WebsiteUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableDescription(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WebsiteUpdateOne) ClearDescription() *WebsiteUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSections sets the "sections" field.
func (_u *WebsiteUpdateOne) SetSections(v []map[string]interface{}) *WebsiteUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *WebsiteUpdateOne) AppendSections(v []map[string]interface{}) *WebsiteUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// SetDesignTokens sets the "design_tokens" field.
func (_u *WebsiteUpdateOne) SetDesignTokens(v map[string]interface{}) *WebsiteUpdateOne {
	_u.mutation.SetDesignTokens(v)
	return _u
}

// SetColorScheme sets the "color_scheme" field.
func (_u *WebsiteUpdateOne) SetColorScheme(v map[string]string) *WebsiteUpdateOne {
	_u.mutation.SetColorScheme(v)
	return _u
}

// SetHeroImage sets the "hero_image" field.
func (_u *WebsiteUpdateOne) SetHeroImage(v string) *WebsiteUpdateOne {
	_u.mutation.SetHeroImage(v)
	return _u
}

// SetNillableHeroImage sets the "hero_image" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableHeroImage(v *string) *WebsiteUpdateOne {
	if v != nil {
		_u.SetHeroImage(*v)
	}
	return _u
}

// ClearHeroImage clears the value of the "hero_image" field.
func (_u *WebsiteUpdateOne) ClearHeroImage() *WebsiteUpdateOne {
	_u.mutation.ClearHeroImage()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *WebsiteUpdateOne) SetGallery(v []string) *WebsiteUpdateOne {
	_u.mutation.SetGallery(v)
	return _u
}

// AppendGallery appends value to the "gallery" field.
func (_u *WebsiteUpdateOne) AppendGallery(v []string) *WebsiteUpdateOne {
	_u.mutation.AppendGallery(v)
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *WebsiteUpdateOne) ClearGallery() *WebsiteUpdateOne {
	_u.mutation.ClearGallery()
	return _u
}

// SetOnboardingData sets the "onboarding_data" field.
func (_u *WebsiteUpdateOne) SetOnboardingData(v map[string]interface{}) *WebsiteUpdateOne {
	_u.mutation.SetOnboardingData(v)
	return _u
}

// ClearOnboardingData clears the value of the "onboarding_data" field.
func (_u *WebsiteUpdateOne) ClearOnboardingData() *WebsiteUpdateOne {
	_u.mutation.ClearOnboardingData()
	return _u
}

// SetGenerationCount sets the "generation_count" field.
func (_u *WebsiteUpdateOne) SetGenerationCount(v int) *WebsiteUpdateOne {
	_u.mutation.ResetGenerationCount()
	_u.mutation.SetGenerationCount(v)
	return _u
}

// SetNillableGenerationCount sets the "generation_count" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableGenerationCount(v *int) *WebsiteUpdateOne {
	if v != nil {
		_u.SetGenerationCount(*v)
	}
	return _u
}

// AddGenerationCount adds value to the "generation_count" field.
func (_u *WebsiteUpdateOne) AddGenerationCount(v int) *WebsiteUpdateOne {
	_u.mutation.AddGenerationCount(v)
	return _u
}

// SetSoldAt sets the "sold_at" field.
func (_u *WebsiteUpdateOne) SetSoldAt(v time.Time) *WebsiteUpdateOne {
	_u.mutation.SetSoldAt(v)
	return _u
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableSoldAt(v *time.Time) *WebsiteUpdateOne {
	if v != nil {
		_u.SetSoldAt(*v)
	}
	return _u
}

// ClearSoldAt clears the value of the "sold_at" field.
func (_u *WebsiteUpdateOne) ClearSoldAt() *WebsiteUpdateOne {
	_u.mutation.ClearSoldAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *WebsiteUpdateOne) SetPublishedAt(v time.Time) *WebsiteUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillablePublishedAt(v *time.Time) *WebsiteUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *WebsiteUpdateOne) ClearPublishedAt() *WebsiteUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *WebsiteUpdateOne) SetExpiresAt(v time.Time) *WebsiteUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableExpiresAt(v *time.Time) *WebsiteUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *WebsiteUpdateOne) ClearExpiresAt() *WebsiteUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebsiteUpdateOne) SetUpdatedAt(v time.Time) *WebsiteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *WebsiteUpdateOne) SetProspectID(id int) *WebsiteUpdateOne {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetNillableProspectID sets the "prospect" edge to the Prospect entity by ID if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableProspectID(id *int) *WebsiteUpdateOne {
	if id != nil {
		_u = _u.SetProspectID(*id)
	}
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *WebsiteUpdateOne) SetProspect(v *Prospect) *WebsiteUpdateOne {
	return _u.SetProspectID(v.ID)
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *WebsiteUpdateOne) SetOwnerID(id int) *WebsiteUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *WebsiteUpdateOne) SetNillableOwnerID(id *int) *WebsiteUpdateOne {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *WebsiteUpdateOne) SetOwner(v *User) *WebsiteUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *WebsiteUpdateOne) AddSubscriptionIDs(ids ...int) *WebsiteUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *WebsiteUpdateOne) AddSubscriptions(v ...*Subscription) *WebsiteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the WebsiteMutation object of the builder.
func (_u *WebsiteUpdateOne) Mutation() *WebsiteMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *WebsiteUpdateOne) ClearProspect() *WebsiteUpdateOne {
	_u.mutation.ClearProspect()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *WebsiteUpdateOne) ClearOwner() *WebsiteUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *WebsiteUpdateOne) ClearSubscriptions() *WebsiteUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *WebsiteUpdateOne) RemoveSubscriptionIDs(ids ...int) *WebsiteUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *WebsiteUpdateOne) RemoveSubscriptions(v ...*Subscription) *WebsiteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the WebsiteUpdate builder.
func (_u *WebsiteUpdateOne) Where(ps ...predicate.Website) *WebsiteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebsiteUpdateOne) Select(field string, fields ...string) *WebsiteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Website entity.
func (_u *WebsiteUpdateOne) Save(ctx context.Context) (*Website, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebsiteUpdateOne) SaveX(ctx context.Context) *Website {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebsiteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebsiteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebsiteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := website.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebsiteUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := website.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Website.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := website.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Website.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchetypeID(); ok {
		if err := website.ArchetypeIDValidator(v); err != nil {
			return &ValidationError{Name: "archetype_id", err: fmt.Errorf(`ent: validator failed for field "Website.archetype_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := website.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Website.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnboardingStatus(); ok {
		if err := website.OnboardingStatusValidator(v); err != nil {
			return &ValidationError{Name: "onboarding_status", err: fmt.Errorf(`ent: validator failed for field "Website.onboarding_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenerationCount(); ok {
		if err := website.GenerationCountValidator(v); err != nil {
			return &ValidationError{Name: "generation_count", err: fmt.Errorf(`ent: validator failed for field "Website.generation_count": %w`, err)}
		}
	}
	return nil
}

func (_u *WebsiteUpdateOne) sqlSave(ctx context.Context) (_node *Website, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(website.Table, website.Columns, sqlgraph.NewFieldSpec(website.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Website.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, website.FieldID)
		for _, f := range fields {
			if !website.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != website.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(website.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(website.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(website.FieldIndustryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchetypeID(); ok {
		_spec.SetField(website.FieldArchetypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(website.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OnboardingStatus(); ok {
		_spec.SetField(website.FieldOnboardingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tagline(); ok {
		_spec.SetField(website.FieldTagline, field.TypeString, value)
	}
	if _u.mutation.TaglineCleared() {
		_spec.ClearField(website.FieldTagline, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(website.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(website.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(website.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, website.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.DesignTokens(); ok {
		_spec.SetField(website.FieldDesignTokens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ColorScheme(); ok {
		_spec.SetField(website.FieldColorScheme, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.HeroImage(); ok {
		_spec.SetField(website.FieldHeroImage, field.TypeString, value)
	}
	if _u.mutation.HeroImageCleared() {
		_spec.ClearField(website.FieldHeroImage, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(website.FieldGallery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGallery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, website.FieldGallery, value)
		})
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(website.FieldGallery, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingData(); ok {
		_spec.SetField(website.FieldOnboardingData, field.TypeJSON, value)
	}
	if _u.mutation.OnboardingDataCleared() {
		_spec.ClearField(website.FieldOnboardingData, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenerationCount(); ok {
		_spec.SetField(website.FieldGenerationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationCount(); ok {
		_spec.AddField(website.FieldGenerationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SoldAt(); ok {
		_spec.SetField(website.FieldSoldAt, field.TypeTime, value)
	}
	if _u.mutation.SoldAtCleared() {
		_spec.ClearField(website.FieldSoldAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(website.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(website.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(website.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(website.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(website.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Website{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{website.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
