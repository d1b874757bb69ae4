// Code generated by ent, DO NOT EDIT.

package website

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sitewerk/sitewerk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldID, id))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldSlug, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldBusinessName, v))
}

// IndustryKey applies equality check predicate on the "industry_key" field. It's identical to IndustryKeyEQ.
func IndustryKey(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldIndustryKey, v))
}

// ArchetypeID applies equality check predicate on the "archetype_id" field. It's identical to ArchetypeIDEQ.
func ArchetypeID(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldArchetypeID, v))
}

// Tagline applies equality check predicate on the "tagline" field. It's identical to TaglineEQ.
func Tagline(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldTagline, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldDescription, v))
}

// HeroImage applies equality check predicate on the "hero_image" field. It's identical to HeroImageEQ.
func HeroImage(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldHeroImage, v))
}

// GenerationCount applies equality check predicate on the "generation_count" field. It's identical to GenerationCountEQ.
func GenerationCount(v int) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldGenerationCount, v))
}

// SoldAt applies equality check predicate on the "sold_at" field. It's identical to SoldAtEQ.
func SoldAt(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldSoldAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldPublishedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldSlug, v))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldBusinessName, v))
}

// IndustryKeyEQ applies the EQ predicate on the "industry_key" field.
func IndustryKeyEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldIndustryKey, v))
}

// IndustryKeyNEQ applies the NEQ predicate on the "industry_key" field.
func IndustryKeyNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldIndustryKey, v))
}

// IndustryKeyIn applies the In predicate on the "industry_key" field.
func IndustryKeyIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldIndustryKey, vs...))
}

// IndustryKeyNotIn applies the NotIn predicate on the "industry_key" field.
func IndustryKeyNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldIndustryKey, vs...))
}

// IndustryKeyGT applies the GT predicate on the "industry_key" field.
func IndustryKeyGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldIndustryKey, v))
}

// IndustryKeyGTE applies the GTE predicate on the "industry_key" field.
func IndustryKeyGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldIndustryKey, v))
}

// IndustryKeyLT applies the LT predicate on the "industry_key" field.
func IndustryKeyLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldIndustryKey, v))
}

// IndustryKeyLTE applies the LTE predicate on the "industry_key" field.
func IndustryKeyLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldIndustryKey, v))
}

// IndustryKeyContains applies the Contains predicate on the "industry_key" field.
func IndustryKeyContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldIndustryKey, v))
}

// IndustryKeyHasPrefix applies the HasPrefix predicate on the "industry_key" field.
func IndustryKeyHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldIndustryKey, v))
}

// IndustryKeyHasSuffix applies the HasSuffix predicate on the "industry_key" field.
func IndustryKeyHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldIndustryKey, v))
}

// IndustryKeyEqualFold applies the EqualFold predicate on the "industry_key" field.
func IndustryKeyEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldIndustryKey, v))
}

// IndustryKeyContainsFold applies the ContainsFold predicate on the "industry_key" field.
func IndustryKeyContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldIndustryKey, v))
}

// ArchetypeIDEQ applies the EQ predicate on the "archetype_id" field.
func ArchetypeIDEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldArchetypeID, v))
}

// ArchetypeIDNEQ applies the NEQ predicate on the "archetype_id" field.
func ArchetypeIDNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldArchetypeID, v))
}

// ArchetypeIDIn applies the In predicate on the "archetype_id" field.
func ArchetypeIDIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldArchetypeID, vs...))
}

// ArchetypeIDNotIn applies the NotIn predicate on the "archetype_id" field.
func ArchetypeIDNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldArchetypeID, vs...))
}

// ArchetypeIDGT applies the GT predicate on the "archetype_id" field.
func ArchetypeIDGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldArchetypeID, v))
}

// ArchetypeIDGTE applies the GTE predicate on the "archetype_id" field.
func ArchetypeIDGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldArchetypeID, v))
}

// ArchetypeIDLT applies the LT predicate on the "archetype_id" field.
func ArchetypeIDLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldArchetypeID, v))
}

// ArchetypeIDLTE applies the LTE predicate on the "archetype_id" field.
func ArchetypeIDLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldArchetypeID, v))
}

// ArchetypeIDContains applies the Contains predicate on the "archetype_id" field.
func ArchetypeIDContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldArchetypeID, v))
}

// ArchetypeIDHasPrefix applies the HasPrefix predicate on the "archetype_id" field.
func ArchetypeIDHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldArchetypeID, v))
}

// ArchetypeIDHasSuffix applies the HasSuffix predicate on the "archetype_id" field.
func ArchetypeIDHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldArchetypeID, v))
}

// ArchetypeIDEqualFold applies the EqualFold predicate on the "archetype_id" field.
func ArchetypeIDEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldArchetypeID, v))
}

// ArchetypeIDContainsFold applies the ContainsFold predicate on the "archetype_id" field.
func ArchetypeIDContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldArchetypeID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldStatus, vs...))
}

// OnboardingStatusEQ applies the EQ predicate on the "onboarding_status" field.
func OnboardingStatusEQ(v OnboardingStatus) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldOnboardingStatus, v))
}

// OnboardingStatusNEQ applies the NEQ predicate on the "onboarding_status" field.
func OnboardingStatusNEQ(v OnboardingStatus) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldOnboardingStatus, v))
}

// OnboardingStatusIn applies the In predicate on the "onboarding_status" field.
func OnboardingStatusIn(vs ...OnboardingStatus) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldOnboardingStatus, vs...))
}

// OnboardingStatusNotIn applies the NotIn predicate on the "onboarding_status" field.
func OnboardingStatusNotIn(vs ...OnboardingStatus) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldOnboardingStatus, vs...))
}

// TaglineEQ applies the EQ predicate on the "tagline" field.
func TaglineEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldTagline, v))
}

// TaglineNEQ applies the NEQ predicate on the "tagline" field.
func TaglineNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldTagline, v))
}

// TaglineIn applies the In predicate on the "tagline" field.
func TaglineIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldTagline, vs...))
}

// TaglineNotIn applies the NotIn predicate on the "tagline" field.
func TaglineNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldTagline, vs...))
}

// TaglineGT applies the GT predicate on the "tagline" field.
func TaglineGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldTagline, v))
}

// TaglineGTE applies the GTE predicate on the "tagline" field.
func TaglineGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldTagline, v))
}

// TaglineLT applies the LT predicate on the "tagline" field.
func TaglineLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldTagline, v))
}

// TaglineLTE applies the LTE predicate on the "tagline" field.
func TaglineLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldTagline, v))
}

// TaglineContains applies the Contains predicate on the "tagline" field.
func TaglineContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldTagline, v))
}

// TaglineHasPrefix applies the HasPrefix predicate on the "tagline" field.
func TaglineHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldTagline, v))
}

// TaglineHasSuffix applies the HasSuffix predicate on the "tagline" field.
func TaglineHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldTagline, v))
}

// TaglineIsNil applies the IsNil predicate on the "tagline" field.
func TaglineIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldTagline))
}

// TaglineNotNil applies the NotNil predicate on the "tagline" field.
func TaglineNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldTagline))
}

// TaglineEqualFold applies the EqualFold predicate on the "tagline" field.
func TaglineEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldTagline, v))
}

// TaglineContainsFold applies the ContainsFold predicate on the "tagline" field.
func TaglineContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldTagline, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldDescription, v))
}

// HeroImageEQ applies the EQ predicate on the "hero_image" field.
func HeroImageEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldHeroImage, v))
}

// HeroImageNEQ applies the NEQ predicate on the "hero_image" field.
func HeroImageNEQ(v string) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldHeroImage, v))
}

// HeroImageIn applies the In predicate on the "hero_image" field.
func HeroImageIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldHeroImage, vs...))
}

// HeroImageNotIn applies the NotIn predicate on the "hero_image" field.
func HeroImageNotIn(vs ...string) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldHeroImage, vs...))
}

// HeroImageGT applies the GT predicate on the "hero_image" field.
func HeroImageGT(v string) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldHeroImage, v))
}

// HeroImageGTE applies the GTE predicate on the "hero_image" field.
func HeroImageGTE(v string) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldHeroImage, v))
}

// HeroImageLT applies the LT predicate on the "hero_image" field.
func HeroImageLT(v string) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldHeroImage, v))
}

// HeroImageLTE applies the LTE predicate on the "hero_image" field.
func HeroImageLTE(v string) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldHeroImage, v))
}

// HeroImageContains applies the Contains predicate on the "hero_image" field.
func HeroImageContains(v string) predicate.Website {
	return predicate.Website(sql.FieldContains(FieldHeroImage, v))
}

// HeroImageHasPrefix applies the HasPrefix predicate on the "hero_image" field.
func HeroImageHasPrefix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasPrefix(FieldHeroImage, v))
}

// HeroImageHasSuffix applies the HasSuffix predicate on the "hero_image" field.
func HeroImageHasSuffix(v string) predicate.Website {
	return predicate.Website(sql.FieldHasSuffix(FieldHeroImage, v))
}

// HeroImageIsNil applies the IsNil predicate on the "hero_image" field.
func HeroImageIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldHeroImage))
}

// HeroImageNotNil applies the NotNil predicate on the "hero_image" field.
func HeroImageNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldHeroImage))
}

// HeroImageEqualFold applies the EqualFold predicate on the "hero_image" field.
func HeroImageEqualFold(v string) predicate.Website {
	return predicate.Website(sql.FieldEqualFold(FieldHeroImage, v))
}

// HeroImageContainsFold applies the ContainsFold predicate on the "hero_image" field.
func HeroImageContainsFold(v string) predicate.Website {
	return predicate.Website(sql.FieldContainsFold(FieldHeroImage, v))
}

// GalleryIsNil applies the IsNil predicate on the "gallery" field.
func GalleryIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldGallery))
}

// GalleryNotNil applies the NotNil predicate on the "gallery" field.
func GalleryNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldGallery))
}

// OnboardingDataIsNil applies the IsNil predicate on the "onboarding_data" field.
func OnboardingDataIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldOnboardingData))
}

// OnboardingDataNotNil applies the NotNil predicate on the "onboarding_data" field.
func OnboardingDataNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldOnboardingData))
}

// GenerationCountEQ applies the EQ predicate on the "generation_count" field.
func GenerationCountEQ(v int) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldGenerationCount, v))
}

// GenerationCountNEQ applies the NEQ predicate on the "generation_count" field.
func GenerationCountNEQ(v int) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldGenerationCount, v))
}

// GenerationCountIn applies the In predicate on the "generation_count" field.
func GenerationCountIn(vs ...int) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldGenerationCount, vs...))
}

// GenerationCountNotIn applies the NotIn predicate on the "generation_count" field.
func GenerationCountNotIn(vs ...int) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldGenerationCount, vs...))
}

// GenerationCountGT applies the GT predicate on the "generation_count" field.
func GenerationCountGT(v int) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldGenerationCount, v))
}

// GenerationCountGTE applies the GTE predicate on the "generation_count" field.
func GenerationCountGTE(v int) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldGenerationCount, v))
}

// GenerationCountLT applies the LT predicate on the "generation_count" field.
func GenerationCountLT(v int) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldGenerationCount, v))
}

// GenerationCountLTE applies the LTE predicate on the "generation_count" field.
func GenerationCountLTE(v int) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldGenerationCount, v))
}

// SoldAtEQ applies the EQ predicate on the "sold_at" field.
func SoldAtEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldSoldAt, v))
}

// SoldAtNEQ applies the NEQ predicate on the "sold_at" field.
func SoldAtNEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldSoldAt, v))
}

// SoldAtIn applies the In predicate on the "sold_at" field.
func SoldAtIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldSoldAt, vs...))
}

// SoldAtNotIn applies the NotIn predicate on the "sold_at" field.
func SoldAtNotIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldSoldAt, vs...))
}

// SoldAtGT applies the GT predicate on the "sold_at" field.
func SoldAtGT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldSoldAt, v))
}

// SoldAtGTE applies the GTE predicate on the "sold_at" field.
func SoldAtGTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldSoldAt, v))
}

// SoldAtLT applies the LT predicate on the "sold_at" field.
func SoldAtLT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldSoldAt, v))
}

// SoldAtLTE applies the LTE predicate on the "sold_at" field.
func SoldAtLTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldSoldAt, v))
}

// SoldAtIsNil applies the IsNil predicate on the "sold_at" field.
func SoldAtIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldSoldAt))
}

// SoldAtNotNil applies the NotNil predicate on the "sold_at" field.
func SoldAtNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldSoldAt))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldPublishedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Website {
	return predicate.Website(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Website {
	return predicate.Website(sql.FieldNotNull(FieldExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Website {
	return predicate.Website(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Website {
	return predicate.Website(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProspect applies the HasEdge predicate on the "prospect" edge.
func HasProspect() predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProspectWith applies the HasEdge predicate on the "prospect" edge with a given conditions (other predicates).
func HasProspectWith(preds ...predicate.Prospect) predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := newProspectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubscriptions applies the HasEdge predicate on the "subscriptions" edge.
func HasSubscriptions() predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionsWith applies the HasEdge predicate on the "subscriptions" edge with a given conditions (other predicates).
func HasSubscriptionsWith(preds ...predicate.Subscription) predicate.Website {
	return predicate.Website(func(s *sql.Selector) {
		step := newSubscriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Website) predicate.Website {
	return predicate.Website(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Website) predicate.Website {
	return predicate.Website(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Website) predicate.Website {
	return predicate.Website(sql.NotPredicates(p))
}
