// Code generated by ent, DO NOT EDIT.

package prospect

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sitewerk/sitewerk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCategory, v))
}

// IndustryKey applies equality check predicate on the "industry_key" field. It's identical to IndustryKeyEQ.
func IndustryKey(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldIndustryKey, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCity, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPostalCode, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldEmail, v))
}

// ExistingWebsite applies equality check predicate on the "existing_website" field. It's identical to ExistingWebsiteEQ.
func ExistingWebsite(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldExistingWebsite, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldRating, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldReviewCount, v))
}

// PlaceID applies equality check predicate on the "place_id" field. It's identical to PlaceIDEQ.
func PlaceID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPlaceID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldCategory, v))
}

// IndustryKeyEQ applies the EQ predicate on the "industry_key" field.
func IndustryKeyEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldIndustryKey, v))
}

// IndustryKeyNEQ applies the NEQ predicate on the "industry_key" field.
func IndustryKeyNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldIndustryKey, v))
}

// IndustryKeyIn applies the In predicate on the "industry_key" field.
func IndustryKeyIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldIndustryKey, vs...))
}

// IndustryKeyNotIn applies the NotIn predicate on the "industry_key" field.
func IndustryKeyNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldIndustryKey, vs...))
}

// IndustryKeyGT applies the GT predicate on the "industry_key" field.
func IndustryKeyGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldIndustryKey, v))
}

// IndustryKeyGTE applies the GTE predicate on the "industry_key" field.
func IndustryKeyGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldIndustryKey, v))
}

// IndustryKeyLT applies the LT predicate on the "industry_key" field.
func IndustryKeyLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldIndustryKey, v))
}

// IndustryKeyLTE applies the LTE predicate on the "industry_key" field.
func IndustryKeyLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldIndustryKey, v))
}

// IndustryKeyContains applies the Contains predicate on the "industry_key" field.
func IndustryKeyContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldIndustryKey, v))
}

// IndustryKeyHasPrefix applies the HasPrefix predicate on the "industry_key" field.
func IndustryKeyHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldIndustryKey, v))
}

// IndustryKeyHasSuffix applies the HasSuffix predicate on the "industry_key" field.
func IndustryKeyHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldIndustryKey, v))
}

// IndustryKeyEqualFold applies the EqualFold predicate on the "industry_key" field.
func IndustryKeyEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldIndustryKey, v))
}

// IndustryKeyContainsFold applies the ContainsFold predicate on the "industry_key" field.
func IndustryKeyContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldIndustryKey, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldCity, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPostalCode, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldEmail, v))
}

// ExistingWebsiteEQ applies the EQ predicate on the "existing_website" field.
func ExistingWebsiteEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldExistingWebsite, v))
}

// ExistingWebsiteNEQ applies the NEQ predicate on the "existing_website" field.
func ExistingWebsiteNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldExistingWebsite, v))
}

// ExistingWebsiteIn applies the In predicate on the "existing_website" field.
func ExistingWebsiteIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldExistingWebsite, vs...))
}

// ExistingWebsiteNotIn applies the NotIn predicate on the "existing_website" field.
func ExistingWebsiteNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldExistingWebsite, vs...))
}

// ExistingWebsiteGT applies the GT predicate on the "existing_website" field.
func ExistingWebsiteGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldExistingWebsite, v))
}

// ExistingWebsiteGTE applies the GTE predicate on the "existing_website" field.
func ExistingWebsiteGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldExistingWebsite, v))
}

// ExistingWebsiteLT applies the LT predicate on the "existing_website" field.
func ExistingWebsiteLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldExistingWebsite, v))
}

// ExistingWebsiteLTE applies the LTE predicate on the "existing_website" field.
func ExistingWebsiteLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldExistingWebsite, v))
}

// ExistingWebsiteContains applies the Contains predicate on the "existing_website" field.
func ExistingWebsiteContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldExistingWebsite, v))
}

// ExistingWebsiteHasPrefix applies the HasPrefix predicate on the "existing_website" field.
func ExistingWebsiteHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldExistingWebsite, v))
}

// ExistingWebsiteHasSuffix applies the HasSuffix predicate on the "existing_website" field.
func ExistingWebsiteHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldExistingWebsite, v))
}

// ExistingWebsiteIsNil applies the IsNil predicate on the "existing_website" field.
func ExistingWebsiteIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldExistingWebsite))
}

// ExistingWebsiteNotNil applies the NotNil predicate on the "existing_website" field.
func ExistingWebsiteNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldExistingWebsite))
}

// ExistingWebsiteEqualFold applies the EqualFold predicate on the "existing_website" field.
func ExistingWebsiteEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldExistingWebsite, v))
}

// ExistingWebsiteContainsFold applies the ContainsFold predicate on the "existing_website" field.
func ExistingWebsiteContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldExistingWebsite, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldRating))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldReviewCount, v))
}

// OpeningHoursIsNil applies the IsNil predicate on the "opening_hours" field.
func OpeningHoursIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldOpeningHours))
}

// OpeningHoursNotNil applies the NotNil predicate on the "opening_hours" field.
func OpeningHoursNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldOpeningHours))
}

// PlaceIDEQ applies the EQ predicate on the "place_id" field.
func PlaceIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPlaceID, v))
}

// PlaceIDNEQ applies the NEQ predicate on the "place_id" field.
func PlaceIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPlaceID, v))
}

// PlaceIDIn applies the In predicate on the "place_id" field.
func PlaceIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPlaceID, vs...))
}

// PlaceIDNotIn applies the NotIn predicate on the "place_id" field.
func PlaceIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPlaceID, vs...))
}

// PlaceIDGT applies the GT predicate on the "place_id" field.
func PlaceIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPlaceID, v))
}

// PlaceIDGTE applies the GTE predicate on the "place_id" field.
func PlaceIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPlaceID, v))
}

// PlaceIDLT applies the LT predicate on the "place_id" field.
func PlaceIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPlaceID, v))
}

// PlaceIDLTE applies the LTE predicate on the "place_id" field.
func PlaceIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPlaceID, v))
}

// PlaceIDContains applies the Contains predicate on the "place_id" field.
func PlaceIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPlaceID, v))
}

// PlaceIDHasPrefix applies the HasPrefix predicate on the "place_id" field.
func PlaceIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPlaceID, v))
}

// PlaceIDHasSuffix applies the HasSuffix predicate on the "place_id" field.
func PlaceIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPlaceID, v))
}

// PlaceIDIsNil applies the IsNil predicate on the "place_id" field.
func PlaceIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPlaceID))
}

// PlaceIDNotNil applies the NotNil predicate on the "place_id" field.
func PlaceIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPlaceID))
}

// PlaceIDEqualFold applies the EqualFold predicate on the "place_id" field.
func PlaceIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPlaceID, v))
}

// PlaceIDContainsFold applies the ContainsFold predicate on the "place_id" field.
func PlaceIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPlaceID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWebsites applies the HasEdge predicate on the "websites" edge.
func HasWebsites() predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WebsitesTable, WebsitesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWebsitesWith applies the HasEdge predicate on the "websites" edge with a given conditions (other predicates).
func HasWebsitesWith(preds ...predicate.Website) predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := newWebsitesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.NotPredicates(p))
}
