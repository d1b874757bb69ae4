// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/schema"
	"github.com/sitewerk/sitewerk/ent/subscription"
	"github.com/sitewerk/sitewerk/ent/user"
	"github.com/sitewerk/sitewerk/ent/website"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	prospectFields := schema.Prospect{}.Fields()
	_ = prospectFields
	// prospectDescName is the schema descriptor for name field.
	prospectDescName := prospectFields[0].Descriptor()
	// prospect.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prospect.NameValidator = prospectDescName.Validators[0].(func(string) error)
	// prospectDescIndustryKey is the schema descriptor for industry_key field.
	prospectDescIndustryKey := prospectFields[2].Descriptor()
	// prospect.DefaultIndustryKey holds the default value on creation for the industry_key field.
	prospect.DefaultIndustryKey = prospectDescIndustryKey.Default.(string)
	// prospectDescReviewCount is the schema descriptor for review_count field.
	prospectDescReviewCount := prospectFields[10].Descriptor()
	// prospect.DefaultReviewCount holds the default value on creation for the review_count field.
	prospect.DefaultReviewCount = prospectDescReviewCount.Default.(int)
	// prospect.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	prospect.ReviewCountValidator = prospectDescReviewCount.Validators[0].(func(int) error)
	// prospectDescScore is the schema descriptor for score field.
	prospectDescScore := prospectFields[13].Descriptor()
	// prospect.DefaultScore holds the default value on creation for the score field.
	prospect.DefaultScore = prospectDescScore.Default.(int)
	// prospect.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	prospect.ScoreValidator = func() func(int) error {
		validators := prospectDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prospectDescCreatedAt is the schema descriptor for created_at field.
	prospectDescCreatedAt := prospectFields[15].Descriptor()
	// prospect.DefaultCreatedAt holds the default value on creation for the created_at field.
	prospect.DefaultCreatedAt = prospectDescCreatedAt.Default.(func() time.Time)
	// prospectDescUpdatedAt is the schema descriptor for updated_at field.
	prospectDescUpdatedAt := prospectFields[16].Descriptor()
	// prospect.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prospect.DefaultUpdatedAt = prospectDescUpdatedAt.Default.(func() time.Time)
	// prospect.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prospect.UpdateDefaultUpdatedAt = prospectDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	subscriptionDescStripeSubscriptionID := subscriptionFields[0].Descriptor()
	// subscription.StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	subscription.StripeSubscriptionIDValidator = subscriptionDescStripeSubscriptionID.Validators[0].(func(string) error)
	// subscriptionDescStripeCustomerID is the schema descriptor for stripe_customer_id field.
	subscriptionDescStripeCustomerID := subscriptionFields[1].Descriptor()
	// subscription.StripeCustomerIDValidator is a validator for the "stripe_customer_id" field. It is called by the builders before save.
	subscription.StripeCustomerIDValidator = subscriptionDescStripeCustomerID.Validators[0].(func(string) error)
	// subscriptionDescPriceID is the schema descriptor for price_id field.
	subscriptionDescPriceID := subscriptionFields[2].Descriptor()
	// subscription.PriceIDValidator is a validator for the "price_id" field. It is called by the builders before save.
	subscription.PriceIDValidator = subscriptionDescPriceID.Validators[0].(func(string) error)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[6].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[7].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	websiteFields := schema.Website{}.Fields()
	_ = websiteFields
	// websiteDescSlug is the schema descriptor for slug field.
	websiteDescSlug := websiteFields[0].Descriptor()
	// website.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	website.SlugValidator = websiteDescSlug.Validators[0].(func(string) error)
	// websiteDescBusinessName is the schema descriptor for business_name field.
	websiteDescBusinessName := websiteFields[1].Descriptor()
	// website.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	website.BusinessNameValidator = websiteDescBusinessName.Validators[0].(func(string) error)
	// websiteDescIndustryKey is the schema descriptor for industry_key field.
	websiteDescIndustryKey := websiteFields[2].Descriptor()
	// website.DefaultIndustryKey holds the default value on creation for the industry_key field.
	website.DefaultIndustryKey = websiteDescIndustryKey.Default.(string)
	// websiteDescArchetypeID is the schema descriptor for archetype_id field.
	websiteDescArchetypeID := websiteFields[3].Descriptor()
	// website.ArchetypeIDValidator is a validator for the "archetype_id" field. It is called by the builders before save.
	website.ArchetypeIDValidator = websiteDescArchetypeID.Validators[0].(func(string) error)
	// websiteDescGenerationCount is the schema descriptor for generation_count field.
	websiteDescGenerationCount := websiteFields[14].Descriptor()
	// website.DefaultGenerationCount holds the default value on creation for the generation_count field.
	website.DefaultGenerationCount = websiteDescGenerationCount.Default.(int)
	// website.GenerationCountValidator is a validator for the "generation_count" field. It is called by the builders before save.
	website.GenerationCountValidator = websiteDescGenerationCount.Validators[0].(func(int) error)
	// websiteDescCreatedAt is the schema descriptor for created_at field.
	websiteDescCreatedAt := websiteFields[18].Descriptor()
	// website.DefaultCreatedAt holds the default value on creation for the created_at field.
	website.DefaultCreatedAt = websiteDescCreatedAt.Default.(func() time.Time)
	// websiteDescUpdatedAt is the schema descriptor for updated_at field.
	websiteDescUpdatedAt := websiteFields[19].Descriptor()
	// website.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	website.DefaultUpdatedAt = websiteDescUpdatedAt.Default.(func() time.Time)
	// website.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	website.UpdateDefaultUpdatedAt = websiteDescUpdatedAt.UpdateDefault.(func() time.Time)
}
