package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownIndustries(t *testing.T) {
	tests := []struct {
		name     string
		category string
		business string
		want     string
	}{
		{"cafe with accent", "café", "Café Lindenhof", IndustryFood},
		{"restaurant", "restaurant", "Trattoria Milano", IndustryFood},
		{"roofer", "", "Schmidt Dachdecker GmbH", IndustryTrades},
		{"electrician", "Elektriker", "Elektro Weber", IndustryTrades},
		{"hair salon", "Friseursalon", "Haarstudio Anke", IndustryBeauty},
		{"dentist", "", "Zahnarztpraxis Dr. Müller", IndustryMedical},
		{"gym", "Fitnessstudio", "PowerGym Mitte", IndustryFitness},
		{"garage", "KFZ-Werkstatt", "Auto Service Krüger", IndustryAutomotive},
		{"law firm", "", "Anwaltskanzlei Bergmann", IndustryLegal},
		{"florist", "Blumenladen", "Blumen Petersen", IndustryRetail},
		{"hotel", "", "Hotel Seeblick", IndustryHospitality},
		{"web agency", "Webdesign", "Pixelschmiede", IndustryTech},
		{"unmatched", "Sonstiges", "Mustermann und Söhne", IndustryGeneral},
		{"empty input", "", "", IndustryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.category, tt.business)
			assert.Equal(t, tt.want, got.Key)
			assert.NotEmpty(t, got.Pool, "every classification carries a layout pool")
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("café", "Café Lindenhof")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify("café", "Café Lindenhof"))
	}
}

// Rule order is part of the contract: when keywords from several industries
// appear in one name, the rule higher in the table wins.
func TestClassifyRuleOrderResolvesOverlaps(t *testing.T) {
	// "barber" (beauty) and "café" (food): the food rule sits above beauty.
	assert.Equal(t, IndustryFood, Classify("", "Barber Café").Key)

	// "spa" (beauty) and "hotel" (hospitality): beauty sits above hospitality.
	assert.Equal(t, IndustryBeauty, Classify("", "Spa Hotel Seeblick").Key)
}

func TestClassifyWithOverride(t *testing.T) {
	// Override short-circuits every rule, even a clear keyword match.
	got := ClassifyWithOverride("café", "Café Lindenhof", IndustryTech)
	assert.Equal(t, IndustryTech, got.Key)
	assert.Equal(t, PoolFor(IndustryTech), got.Pool)

	// Empty override behaves like plain classification.
	got = ClassifyWithOverride("café", "Café Lindenhof", "")
	assert.Equal(t, IndustryFood, got.Key)

	// An unknown override still yields a usable pool.
	got = ClassifyWithOverride("", "", "submarines")
	require.NotEmpty(t, got.Pool)
	assert.Equal(t, PoolFor(IndustryGeneral), got.Pool)
}

func TestEveryRuleKeyHasPoolAndTone(t *testing.T) {
	for _, rule := range industryRules {
		assert.NotEmpty(t, PoolFor(rule.key), "industry %s has no layout pool", rule.key)
		assert.NotEmpty(t, ToneFor(rule.key).Register, "industry %s has no tone block", rule.key)
	}
}
