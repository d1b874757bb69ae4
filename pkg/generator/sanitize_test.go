package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/pkg/domain"
)

var testScheme = ColorScheme{
	Primary:    "#7c2d12",
	Secondary:  "#44403c",
	Accent:     "#e85d04",
	Background: "#fefcf8",
	Surface:    "#fff7ed",
	Text:       "#1c1917",
}

func validDraftJSON() string {
	return `{
		"businessName": "Café Lindenhof",
		"tagline": "Kaffee mit Herz",
		"description": "Ein Café im Herzen der Stadt.",
		"sections": [
			{"type": "hero", "title": "Willkommen", "content": "..."},
			{"type": "menu", "title": "Karte", "content": "", "items": [
				{"title": "Cappuccino", "description": "mit Hafermilch", "price": "3,80 €"}
			]},
			{"type": "contact", "title": "Besuchen Sie uns", "content": "..."}
		],
		"designTokens": {
			"headlineFont": "Fraunces",
			"bodyFont": "Nunito",
			"borderRadius": "lg",
			"shadowStyle": "soft",
			"sectionSpacing": "spacious",
			"buttonStyle": "pill",
			"accentColor": "#e85d04",
			"textColor": "#1c1917",
			"backgroundColor": "#fefcf8",
			"cardBackground": "#fff7ed",
			"sectionBackgrounds": ["#fefcf8", "#fff7ed"]
		}
	}`
}

func TestSanitizeValidDraftPassesThrough(t *testing.T) {
	draft, err := Sanitize(validDraftJSON(), testScheme)
	require.NoError(t, err)
	assert.Equal(t, "Café Lindenhof", draft.BusinessName)
	assert.Len(t, draft.Sections, 3)
	assert.Equal(t, "lg", draft.DesignTokens.BorderRadius)
	assert.Equal(t, "Nunito", draft.DesignTokens.BodyFont)
	// Serif headline fonts are allowed; only body text is restricted.
	assert.Equal(t, "Fraunces", draft.DesignTokens.HeadlineFont)
}

func TestSanitizeStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validDraftJSON() + "\n```"
	draft, err := Sanitize(fenced, testScheme)
	require.NoError(t, err)
	assert.Equal(t, "Café Lindenhof", draft.BusinessName)

	bare := "```\n" + validDraftJSON() + "\n```"
	draft, err = Sanitize(bare, testScheme)
	require.NoError(t, err)
	assert.Equal(t, "Café Lindenhof", draft.BusinessName)
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"Sorry, I cannot help with that.",
		`{"businessName": "Café`,
		"```json\nnot even close\n```",
	} {
		draft, err := Sanitize(raw, testScheme)
		assert.Nil(t, draft)
		require.Error(t, err)
		assert.True(t, domain.IsMalformedGeneration(err), "raw %q should be malformed", raw)
	}
}

func TestSanitizeClampsEnumDrift(t *testing.T) {
	raw := `{
		"sections": [{"type": "hero", "title": "x", "content": "y"}],
		"designTokens": {
			"borderRadius": "gigantic",
			"shadowStyle": "",
			"sectionSpacing": "SPACIOUS",
			"buttonStyle": null,
			"sectionBackgrounds": ["#ffffff", "#fafafa"]
		}
	}`
	draft, err := Sanitize(raw, testScheme)
	require.NoError(t, err)

	tk := draft.DesignTokens
	assert.Equal(t, "md", tk.BorderRadius, "unknown value clamps to default")
	assert.Equal(t, "soft", tk.ShadowStyle, "empty value clamps to default")
	assert.Equal(t, "spacious", tk.SectionSpacing, "casing is normalized, value kept")
	assert.Equal(t, "filled", tk.ButtonStyle, "null clamps to default")
}

func TestSanitizeRepairsBodyFont(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lora", "Inter"},
		{"Playfair Display", "Inter"},
		{"PLAYFAIR DISPLAY", "Inter"},
		{"  georgia  ", "Inter"},
		{"Cormorant Garamond", "Inter"},
		{"Times New Roman", "Inter"},
		{"[BODY_FONT]", "Inter"},
		{"", "Inter"},
		{"Comic Sans MS", "Inter"},
		{"inter", "Inter"},
		{"work sans", "Work Sans"},
		{"Nunito", "Nunito"},
	}
	for _, tt := range tests {
		tokens := DesignTokens{BodyFont: tt.in, SectionBackgrounds: []string{"#fff", "#eee"}}
		SanitizeTokens(&tokens, testScheme)
		assert.Equal(t, tt.want, tokens.BodyFont, "bodyFont %q", tt.in)
	}
}

func TestSanitizeRepairsHeadlineFontPlaceholders(t *testing.T) {
	tokens := DesignTokens{HeadlineFont: "[HEADLINE_FONT]", SectionBackgrounds: []string{"#fff", "#eee"}}
	SanitizeTokens(&tokens, testScheme)
	assert.Equal(t, "Poppins", tokens.HeadlineFont)

	tokens = DesignTokens{HeadlineFont: "Playfair Display", SectionBackgrounds: []string{"#fff", "#eee"}}
	SanitizeTokens(&tokens, testScheme)
	assert.Equal(t, "Playfair Display", tokens.HeadlineFont)
}

func TestSanitizeReplacesColorPlaceholders(t *testing.T) {
	tokens := DesignTokens{
		AccentColor:        "[ACCENT_COLOR]",
		TextColor:          "",
		BackgroundColor:    "#ffffff",
		CardBackground:     "[CARD]",
		SectionBackgrounds: []string{"#ffffff", "#fafafa"},
	}
	SanitizeTokens(&tokens, testScheme)

	assert.Equal(t, testScheme.Accent, tokens.AccentColor)
	assert.Equal(t, testScheme.Text, tokens.TextColor)
	assert.Equal(t, "#ffffff", tokens.BackgroundColor, "real values are kept")
	assert.Equal(t, testScheme.Surface, tokens.CardBackground)
}

func TestSanitizeDerivesSectionBackgrounds(t *testing.T) {
	for _, backgrounds := range [][]string{nil, {}, {"#ffffff"}} {
		tokens := DesignTokens{SectionBackgrounds: backgrounds}
		SanitizeTokens(&tokens, testScheme)
		assert.Equal(t,
			[]string{testScheme.Background, testScheme.Surface, testScheme.Background},
			tokens.SectionBackgrounds)
	}
}

func TestSanitizeDropsUnknownSectionTypes(t *testing.T) {
	raw := `{
		"sections": [
			{"type": "hero", "title": "a", "content": "b"},
			{"type": "carousel3000", "title": "c", "content": "d"},
			{"type": "CONTACT", "title": "e", "content": "f"}
		],
		"designTokens": {"sectionBackgrounds": ["#fff", "#eee"]}
	}`
	draft, err := Sanitize(raw, testScheme)
	require.NoError(t, err)
	require.Len(t, draft.Sections, 2)
	assert.Equal(t, "hero", draft.Sections[0].Type)
	assert.Equal(t, "contact", draft.Sections[1].Type)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	messy := `{
		"businessName": "Café Lindenhof",
		"sections": [{"type": "Hero", "title": "x", "content": "y"}],
		"designTokens": {
			"headlineFont": "[FONT]",
			"bodyFont": "Playfair Display",
			"borderRadius": "huge",
			"accentColor": "[ACCENT]",
			"sectionBackgrounds": ["#fff"]
		}
	}`
	once, err := Sanitize(messy, testScheme)
	require.NoError(t, err)

	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice, err := Sanitize(string(onceJSON), testScheme)
	require.NoError(t, err)
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)

	assert.Equal(t, string(onceJSON), string(twiceJSON))
}
