package generator

import (
	"encoding/json"
	"strings"

	"github.com/sitewerk/sitewerk/pkg/domain"
)

// Section is one content block of a generated site, tagged by a closed
// section-type vocabulary the rendering layer understands.
type Section struct {
	Type    string        `json:"type"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Items   []SectionItem `json:"items,omitempty"`
}

// SectionItem is a list entry inside a section (a service, menu dish,
// team member, FAQ pair).
type SectionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
}

// DesignTokens are the closed-vocabulary style parameters that parameterize
// rendering, independent of prose content. After sanitization every enum
// field is a member of its documented set, fonts are safe, color strings are
// usable, and SectionBackgrounds has at least two entries.
type DesignTokens struct {
	HeadlineFont       string   `json:"headlineFont"`
	BodyFont           string   `json:"bodyFont"`
	BorderRadius       string   `json:"borderRadius"`
	ShadowStyle        string   `json:"shadowStyle"`
	SectionSpacing     string   `json:"sectionSpacing"`
	ButtonStyle        string   `json:"buttonStyle"`
	AccentColor        string   `json:"accentColor"`
	TextColor          string   `json:"textColor"`
	BackgroundColor    string   `json:"backgroundColor"`
	CardBackground     string   `json:"cardBackground"`
	SectionBackgrounds []string `json:"sectionBackgrounds"`
}

// GeneratedWebsiteDraft is the validator's output contract: the only artifact
// the pipeline hands to persistence and rendering. Section content strings
// may be arbitrary text; everything in DesignTokens is guaranteed valid.
type GeneratedWebsiteDraft struct {
	BusinessName string       `json:"businessName"`
	Tagline      string       `json:"tagline"`
	Description  string       `json:"description"`
	Sections     []Section    `json:"sections"`
	DesignTokens DesignTokens `json:"designTokens"`
}

// Closed enum sets and their documented defaults.
var (
	borderRadiusValues   = map[string]bool{"none": true, "sm": true, "md": true, "lg": true, "full": true}
	shadowStyleValues    = map[string]bool{"none": true, "flat": true, "soft": true, "dramatic": true, "glow": true}
	sectionSpacingValues = map[string]bool{"tight": true, "normal": true, "spacious": true, "ultra": true}
	buttonStyleValues    = map[string]bool{"filled": true, "outline": true, "ghost": true, "pill": true}

	sectionTypeValues = map[string]bool{
		"hero": true, "about": true, "services": true, "testimonials": true,
		"gallery": true, "contact": true, "cta": true, "faq": true,
		"menu": true, "pricelist": true, "features": true, "team": true,
	}
)

const (
	defaultBorderRadius   = "md"
	defaultShadowStyle    = "soft"
	defaultSectionSpacing = "normal"
	defaultButtonStyle    = "filled"
	defaultHeadlineFont   = "Poppins"
	defaultBodyFont       = "Inter"
)

// sansSerifAllowList is the closed set of body fonts the rendering layer
// loads. Entries double as the canonical casing.
var sansSerifAllowList = []string{
	"Inter", "Poppins", "Montserrat", "Work Sans", "DM Sans", "Manrope",
	"Space Grotesk", "Plus Jakarta Sans", "Outfit", "Sora", "Nunito",
	"Lato", "Rubik", "Urbanist", "Quicksand", "Baloo 2", "Archivo", "Oswald",
}

// forbiddenSerifFragments are matched case-insensitively as substrings:
// a bodyFont containing any of them is forced to the sans-serif default,
// regardless of what the prompt asked for. Serif body text reads badly at
// the small sizes the layouts use.
var forbiddenSerifFragments = []string{
	"lora", "playfair", "georgia", "cormorant", "merriweather",
	"times", "baskerville", "crimson", "garamond", "fraunces", "bodoni",
}

// Sanitize turns a raw LLM response into a guaranteed-valid draft. Markdown
// code fences are stripped, the remainder must parse as JSON (anything else
// raises a malformed-generation error — there is no regex salvage of broken
// JSON), and every design token is repaired against its closed vocabulary
// with scheme-derived fallbacks for colors. Idempotent: sanitizing an
// already-sanitized draft changes nothing.
func Sanitize(raw string, scheme ColorScheme) (*GeneratedWebsiteDraft, error) {
	body := stripCodeFences(raw)
	if strings.TrimSpace(body) == "" {
		return nil, domain.NewMalformedGenerationError("model returned empty content")
	}

	var draft GeneratedWebsiteDraft
	if err := json.Unmarshal([]byte(body), &draft); err != nil {
		return nil, domain.NewMalformedGenerationError("model response is not valid JSON")
	}

	draft.Sections = sanitizeSections(draft.Sections)
	SanitizeTokens(&draft.DesignTokens, scheme)
	return &draft, nil
}

// SanitizeTokens repairs a token set in place. Exposed separately so
// onboarding patches run through the same clamping as fresh generations.
func SanitizeTokens(t *DesignTokens, scheme ColorScheme) {
	t.BorderRadius = clampEnum(t.BorderRadius, borderRadiusValues, defaultBorderRadius)
	t.ShadowStyle = clampEnum(t.ShadowStyle, shadowStyleValues, defaultShadowStyle)
	t.SectionSpacing = clampEnum(t.SectionSpacing, sectionSpacingValues, defaultSectionSpacing)
	t.ButtonStyle = clampEnum(t.ButtonStyle, buttonStyleValues, defaultButtonStyle)

	t.HeadlineFont = sanitizeHeadlineFont(t.HeadlineFont)
	t.BodyFont = sanitizeBodyFont(t.BodyFont)

	t.AccentColor = sanitizeColor(t.AccentColor, scheme.Accent)
	t.TextColor = sanitizeColor(t.TextColor, scheme.Text)
	t.BackgroundColor = sanitizeColor(t.BackgroundColor, scheme.Background)
	t.CardBackground = sanitizeColor(t.CardBackground, scheme.Surface)

	if len(t.SectionBackgrounds) < 2 {
		t.SectionBackgrounds = []string{scheme.Background, scheme.Surface, scheme.Background}
	}
}

func clampEnum(value string, allowed map[string]bool, fallback string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if allowed[v] {
		return v
	}
	return fallback
}

func sanitizeHeadlineFont(font string) string {
	font = strings.TrimSpace(font)
	// A literal bracket is a placeholder leaked from the prompt template.
	if font == "" || strings.ContainsAny(font, "[]") {
		return defaultHeadlineFont
	}
	return font
}

func sanitizeBodyFont(font string) string {
	font = strings.TrimSpace(font)
	if font == "" || strings.ContainsAny(font, "[]") {
		return defaultBodyFont
	}

	lower := strings.ToLower(font)
	for _, serif := range forbiddenSerifFragments {
		if strings.Contains(lower, serif) {
			return defaultBodyFont
		}
	}

	for _, allowed := range sansSerifAllowList {
		if strings.EqualFold(font, allowed) {
			return allowed
		}
	}
	return defaultBodyFont
}

func sanitizeColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, "[]") {
		return fallback
	}
	return value
}

// sanitizeSections drops blocks tagged with a type outside the closed set;
// the rendering layer has no component for them. Order is preserved.
func sanitizeSections(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		s.Type = strings.ToLower(strings.TrimSpace(s.Type))
		if !sectionTypeValues[s.Type] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// stripCodeFences removes a leading ```/```json line and a trailing ```
// line if present. Models in JSON mode still occasionally wrap output.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
