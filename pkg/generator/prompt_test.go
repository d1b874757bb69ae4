package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPromptInput() PromptInput {
	rating := 4.7
	return PromptInput{
		Facts: BusinessFacts{
			Name:         "Café Lindenhof",
			Category:     "café",
			Address:      "Lindenstraße 12, 10969 Berlin",
			Phone:        "+49 30 1234567",
			Rating:       &rating,
			ReviewCount:  183,
			OpeningHours: []string{"Mo-Fr 08:00-18:00", "Sa 09:00-16:00"},
		},
		IndustryKey:  IndustryFood,
		Tone:         ToneFor(IndustryFood),
		Archetype:    Archetype("warm"),
		TemplateRefs: SelectTemplateRefs("café", "Café Lindenhof", 3),
		Colors:       SchemeFor(IndustryFood, "Café Lindenhof"),
		Language:     "German",
	}
}

func TestBuildPromptEmbedsAllInputs(t *testing.T) {
	in := testPromptInput()
	prompt, urls := BuildPrompt(in)

	// Business facts appear verbatim.
	assert.Contains(t, prompt, "Café Lindenhof")
	assert.Contains(t, prompt, "Lindenstraße 12, 10969 Berlin")
	assert.Contains(t, prompt, "+49 30 1234567")
	assert.Contains(t, prompt, "4.7 out of 5 from 183 reviews")
	assert.Contains(t, prompt, "Mo-Fr 08:00-18:00")

	// Archetype identity and its full instruction block.
	assert.Contains(t, prompt, in.Archetype.Name)
	assert.Contains(t, prompt, in.Archetype.Instructions)

	// 60/30/10 hierarchy carries the selected scheme, not the archetype triad.
	assert.Contains(t, prompt, in.Colors.Background)
	assert.Contains(t, prompt, in.Colors.Primary)
	assert.Contains(t, prompt, in.Colors.Accent)

	// Tone directives including forbidden phrases.
	assert.Contains(t, prompt, in.Tone.Register)
	require.NotEmpty(t, in.Tone.ForbiddenPhrases)
	assert.Contains(t, prompt, in.Tone.ForbiddenPhrases[0])

	assert.Contains(t, prompt, "Write all copy in German.")

	// Reference URLs come back in template order for the multimodal call.
	require.Len(t, urls, len(in.TemplateRefs))
	for i, ref := range in.TemplateRefs {
		assert.Equal(t, ref.ImageURL, urls[i])
		assert.Contains(t, prompt, ref.StyleHint)
	}
}

// Placeholder tokens like [BUSINESS_NAME] leaking into prompts were a real
// failure mode: the model echoes them back into the copy. Every slot must be
// resolved before assembly.
func TestBuildPromptHasNoUnresolvedPlaceholders(t *testing.T) {
	prompt, _ := BuildPrompt(testPromptInput())
	for _, token := range []string{
		"[BUSINESS_NAME]", "[INDUSTRY]", "[PRIMARY_COLOR]", "[ACCENT_COLOR]",
		"[TONE]", "[ARCHETYPE]", "%s", "%d", "{{",
	} {
		assert.NotContains(t, prompt, token)
	}
}

func TestBuildPromptRegenerateDirective(t *testing.T) {
	in := testPromptInput()

	fresh, _ := BuildPrompt(in)
	assert.NotContains(t, fresh, "REGENERATION")

	in.IsRegenerate = true
	regen, _ := BuildPrompt(in)
	assert.Contains(t, regen, "REGENERATION")
	assert.Contains(t, regen, "materially different")
}

func TestBuildPromptOmitsMissingFacts(t *testing.T) {
	in := PromptInput{
		Facts:       BusinessFacts{Name: "Pixelschmiede"},
		IndustryKey: IndustryTech,
		Tone:        ToneFor(IndustryTech),
		Archetype:   Archetype("modern"),
	}
	prompt, urls := BuildPrompt(in)

	assert.NotContains(t, prompt, "Rating:")
	assert.NotContains(t, prompt, "Opening hours:")
	assert.NotContains(t, prompt, "Address:")
	assert.Empty(t, urls)

	// No curated scheme: the archetype triad fills the color hierarchy.
	assert.Contains(t, prompt, in.Archetype.Colors.Primary)
	// Language defaults to German.
	assert.Contains(t, prompt, "Write all copy in German.")
}

func TestBuildPromptSectionOrder(t *testing.T) {
	prompt, _ := BuildPrompt(testPromptInput())

	order := []string{
		"### BUSINESS FACTS",
		"### DESIGN ARCHETYPE",
		"### COLOR HIERARCHY",
		"### TONE OF VOICE",
		"### VISUAL REFERENCES",
		"### OUTPUT FORMAT",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(prompt, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %s", marker)
		assert.Greater(t, idx, last, "section %s out of order", marker)
		last = idx
	}
}
