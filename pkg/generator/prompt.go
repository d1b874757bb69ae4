package generator

import (
	"fmt"
	"strings"
)

// PromptInput is everything the prompt builder composes into one generation
// request. Pure data in, one string out — no hidden globals.
type PromptInput struct {
	Facts        BusinessFacts
	IndustryKey  string
	Tone         ToneBlock
	Archetype    DesignArchetype
	TemplateRefs []TemplateRef
	Colors       ColorScheme
	Language     string
	IsRegenerate bool
}

// SystemPrompt is the fixed system message for every generation call.
const SystemPrompt = `You are a senior brand copywriter and web designer producing complete
marketing websites for local businesses. You respond with a single JSON
object and nothing else: no markdown fences, no commentary, no keys beyond
the documented schema. Every string you write is final production copy.`

// BuildPrompt composes the user prompt and the reference image URLs for one
// generation. All inputs are embedded verbatim and clearly delimited; the
// output never contains bracketed placeholder tokens, because every slot is
// filled from the typed input before the string is assembled.
func BuildPrompt(in PromptInput) (string, []string) {
	lang := in.Language
	if lang == "" {
		lang = "German"
	}

	triadPrimary, triadBackground, triadAccent := in.Colors.Primary, in.Colors.Background, in.Colors.Accent
	if triadPrimary == "" {
		triadPrimary, triadBackground, triadAccent = in.Archetype.Colors.Primary, in.Archetype.Colors.Background, in.Archetype.Colors.Accent
	}

	var b strings.Builder

	b.WriteString("### BUSINESS FACTS\n")
	fmt.Fprintf(&b, "Name: %s\n", in.Facts.Name)
	if in.Facts.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", in.Facts.Category)
	}
	fmt.Fprintf(&b, "Industry: %s\n", in.IndustryKey)
	if in.Facts.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", in.Facts.Address)
	}
	if in.Facts.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", in.Facts.Phone)
	}
	if in.Facts.Rating != nil {
		fmt.Fprintf(&b, "Rating: %.1f out of 5 from %d reviews\n", *in.Facts.Rating, in.Facts.ReviewCount)
	}
	if len(in.Facts.OpeningHours) > 0 {
		b.WriteString("Opening hours:\n")
		for _, h := range in.Facts.OpeningHours {
			fmt.Fprintf(&b, "  %s\n", h)
		}
	}
	b.WriteString("Only use facts listed above. Invent nothing checkable: no prices, awards, founding years or staff names that were not provided.\n")

	b.WriteString("\n### DESIGN ARCHETYPE: " + in.Archetype.Name + "\n")
	fmt.Fprintf(&b, "Design twin: %s\n", in.Archetype.DesignTwin)
	fmt.Fprintf(&b, "Aesthetic: %s\n", in.Archetype.Aesthetic)
	fmt.Fprintf(&b, "Typography: headlines %s, body %s\n",
		in.Archetype.Typography.HeadlineFont, in.Archetype.Typography.BodyFont)
	if len(in.Archetype.LayoutPatterns) > 0 {
		fmt.Fprintf(&b, "Layout patterns: %s\n", strings.Join(in.Archetype.LayoutPatterns, "; "))
	}
	if len(in.Archetype.MicroInteractions) > 0 {
		fmt.Fprintf(&b, "Micro-interactions: %s\n", strings.Join(in.Archetype.MicroInteractions, "; "))
	}
	b.WriteString(in.Archetype.Instructions)
	b.WriteString("\n")

	b.WriteString("\n### COLOR HIERARCHY (60/30/10)\n")
	fmt.Fprintf(&b, "Dominant 60%%: %s (backgrounds and large surfaces)\n", triadBackground)
	fmt.Fprintf(&b, "Secondary 30%%: %s (headers, structural elements, footers)\n", triadPrimary)
	fmt.Fprintf(&b, "Accent 10%%: %s (buttons, highlights, links only)\n", triadAccent)
	b.WriteString("Never promote the accent color to whole sections.\n")

	b.WriteString("\n### TONE OF VOICE\n")
	b.WriteString(in.Tone.Directives())
	fmt.Fprintf(&b, "Write all copy in %s.\n", lang)

	if len(in.TemplateRefs) > 0 {
		b.WriteString("\n### VISUAL REFERENCES\n")
		b.WriteString("The attached reference screenshots show the visual register to aim for:\n")
		for _, ref := range in.TemplateRefs {
			fmt.Fprintf(&b, "- %s: %s\n", ref.Name, ref.StyleHint)
		}
	}

	if in.IsRegenerate {
		b.WriteString("\n### REGENERATION\n")
		b.WriteString("This business had a site generated before. Write a materially different " +
			"version: adopt a different storytelling angle, different section ordering where " +
			"sensible, and different phrasing throughout. Do not reuse taglines or headline " +
			"formulations a previous generation would plausibly have produced.\n")
	}

	b.WriteString("\n### OUTPUT FORMAT\n")
	b.WriteString(outputSchemaInstructions)

	urls := make([]string, 0, len(in.TemplateRefs))
	for _, ref := range in.TemplateRefs {
		urls = append(urls, ref.ImageURL)
	}
	return b.String(), urls
}

// outputSchemaInstructions documents the JSON contract with concrete example
// values. The sanitizer later enforces every constraint stated here, so a
// model that drifts from the enums is repaired rather than rejected.
const outputSchemaInstructions = `Respond with exactly one JSON object of this shape:

{
  "businessName": "Café Beispiel",
  "tagline": "one short memorable line, max 8 words",
  "description": "2-3 sentence summary used for meta description",
  "sections": [
    {
      "type": "hero",
      "title": "section headline",
      "content": "section body copy",
      "items": [
        {"title": "item name", "description": "item text", "price": "12,50 €"}
      ]
    }
  ],
  "designTokens": {
    "headlineFont": "Poppins",
    "bodyFont": "Inter",
    "borderRadius": "md",
    "shadowStyle": "soft",
    "sectionSpacing": "normal",
    "buttonStyle": "filled",
    "accentColor": "#e85d04",
    "textColor": "#1c1917",
    "backgroundColor": "#fefcf8",
    "cardBackground": "#fff7ed",
    "sectionBackgrounds": ["#fefcf8", "#fff7ed", "#fefcf8"]
  }
}

Field rules:
- sections: 5 to 8 entries. "type" must be one of: hero, about, services,
  testimonials, gallery, contact, cta, faq, menu, pricelist, features, team.
  Always start with a hero and end with a contact or cta section. "items" is
  optional and only used for list-like sections; "price" only where the
  industry genuinely publishes prices.
- borderRadius: one of none, sm, md, lg, full.
- shadowStyle: one of none, flat, soft, dramatic, glow.
- sectionSpacing: one of tight, normal, spacious, ultra.
- buttonStyle: one of filled, outline, ghost, pill.
- bodyFont: a widely available sans-serif such as Inter, Nunito, Work Sans or
  Manrope. Never a serif font for body text.
- headlineFont: may be a serif when the archetype calls for it.
- all color values: real CSS hex colors from the hierarchy above.
- sectionBackgrounds: at least two hex colors alternating section surfaces.`
