package generator

import "sort"

// TemplateRef is one entry of the static visual reference library: a
// screenshot URL plus a style hint the prompt builder feeds to the model as
// visual grounding.
type TemplateRef struct {
	ID         string
	Name       string
	Categories []string
	ImageURL   string
	StyleHint  string
}

// fallbackCategory marks templates generic enough to ground any industry.
// Carrying it earns a +1 bonus on top of category-overlap scoring.
const fallbackCategory = "business"

// industryCategories maps an industry key to the template categories that
// count as a match for it.
var industryCategories = map[string][]string{
	IndustryBeauty:      {"beauty", "salon", "wellness"},
	IndustryFood:        {"restaurant", "cafe", "food"},
	IndustryTrades:      {"trades", "construction", "services"},
	IndustryMedical:     {"medical", "health", "wellness"},
	IndustryFitness:     {"fitness", "sport", "wellness"},
	IndustryAutomotive:  {"automotive", "workshop", "services"},
	IndustryLegal:       {"legal", "finance", "consulting"},
	IndustryRetail:      {"retail", "shop", "food"},
	IndustryHospitality: {"hotel", "travel", "restaurant"},
	IndustryTech:        {"tech", "agency", "consulting"},
	IndustryGeneral:     {"business", "consulting", "services"},
}

// SelectTemplateRefs returns up to n reference templates for the given
// classification inputs, ranked by keyword overlap: +2 per matching category
// tag, +1 for carrying the common fallback category. Ties keep library order.
// When fewer than n templates score above zero, generic business templates
// pad the result so the model always receives some visual grounding. Never
// returns duplicates, never exceeds n.
func SelectTemplateRefs(category, businessName string, n int) []TemplateRef {
	if n <= 0 {
		return nil
	}

	cls := Classify(category, businessName)
	wanted := industryCategories[cls.Key]

	type scored struct {
		ref   TemplateRef
		score int
	}
	ranked := make([]scored, 0, len(templateLibrary))
	for _, ref := range templateLibrary {
		s := 0
		for _, cat := range ref.Categories {
			for _, w := range wanted {
				if cat == w {
					s += 2
				}
			}
			if cat == fallbackCategory {
				s++
			}
		}
		ranked = append(ranked, scored{ref: ref, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]TemplateRef, 0, n)
	seen := make(map[string]bool, n)
	for _, r := range ranked {
		if r.score <= 0 {
			break
		}
		if seen[r.ref.ID] {
			continue
		}
		seen[r.ref.ID] = true
		out = append(out, r.ref)
		if len(out) == n {
			return out
		}
	}

	// Pad with generic templates at their fixed low score.
	for _, r := range ranked {
		if len(out) == n {
			break
		}
		if seen[r.ref.ID] {
			continue
		}
		if !hasCategory(r.ref, fallbackCategory) && !hasCategory(r.ref, "consulting") {
			continue
		}
		seen[r.ref.ID] = true
		out = append(out, r.ref)
	}
	return out
}

func hasCategory(ref TemplateRef, cat string) bool {
	for _, c := range ref.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// templateLibrary is the static reference catalog. Order matters: it is the
// tie-break for equal scores.
var templateLibrary = []TemplateRef{
	{
		ID:         "tpl-salon-luxe",
		Name:       "Salon Luxe",
		Categories: []string{"beauty", "salon", "wellness"},
		ImageURL:   "https://cdn.sitewerk.io/templates/salon-luxe.webp",
		StyleHint:  "full-height hero portrait, thin serif headline over muted rose, sticky booking bar",
	},
	{
		ID:         "tpl-spa-still",
		Name:       "Spa Still",
		Categories: []string{"wellness", "beauty", "health"},
		ImageURL:   "https://cdn.sitewerk.io/templates/spa-still.webp",
		StyleHint:  "pale gradient backdrop, floating treatment cards, generous line height",
	},
	{
		ID:         "tpl-trattoria",
		Name:       "Trattoria",
		Categories: []string{"restaurant", "food"},
		ImageURL:   "https://cdn.sitewerk.io/templates/trattoria.webp",
		StyleHint:  "dark hero with plated dish close-up, cream menu section with dotted price leaders",
	},
	{
		ID:         "tpl-corner-cafe",
		Name:       "Corner Café",
		Categories: []string{"cafe", "food", "retail"},
		ImageURL:   "https://cdn.sitewerk.io/templates/corner-cafe.webp",
		StyleHint:  "warm paper tones, polaroid gallery strip, handwritten-style accents",
	},
	{
		ID:         "tpl-masterhand",
		Name:       "Masterhand",
		Categories: []string{"trades", "construction", "services"},
		ImageURL:   "https://cdn.sitewerk.io/templates/masterhand.webp",
		StyleHint:  "split hero with jobsite photo, bold numbered service list, strong CTA banner",
	},
	{
		ID:         "tpl-blueprint",
		Name:       "Blueprint",
		Categories: []string{"construction", "trades", "business"},
		ImageURL:   "https://cdn.sitewerk.io/templates/blueprint.webp",
		StyleHint:  "navy grid background, white capability cards, certification badge row",
	},
	{
		ID:         "tpl-praxis-clear",
		Name:       "Praxis Clear",
		Categories: []string{"medical", "health"},
		ImageURL:   "https://cdn.sitewerk.io/templates/praxis-clear.webp",
		StyleHint:  "calm blue-gray hero, step-by-step appointment section, soft pill buttons",
	},
	{
		ID:         "tpl-pulse",
		Name:       "Pulse",
		Categories: []string{"fitness", "sport"},
		ImageURL:   "https://cdn.sitewerk.io/templates/pulse.webp",
		StyleHint:  "angled gradient hero, stat counter band, color-coded class cards",
	},
	{
		ID:         "tpl-garage-pro",
		Name:       "Garage Pro",
		Categories: []string{"automotive", "workshop", "services"},
		ImageURL:   "https://cdn.sitewerk.io/templates/garage-pro.webp",
		StyleHint:  "near-black hero with spotlight car shot, gold rules, uppercase condensed headings",
	},
	{
		ID:         "tpl-kanzlei",
		Name:       "Kanzlei",
		Categories: []string{"legal", "finance", "consulting"},
		ImageURL:   "https://cdn.sitewerk.io/templates/kanzlei.webp",
		StyleHint:  "symmetric serif hero, two-column practice areas, framed testimonial band",
	},
	{
		ID:         "tpl-storefront",
		Name:       "Storefront",
		Categories: []string{"retail", "shop"},
		ImageURL:   "https://cdn.sitewerk.io/templates/storefront.webp",
		StyleHint:  "product-first split hero, three-card highlights, wide map footer",
	},
	{
		ID:         "tpl-gasthaus",
		Name:       "Gasthaus",
		Categories: []string{"hotel", "travel", "restaurant"},
		ImageURL:   "https://cdn.sitewerk.io/templates/gasthaus.webp",
		StyleHint:  "full-bleed landscape hero, room cards with amenity icons, direct-booking banner",
	},
	{
		ID:         "tpl-studio-grid",
		Name:       "Studio Grid",
		Categories: []string{"tech", "agency"},
		ImageURL:   "https://cdn.sitewerk.io/templates/studio-grid.webp",
		StyleHint:  "left-aligned hero with dual CTA, project grid, monospace detail labels",
	},
	{
		ID:         "tpl-atelier",
		Name:       "Atelier",
		Categories: []string{"beauty", "retail", "business"},
		ImageURL:   "https://cdn.sitewerk.io/templates/atelier.webp",
		StyleHint:  "editorial two-column layout, oversized serif, gallery-like product imagery",
	},
	{
		ID:         "tpl-landmark",
		Name:       "Landmark",
		Categories: []string{"business", "consulting"},
		ImageURL:   "https://cdn.sitewerk.io/templates/landmark.webp",
		StyleHint:  "clean white hero with single accent color, trust logo strip, FAQ accordion",
	},
	{
		ID:         "tpl-foundry",
		Name:       "Foundry",
		Categories: []string{"business", "services", "consulting"},
		ImageURL:   "https://cdn.sitewerk.io/templates/foundry.webp",
		StyleHint:  "neutral grid, feature tiles with small icons, wide closing CTA",
	},
	{
		ID:         "tpl-meridian",
		Name:       "Meridian",
		Categories: []string{"consulting", "finance", "business"},
		ImageURL:   "https://cdn.sitewerk.io/templates/meridian.webp",
		StyleHint:  "deep blue hero with credential subline, three-pillar services, team roster",
	},
}
