package generator

// ColorTriad is the 60/30/10 color hierarchy an archetype ships with:
// Background carries roughly 60% of the page, Primary 30%, Accent 10%.
type ColorTriad struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
}

// TypographyPair names the headline and body font of an archetype. Headline
// fonts may be serifs; body fonts are always from the sans-serif allow-list.
type TypographyPair struct {
	HeadlineFont string `json:"headline_font"`
	BodyFont     string `json:"body_font"`
}

// DesignArchetype is a fully specified visual/tonal design personality. The
// Instructions block is consumed verbatim by the prompt builder.
type DesignArchetype struct {
	ID                string
	Name              string
	DesignTwin        string
	Aesthetic         string
	Colors            ColorTriad
	Typography        TypographyPair
	LayoutPatterns    []string
	MicroInteractions []string
	Instructions      string
}

// DefaultArchetypeID is returned by Archetype for ids the registry does not
// know. Ids are internal and controlled, but the registry never errors.
const DefaultArchetypeID = "modern"

// Archetype looks up an archetype by id, falling back to the default record
// for unknown ids. Never returns a zero value.
func Archetype(id string) DesignArchetype {
	if a, ok := archetypeRegistry[id]; ok {
		return a
	}
	return archetypeRegistry[DefaultArchetypeID]
}

// AllArchetypes returns every registered archetype in a stable order.
func AllArchetypes() []DesignArchetype {
	out := make([]DesignArchetype, 0, len(archetypeOrder))
	for _, id := range archetypeOrder {
		out = append(out, archetypeRegistry[id])
	}
	return out
}

var archetypeOrder = []string{
	"elegant", "bold", "warm", "fresh", "modern", "classic",
	"craft", "serene", "vibrant", "corporate", "noir", "playful",
}

var archetypeRegistry = map[string]DesignArchetype{
	"elegant": {
		ID:         "elegant",
		Name:       "Luxury Minimalist",
		DesignTwin: "Aesop, Celine — hushed flagship-store restraint",
		Aesthetic:  "Generous whitespace, thin rules, muted champagne accents, nothing shouts",
		Colors:     ColorTriad{Primary: "#1c1917", Background: "#faf9f7", Accent: "#b08d57"},
		Typography: TypographyPair{HeadlineFont: "Cormorant Garamond", BodyFont: "Inter"},
		LayoutPatterns: []string{
			"asymmetric hero with offset image", "editorial two-column about",
			"single-column services with hairline dividers",
		},
		MicroInteractions: []string{"slow fade-ins", "underline grow on hover"},
		Instructions: `Design direction: quiet luxury. Use oversized serif headlines with tight
tracking against wide empty margins. Photography is treated like gallery art:
one large image per section, never collages. Buttons are understated text
links or thin-bordered rectangles. Copy is short, assured, and never uses
exclamation marks. Avoid gradients, drop shadows and rounded cards; hierarchy
comes from scale and spacing alone.`,
	},
	"bold": {
		ID:         "bold",
		Name:       "Bold Experimentalist",
		DesignTwin: "Off-White, Gumroad rebrand — loud type as the design",
		Aesthetic:  "Massive display type, hard color blocks, brutalist grid breaks",
		Colors:     ColorTriad{Primary: "#111111", Background: "#f5f5f0", Accent: "#ff4d00"},
		Typography: TypographyPair{HeadlineFont: "Space Grotesk", BodyFont: "Work Sans"},
		LayoutPatterns: []string{
			"full-bleed typographic hero", "diagonal section cuts",
			"oversized numbered service list",
		},
		MicroInteractions: []string{"marquee strips", "hover color inversion"},
		Instructions: `Design direction: confident and loud. Headlines take 60 to 70 percent of
the viewport and may break the grid. Use a single aggressive accent color for
emphasis bars, never for whole sections. Body copy stays small and utilitarian
as contrast to the display type. Buttons are rectangular, high-contrast,
uppercase. The overall impression is a studio that is not afraid of anything.`,
	},
	"warm": {
		ID:         "warm",
		Name:       "Warm Storyteller",
		DesignTwin: "Kinfolk magazine, neighborhood café branding",
		Aesthetic:  "Cream paper tones, hand-feel textures, rounded friendliness",
		Colors:     ColorTriad{Primary: "#7c2d12", Background: "#fefcf8", Accent: "#e85d04"},
		Typography: TypographyPair{HeadlineFont: "Fraunces", BodyFont: "Nunito"},
		LayoutPatterns: []string{
			"centered hero with welcome line", "alternating image-text story rows",
			"polaroid-style gallery",
		},
		MicroInteractions: []string{"gentle scale on image hover", "soft scroll reveals"},
		Instructions: `Design direction: like being welcomed by name. Warm off-white backgrounds,
terracotta and burnt-orange accents, soft large radii on cards and images.
Copy is written in first person plural and tells the story of the people
behind the business. Sections flow into each other with generous but cozy
spacing. Avoid corporate vocabulary entirely; prefer sensory, concrete words.`,
	},
	"fresh": {
		ID:         "fresh",
		Name:       "Fresh Organic",
		DesignTwin: "Everlane, a modern farm shop",
		Aesthetic:  "Airy greens and naturals, honest photography, clean lines",
		Colors:     ColorTriad{Primary: "#14532d", Background: "#f7faf7", Accent: "#84cc16"},
		Typography: TypographyPair{HeadlineFont: "DM Sans", BodyFont: "DM Sans"},
		LayoutPatterns: []string{
			"split hero with product photo", "three-card benefits grid",
			"full-width banded CTA",
		},
		MicroInteractions: []string{"soft lift on cards", "smooth anchor scrolling"},
		Instructions: `Design direction: natural, light, trustworthy. Whites with a faint green
cast, desaturated photography, thin iconography. One typeface family
throughout with weight doing the hierarchy work. Sections are short and
scannable; sustainability or quality claims are stated plainly, never
inflated. Buttons are softly rounded and calm.`,
	},
	"modern": {
		ID:         "modern",
		Name:       "Modern Professional",
		DesignTwin: "Linear, Stripe marketing pages",
		Aesthetic:  "Crisp neutral grid, precise spacing, restrained single accent",
		Colors:     ColorTriad{Primary: "#0f172a", Background: "#ffffff", Accent: "#2563eb"},
		Typography: TypographyPair{HeadlineFont: "Inter", BodyFont: "Inter"},
		LayoutPatterns: []string{
			"left-aligned hero with subhead and dual CTA", "logo/trust strip",
			"feature grid with small icons",
		},
		MicroInteractions: []string{"subtle shadow on hover", "fade-up section entrances"},
		Instructions: `Design direction: the dependable default. Tight 12-column rhythm, near-black
text on white, one blue accent used sparingly for actions and highlights.
Headlines are declarative sentences, not slogans. Cards use hairline borders
and soft shadows. Everything aligns; nothing decorative exists without a
function. This archetype must look correct in any industry.`,
	},
	"classic": {
		ID:         "classic",
		Name:       "Timeless Classic",
		DesignTwin: "Traditional hotel and law-office stationery, done digitally",
		Aesthetic:  "Deep navy, serif dignity, symmetric composition",
		Colors:     ColorTriad{Primary: "#1e3a5f", Background: "#fdfdfb", Accent: "#9a7b4f"},
		Typography: TypographyPair{HeadlineFont: "Playfair Display", BodyFont: "Lato"},
		LayoutPatterns: []string{
			"centered hero with crest-like monogram", "two-column heritage text",
			"framed testimonial band",
		},
		MicroInteractions: []string{"none beyond gentle fades"},
		Instructions: `Design direction: established and proud of it. Symmetry everywhere, serif
headlines with classical proportions, a thin gold rule as the only ornament.
Reference the founding year or tradition where facts allow. Copy is formal
but never stiff — the tone of a firm handshake. No trends, no gradients,
no playful icons.`,
	},
	"craft": {
		ID:         "craft",
		Name:       "Artisan Craft",
		DesignTwin: "Independent roastery and butcher-shop branding",
		Aesthetic:  "Ink stamps, kraft textures, sturdy slab accents",
		Colors:     ColorTriad{Primary: "#3f2d20", Background: "#f8f4ec", Accent: "#b45309"},
		Typography: TypographyPair{HeadlineFont: "Archivo Black", BodyFont: "Rubik"},
		LayoutPatterns: []string{
			"badge-style hero lockup", "process timeline",
			"menu/pricelist with dotted leaders",
		},
		MicroInteractions: []string{"stamp-like hover states"},
		Instructions: `Design direction: made by hand, priced honestly. Heavy condensed headlines
like crate stencils, warm paper background, occasional rough divider lines.
Show the process: sourcing, making, finishing. Price lists are unapologetic
and exact. Copy is proud, specific about materials and methods, and avoids
any marketing gloss.`,
	},
	"serene": {
		ID:         "serene",
		Name:       "Serene Calm",
		DesignTwin: "High-end spa and private clinic brochures",
		Aesthetic:  "Powder tones, soft gradients, weightless spacing",
		Colors:     ColorTriad{Primary: "#334155", Background: "#f8fafc", Accent: "#7dd3fc"},
		Typography: TypographyPair{HeadlineFont: "Cormorant", BodyFont: "Manrope"},
		LayoutPatterns: []string{
			"full-width calm hero with single line", "floating treatment cards",
			"step-by-step what-to-expect section",
		},
		MicroInteractions: []string{"slow parallax", "breathing fade cycles"},
		Instructions: `Design direction: lower the visitor's pulse. Pale blue-grays, enormous line
height, short reassuring sentences. Imagery is soft-focus and human. Medical
or treatment information is structured into small digestible steps with calm
labels. Never use urgency, countdowns or bright warning colors. Buttons are
quiet, pill-shaped, low contrast but clearly legible.`,
	},
	"vibrant": {
		ID:         "vibrant",
		Name:       "Vibrant Energetic",
		DesignTwin: "Boutique fitness and smoothie-bar chains",
		Aesthetic:  "Saturated gradients, dynamic angles, motion everywhere",
		Colors:     ColorTriad{Primary: "#581c87", Background: "#ffffff", Accent: "#ec4899"},
		Typography: TypographyPair{HeadlineFont: "Poppins", BodyFont: "Poppins"},
		LayoutPatterns: []string{
			"angled gradient hero", "stat counters band",
			"class/offer cards with color coding",
		},
		MicroInteractions: []string{"count-up numbers", "energetic hover pops"},
		Instructions: `Design direction: momentum. Strong gradient from primary into accent in the
hero, tilted section separators, big rounded buttons that ask to be pressed.
Copy is short, imperative and positive. Use numbers wherever facts provide
them (members, classes, years). Everything communicates energy without
falling into chaos — maximum two display colors plus neutrals.`,
	},
	"corporate": {
		ID:         "corporate",
		Name:       "Corporate Trust",
		DesignTwin: "Regional bank and insurance group sites",
		Aesthetic:  "Structured blues and grays, certification badges, grid discipline",
		Colors:     ColorTriad{Primary: "#1e40af", Background: "#f8fafc", Accent: "#0ea5e9"},
		Typography: TypographyPair{HeadlineFont: "Plus Jakarta Sans", BodyFont: "Plus Jakarta Sans"},
		LayoutPatterns: []string{
			"hero with credential subline", "three-pillar services grid",
			"team section with roles", "FAQ accordion",
		},
		MicroInteractions: []string{"conservative fades only"},
		Instructions: `Design direction: zero surprises, maximum credibility. Blue-led palette,
clear section headings, bulleted capabilities, visible certifications and
memberships where facts allow. Team members appear with full names and
roles. Copy is precise, third person, verifiable — no superlatives without
a number behind them. Layout is strictly rectangular.`,
	},
	"noir": {
		ID:         "noir",
		Name:       "Dark Noir",
		DesignTwin: "Barbershop and tattoo-studio identities after dark",
		Aesthetic:  "Near-black canvas, metallic accents, dramatic photo lighting",
		Colors:     ColorTriad{Primary: "#e5e5e5", Background: "#0c0a09", Accent: "#d4af37"},
		Typography: TypographyPair{HeadlineFont: "Oswald", BodyFont: "Inter"},
		LayoutPatterns: []string{
			"dark full-screen hero with spotlight image", "gold-ruled service list",
			"moody gallery grid",
		},
		MicroInteractions: []string{"glow on hover", "slow ken-burns on hero"},
		Instructions: `Design direction: a room with dimmed lights. Backgrounds stay near black,
text is warm off-white, gold is used like jewelry — rarely and deliberately.
Photography is high contrast with deep shadows. Condensed uppercase
headlines, wide letter spacing. Copy is confident and a little raw; this
archetype may use shorter sentence fragments for effect.`,
	},
	"playful": {
		ID:         "playful",
		Name:       "Playful Pop",
		DesignTwin: "Ice-cream brands and kids-studio sites that adults still respect",
		Aesthetic:  "Candy accents, blob shapes, bouncy rhythm",
		Colors:     ColorTriad{Primary: "#0e7490", Background: "#fffbf5", Accent: "#f59e0b"},
		Typography: TypographyPair{HeadlineFont: "Baloo 2", BodyFont: "Quicksand"},
		LayoutPatterns: []string{
			"hero with blob-masked image", "wavy section separators",
			"sticker-style feature badges",
		},
		MicroInteractions: []string{"bounce on hover", "wobble on CTA"},
		Instructions: `Design direction: a smile without losing trust. Rounded everything, two
candy accents over a cream base, hand-drawn-feeling separators. Copy is
light, uses direct address and small jokes where the industry allows, but
prices, hours and contact data remain crisp and businesslike. Never sacrifice
readability for charm.`,
	},
}
