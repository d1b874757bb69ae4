package generator

import (
	"fmt"
	"strings"
)

// ToneBlock holds the copywriting register for one industry. Independent of
// the visual archetype: the same archetype pairs with different tone blocks
// across industries, and an industry keeps its tone regardless of which
// archetype the rotation assigned.
type ToneBlock struct {
	Register         string
	Emphasis         []string
	ForbiddenPhrases []string
}

// Directives renders the tone block as prompt-ready natural language,
// including the explicit forbidden-phrase list. Suppression of those phrases
// is instruction-only; generated prose is not re-scanned afterwards.
func (t ToneBlock) Directives() string {
	var b strings.Builder
	b.WriteString("Writing register: ")
	b.WriteString(t.Register)
	b.WriteString("\n")
	if len(t.Emphasis) > 0 {
		b.WriteString("Emphasize: ")
		b.WriteString(strings.Join(t.Emphasis, "; "))
		b.WriteString("\n")
	}
	if len(t.ForbiddenPhrases) > 0 {
		b.WriteString("Strictly forbidden phrases (never write these or close variants):\n")
		for _, p := range t.ForbiddenPhrases {
			fmt.Fprintf(&b, "- %q\n", p)
		}
	}
	return b.String()
}

// ToneFor returns the tone block for an industry key. Unknown keys get the
// general-business tone. Pure lookup, safe for concurrent use.
func ToneFor(industryKey string) ToneBlock {
	if t, ok := toneTable[industryKey]; ok {
		return t
	}
	return toneTable[IndustryGeneral]
}

var toneTable = map[string]ToneBlock{
	IndustryBeauty: {
		Register: "Sensory and personal. Short sentences that describe how a visit feels, " +
			"not which services exist. Address the reader directly and warmly.",
		Emphasis: []string{
			"the feeling of leaving the salon",
			"craft and training of the team",
			"easy, pressure-free booking",
		},
		ForbiddenPhrases: []string{
			"pamper yourself", "look and feel your best", "we care about you",
			"your wellbeing is our priority", "treat yourself",
		},
	},
	IndustryFood: {
		Register: "Appetizing and concrete. Name ingredients, dishes and smells instead of " +
			"praising quality in the abstract. Warm host's voice, first person plural.",
		Emphasis: []string{
			"signature dishes and where ingredients come from",
			"the room and the mood of an evening",
			"reservations and opening hours without friction",
		},
		ForbiddenPhrases: []string{
			"culinary journey", "taste explosion", "for every taste",
			"freshest ingredients", "hidden gem",
		},
	},
	IndustryTrades: {
		Register: "Plain, reliable, no-nonsense. Short declarative sentences. Facts, " +
			"certifications and response times instead of adjectives.",
		Emphasis: []string{
			"punctuality and clean worksites",
			"master-craftsman qualifications and guarantees",
			"transparent quoting before work begins",
		},
		ForbiddenPhrases: []string{
			"your satisfaction is our goal", "no job too small", "quality is our promise",
			"one-stop shop", "we go the extra mile",
		},
	},
	IndustryMedical: {
		Register: "Calm, clear, reassuring. Explain procedures in plain language. Never " +
			"promise outcomes; describe care and process.",
		Emphasis: []string{
			"what a first appointment looks like",
			"qualifications stated factually",
			"accessibility, insurance and scheduling",
		},
		ForbiddenPhrases: []string{
			"state of the art", "in the best hands", "holistic approach",
			"your health is our priority", "pain-free guarantee",
		},
	},
	IndustryFitness: {
		Register: "Energetic, direct, motivating without drill-sergeant clichés. Second " +
			"person, active verbs, concrete numbers.",
		Emphasis: []string{
			"first-visit experience for beginners",
			"trainers and community, not machines",
			"flexible memberships without fine print",
		},
		ForbiddenPhrases: []string{
			"no pain no gain", "unleash your potential", "push your limits",
			"beach body", "new year new you",
		},
	},
	IndustryAutomotive: {
		Register: "Competent and straight-talking. The tone of a foreman explaining exactly " +
			"what the car needs and what it costs.",
		Emphasis: []string{
			"transparent diagnosis and pricing",
			"turnaround times and courtesy options",
			"brand and model expertise",
		},
		ForbiddenPhrases: []string{
			"your car is in good hands", "service you can trust",
			"we treat your car like our own", "full service partner",
		},
	},
	IndustryLegal: {
		Register: "Precise, composed, confidence through clarity. Third person for the firm, " +
			"no drama, no fear appeals.",
		Emphasis: []string{
			"fields of specialization stated exactly",
			"how an initial consultation works and what it costs",
			"discretion and responsiveness",
		},
		ForbiddenPhrases: []string{
			"we fight for you", "in good hands", "years of combined experience",
			"tailored solutions", "your success is our success",
		},
	},
	IndustryRetail: {
		Register: "Curated and enthusiastic about product, like a shop owner showing a " +
			"favorite piece. Concrete brands, materials, origins.",
		Emphasis: []string{
			"what makes the selection personal",
			"advice in store, not just shelves",
			"location, hours, and how to find it",
		},
		ForbiddenPhrases: []string{
			"something for everyone", "great value for money", "shop till you drop",
			"wide range of products",
		},
	},
	IndustryHospitality: {
		Register: "Inviting and unhurried. Paint mornings, views and quiet details. Host's " +
			"voice, never travel-brochure superlatives.",
		Emphasis: []string{
			"the arrival experience and surroundings",
			"rooms and breakfast described concretely",
			"direct booking benefits",
		},
		ForbiddenPhrases: []string{
			"home away from home", "nestled in the heart of", "breathtaking views",
			"perfect for young and old", "unforgettable experience",
		},
	},
	IndustryTech: {
		Register: "Sharp and outcome-focused. Plain language over jargon; every claim tied " +
			"to a deliverable or a measurable result.",
		Emphasis: []string{
			"problems solved, with concrete project examples",
			"process and communication cadence",
			"maintenance and long-term support",
		},
		ForbiddenPhrases: []string{
			"cutting edge", "digital transformation", "innovative solutions",
			"synergy", "next level", "best in class",
		},
	},
	IndustryGeneral: {
		Register: "Friendly, competent and specific. Let facts carry the text; prefer one " +
			"concrete detail over three adjectives.",
		Emphasis: []string{
			"what the business actually does, stated in the first sentence",
			"who runs it and since when",
			"how to get in contact quickly",
		},
		ForbiddenPhrases: []string{
			"welcome to our website", "we are your partner", "look no further",
			"many years of experience", "committed to excellence",
		},
	},
}
