package generator

import (
	"context"

	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

// defaultTemplateRefs is how many visual references ground each generation.
const defaultTemplateRefs = 3

// Service runs the full generation pipeline in strict dependency order:
// classify, select assets, assign archetype, look up tone, rank references,
// build the prompt, invoke the model, sanitize. Only the archetype
// assignment and the model call suspend; everything else is pure.
type Service struct {
	llm      domain.ChatCompleter
	assigner *Assigner
	log      logger.Logger
	language string
}

// Options tune a single generation call.
type Options struct {
	// IndustryOverride pins the industry key, skipping classification rules.
	IndustryOverride string
	// Seed replaces the business name as selection seed. Regeneration passes
	// a varied seed so images, colors and references land differently; with
	// an empty Seed every call for the same business selects identically.
	Seed string
	// Regenerate asks the model for a materially different storytelling
	// angle on top of the varied selection seed.
	Regenerate bool
}

// NewService creates the generation pipeline service.
func NewService(llm domain.ChatCompleter, assigner *Assigner, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{llm: llm, assigner: assigner, log: log, language: "German"}
}

// SetLanguage overrides the copy language (default German).
func (s *Service) SetLanguage(lang string) {
	if lang != "" {
		s.language = lang
	}
}

// Generate produces a validated website draft for one business. On success
// the returned draft satisfies every design-token invariant; on failure
// (transport or malformed model output) the typed error propagates unchanged
// and nothing partial is returned.
func (s *Service) Generate(ctx context.Context, facts BusinessFacts, opts Options) (*GeneratedWebsiteDraft, Selection, error) {
	seed := opts.Seed
	if seed == "" {
		seed = facts.Name
	}

	cls := ClassifyWithOverride(facts.Category, facts.Name, opts.IndustryOverride)
	scheme := SchemeFor(cls.Key, seed)
	images := ImagesFor(cls.Key, seed)
	archetype := Archetype(s.assigner.NextArchetype(ctx, cls.Key, seed))
	tone := ToneFor(cls.Key)
	refs := SelectTemplateRefs(facts.Category, facts.Name, defaultTemplateRefs)

	prompt, imageURLs := BuildPrompt(PromptInput{
		Facts:        facts,
		IndustryKey:  cls.Key,
		Tone:         tone,
		Archetype:    archetype,
		TemplateRefs: refs,
		Colors:       scheme,
		Language:     s.language,
		IsRegenerate: opts.Regenerate,
	})

	s.log.Info("invoking generation",
		"business", facts.Name,
		"industry", cls.Key,
		"archetype", archetype.ID,
		"regenerate", opts.Regenerate)

	raw, err := s.llm.CompleteJSON(ctx, SystemPrompt, prompt, imageURLs)
	if err != nil {
		return nil, Selection{}, err
	}

	draft, err := Sanitize(raw, scheme)
	if err != nil {
		return nil, Selection{}, err
	}

	if draft.BusinessName == "" {
		draft.BusinessName = facts.Name
	}

	sel := Selection{
		IndustryKey: cls.Key,
		ArchetypeID: archetype.ID,
		HeroImage:   images.Hero,
		Gallery:     images.Gallery,
		Colors:      scheme,
	}
	return draft, sel, nil
}
