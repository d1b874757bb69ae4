package websites

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/website"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/generator"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

// Status values of the website lifecycle.
type Status string

const (
	StatusPreview  Status = "preview"
	StatusSold     Status = "sold"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// allowedTransitions is the one-directional lifecycle: preview -> sold ->
// active -> inactive, plus preview -> inactive for expired unsold previews.
// A status never moves backwards; there is no path out of inactive.
var allowedTransitions = map[Status][]Status{
	StatusPreview: {StatusSold, StatusInactive},
	StatusSold:    {StatusActive},
	StatusActive:  {StatusInactive},
}

// previewTTL is how long an unsold preview stays reachable.
const previewTTL = 30 * 24 * time.Hour

// Service handles website lifecycle operations.
type Service struct {
	client    *ent.Client
	generator *generator.Service
	mailer    domain.EmailService
	log       logger.Logger
}

// NewService creates a new websites service. The mailer may be nil; lifecycle
// notifications are then skipped.
func NewService(client *ent.Client, gen *generator.Service, mailer domain.EmailService, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{client: client, generator: gen, mailer: mailer, log: log}
}

// CreatePreviewRequest describes one preview generation.
type CreatePreviewRequest struct {
	ProspectID       int    `json:"prospect_id" validate:"required"`
	IndustryOverride string `json:"industry_override,omitempty"`
}

// WebsiteResponse is the API shape of a website.
type WebsiteResponse struct {
	ID               int                      `json:"id"`
	Slug             string                   `json:"slug"`
	BusinessName     string                   `json:"business_name"`
	IndustryKey      string                   `json:"industry_key"`
	ArchetypeID      string                   `json:"archetype_id"`
	Status           string                   `json:"status"`
	OnboardingStatus string                   `json:"onboarding_status"`
	Tagline          string                   `json:"tagline"`
	Description      string                   `json:"description"`
	Sections         []map[string]interface{} `json:"sections"`
	DesignTokens     map[string]interface{}   `json:"design_tokens"`
	ColorScheme      map[string]string        `json:"color_scheme"`
	HeroImage        string                   `json:"hero_image"`
	Gallery          []string                 `json:"gallery"`
	GenerationCount  int                      `json:"generation_count"`
	ExpiresAt        *time.Time               `json:"expires_at,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
}

// CreatePreview generates a website for a prospect and stores it as a
// preview. A prospect with a preview or sold site already in place is a
// conflict: regeneration goes through Regenerate, not a second create.
func (s *Service) CreatePreview(ctx context.Context, req CreatePreviewRequest) (*WebsiteResponse, error) {
	p, err := s.client.Prospect.Get(ctx, req.ProspectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("prospect")
		}
		return nil, fmt.Errorf("failed to fetch prospect: %w", err)
	}

	existing, err := p.QueryWebsites().
		Where(website.StatusNEQ(website.StatusInactive)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing websites: %w", err)
	}
	if existing > 0 {
		return nil, domain.NewConflictError("prospect already has a website")
	}

	facts := factsFromProspect(p)
	draft, sel, err := s.generator.Generate(ctx, facts, generator.Options{
		IndustryOverride: req.IndustryOverride,
	})
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, p.Name)
	if err != nil {
		return nil, err
	}

	sections, tokens, scheme, err := encodeDraft(draft, sel)
	if err != nil {
		return nil, err
	}

	expires := time.Now().Add(previewTTL)
	w, err := s.client.Website.
		Create().
		SetSlug(slug).
		SetBusinessName(draft.BusinessName).
		SetIndustryKey(sel.IndustryKey).
		SetArchetypeID(sel.ArchetypeID).
		SetTagline(draft.Tagline).
		SetDescription(draft.Description).
		SetSections(sections).
		SetDesignTokens(tokens).
		SetColorScheme(scheme).
		SetHeroImage(sel.HeroImage).
		SetGallery(sel.Gallery).
		SetExpiresAt(expires).
		SetProspect(p).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create website: %w", err)
	}

	if err := p.Update().SetStatus("generated").SetIndustryKey(sel.IndustryKey).Exec(ctx); err != nil {
		s.log.Warn("failed to advance prospect status", "prospect_id", p.ID, "error", err)
	}

	if s.mailer != nil && p.Email != "" {
		go func() {
			if err := s.mailer.SendPreviewOutreach(p.Email, p.Name, slug); err != nil {
				s.log.Warn("failed to send preview outreach", "prospect_id", p.ID, "error", err)
			}
		}()
	}

	s.log.Info("preview created",
		"website_id", w.ID, "slug", slug, "industry", sel.IndustryKey, "archetype", sel.ArchetypeID)
	return toResponse(w), nil
}

// Regenerate replaces the content of an existing website with a freshly
// generated version. All-or-nothing: a failed generation leaves the stored
// site untouched. Allowed in any status except inactive; onboarding data and
// lifecycle fields survive the swap.
func (s *Service) Regenerate(ctx context.Context, websiteID int) (*WebsiteResponse, error) {
	w, err := s.getWithProspect(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if w.Status == website.StatusInactive {
		return nil, domain.NewInvalidStateChangeError(string(w.Status), "regenerate")
	}

	p, err := w.QueryProspect().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prospect: %w", err)
	}

	// The varied seed moves images, colors and references away from what the
	// previous generation selected.
	seed := fmt.Sprintf("%s#%d", p.Name, w.GenerationCount+1)
	draft, sel, err := s.generator.Generate(ctx, factsFromProspect(p), generator.Options{
		Seed:       seed,
		Regenerate: true,
	})
	if err != nil {
		return nil, err
	}

	sections, tokens, scheme, err := encodeDraft(draft, sel)
	if err != nil {
		return nil, err
	}

	updated, err := w.Update().
		SetBusinessName(draft.BusinessName).
		SetIndustryKey(sel.IndustryKey).
		SetArchetypeID(sel.ArchetypeID).
		SetTagline(draft.Tagline).
		SetDescription(draft.Description).
		SetSections(sections).
		SetDesignTokens(tokens).
		SetColorScheme(scheme).
		SetHeroImage(sel.HeroImage).
		SetGallery(sel.Gallery).
		AddGenerationCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store regenerated content: %w", err)
	}

	s.log.Info("website regenerated",
		"website_id", w.ID, "generation", updated.GenerationCount, "archetype", sel.ArchetypeID)
	return toResponse(updated), nil
}

// GetBySlug returns the website served under a slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*WebsiteResponse, error) {
	w, err := s.client.Website.
		Query().
		Where(website.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("website")
		}
		return nil, fmt.Errorf("failed to fetch website: %w", err)
	}
	return toResponse(w), nil
}

// List returns websites filtered by status, newest first.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*WebsiteResponse, int, error) {
	q := s.client.Website.Query()
	if status != "" {
		q = q.Where(website.StatusEQ(website.Status(status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count websites: %w", err)
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := q.
		Order(ent.Desc(website.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list websites: %w", err)
	}

	out := make([]*WebsiteResponse, 0, len(rows))
	for _, w := range rows {
		out = append(out, toResponse(w))
	}
	return out, total, nil
}

// MarkSold moves a preview to sold, attaches the purchasing user and opens
// onboarding. Driven by the billing webhook after checkout completes.
func (s *Service) MarkSold(ctx context.Context, websiteID, userID int) (*WebsiteResponse, error) {
	w, err := s.getWithProspect(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(Status(w.Status), StatusSold); err != nil {
		return nil, err
	}

	updated, err := w.Update().
		SetStatus(website.StatusSold).
		SetOnboardingStatus(website.OnboardingStatusInProgress).
		SetSoldAt(time.Now()).
		ClearExpiresAt().
		SetOwnerID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark website sold: %w", err)
	}

	if s.mailer != nil {
		if u, uerr := s.client.User.Get(ctx, userID); uerr == nil {
			go func() {
				if err := s.mailer.SendOnboardingInvite(u.Email, u.Name, updated.BusinessName, updated.Slug); err != nil {
					s.log.Warn("failed to send onboarding invite", "website_id", updated.ID, "error", err)
				}
			}()
		}
	}

	s.log.Info("website sold", "website_id", w.ID, "user_id", userID)
	return toResponse(updated), nil
}

// UpdateOnboarding merges customer-supplied onboarding data into the stored
// document. Patch semantics: keys present in the patch replace stored keys,
// everything else survives. Any supplied design tokens run through the same
// sanitizer as generated ones, so onboarding cannot smuggle invalid values in.
func (s *Service) UpdateOnboarding(ctx context.Context, websiteID int, patch map[string]interface{}) (*WebsiteResponse, error) {
	w, err := s.getWithProspect(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if w.Status != website.StatusSold && w.Status != website.StatusActive {
		return nil, domain.NewInvalidStateChangeError(string(w.Status), "onboarding update")
	}

	merged := make(map[string]interface{}, len(w.OnboardingData)+len(patch))
	for k, v := range w.OnboardingData {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}

	update := w.Update().
		SetOnboardingData(merged).
		SetOnboardingStatus(website.OnboardingStatusInProgress)

	if rawTokens, ok := patch["design_tokens"]; ok {
		tokens, err := sanitizePatchedTokens(rawTokens, w.ColorScheme)
		if err != nil {
			return nil, err
		}
		update.SetDesignTokens(tokens)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update onboarding data: %w", err)
	}
	return toResponse(updated), nil
}

// CompleteOnboarding publishes a sold site: sold -> active, onboarding done.
func (s *Service) CompleteOnboarding(ctx context.Context, websiteID int) (*WebsiteResponse, error) {
	w, err := s.getWithProspect(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(Status(w.Status), StatusActive); err != nil {
		return nil, err
	}

	updated, err := w.Update().
		SetStatus(website.StatusActive).
		SetOnboardingStatus(website.OnboardingStatusCompleted).
		SetPublishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate website: %w", err)
	}

	if s.mailer != nil {
		if owner, oerr := updated.QueryOwner().Only(ctx); oerr == nil {
			go func() {
				if err := s.mailer.SendSiteLiveNotification(owner.Email, owner.Name, updated.BusinessName, updated.Slug); err != nil {
					s.log.Warn("failed to send site live notification", "website_id", updated.ID, "error", err)
				}
			}()
		}
	}

	s.log.Info("website published", "website_id", w.ID, "slug", w.Slug)
	return toResponse(updated), nil
}

// Deactivate takes a site offline: canceled subscription or expired preview.
func (s *Service) Deactivate(ctx context.Context, websiteID int) (*WebsiteResponse, error) {
	w, err := s.getWithProspect(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(Status(w.Status), StatusInactive); err != nil {
		return nil, err
	}

	updated, err := w.Update().
		SetStatus(website.StatusInactive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate website: %w", err)
	}

	s.log.Info("website deactivated", "website_id", w.ID, "previous_status", string(w.Status))
	return toResponse(updated), nil
}

// DeactivateExpiredPreviews takes every preview past its expiry offline and
// returns how many were affected. Run periodically by the job scheduler.
func (s *Service) DeactivateExpiredPreviews(ctx context.Context) (int, error) {
	n, err := s.client.Website.
		Update().
		Where(
			website.StatusEQ(website.StatusPreview),
			website.ExpiresAtLT(time.Now()),
		).
		SetStatus(website.StatusInactive).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire previews: %w", err)
	}
	if n > 0 {
		s.log.Info("expired previews deactivated", "count", n)
	}
	return n, nil
}

func (s *Service) getWithProspect(ctx context.Context, websiteID int) (*ent.Website, error) {
	w, err := s.client.Website.Get(ctx, websiteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("website")
		}
		return nil, fmt.Errorf("failed to fetch website: %w", err)
	}
	return w, nil
}

func checkTransition(from, to Status) error {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return domain.NewInvalidStateChangeError(string(from), string(to))
}

func toResponse(w *ent.Website) *WebsiteResponse {
	return &WebsiteResponse{
		ID:               w.ID,
		Slug:             w.Slug,
		BusinessName:     w.BusinessName,
		IndustryKey:      w.IndustryKey,
		ArchetypeID:      w.ArchetypeID,
		Status:           string(w.Status),
		OnboardingStatus: string(w.OnboardingStatus),
		Tagline:          w.Tagline,
		Description:      w.Description,
		Sections:         w.Sections,
		DesignTokens:     w.DesignTokens,
		ColorScheme:      w.ColorScheme,
		HeroImage:        w.HeroImage,
		Gallery:          w.Gallery,
		GenerationCount:  w.GenerationCount,
		ExpiresAt:        w.ExpiresAt,
		CreatedAt:        w.CreatedAt,
	}
}

func factsFromProspect(p *ent.Prospect) generator.BusinessFacts {
	return generator.BusinessFacts{
		Name:         p.Name,
		Category:     p.Category,
		Address:      p.Address,
		Phone:        p.Phone,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		OpeningHours: p.OpeningHours,
		PlaceID:      p.PlaceID,
	}
}

// encodeDraft converts the typed generation artifacts into the JSON column
// shapes the schema stores.
func encodeDraft(draft *generator.GeneratedWebsiteDraft, sel generator.Selection) ([]map[string]interface{}, map[string]interface{}, map[string]string, error) {
	var sections []map[string]interface{}
	if err := reencode(draft.Sections, &sections); err != nil {
		return nil, nil, nil, err
	}
	var tokens map[string]interface{}
	if err := reencode(draft.DesignTokens, &tokens); err != nil {
		return nil, nil, nil, err
	}
	var scheme map[string]string
	if err := reencode(sel.Colors, &scheme); err != nil {
		return nil, nil, nil, err
	}
	return sections, tokens, scheme, nil
}

func reencode(from, to interface{}) error {
	raw, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("failed to encode website content: %w", err)
	}
	return json.Unmarshal(raw, to)
}

// sanitizePatchedTokens runs onboarding-supplied design tokens through the
// generation sanitizer, using the stored scheme for color fallbacks.
func sanitizePatchedTokens(raw interface{}, storedScheme map[string]string) (map[string]interface{}, error) {
	var tokens generator.DesignTokens
	if err := reencode(raw, &tokens); err != nil {
		return nil, domain.NewValidationError("design_tokens is not a valid token object")
	}

	var scheme generator.ColorScheme
	if err := reencode(storedScheme, &scheme); err != nil {
		return nil, fmt.Errorf("failed to decode stored color scheme: %w", err)
	}

	generator.SanitizeTokens(&tokens, scheme)

	var out map[string]interface{}
	if err := reencode(tokens, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// uniqueSlug derives a URL slug from the business name and disambiguates
// collisions with a numeric suffix.
func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = "website"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.client.Website.
			Query().
			Where(website.SlugEQ(slug)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

var slugFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func slugify(name string) string {
	folded, _, err := transform.String(slugFolder, strings.ToLower(name))
	if err != nil {
		folded = strings.ToLower(name)
	}
	folded = strings.ReplaceAll(folded, "ß", "ss")

	var b strings.Builder
	lastDash := true
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
