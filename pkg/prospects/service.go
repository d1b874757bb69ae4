package prospects

import (
	"context"
	"fmt"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/generator"
	"github.com/sitewerk/sitewerk/pkg/logger"
	"github.com/sitewerk/sitewerk/pkg/phone"
)

// PlaceResult is one discovered business as returned by a places provider.
type PlaceResult struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	PostalCode   string   `json:"postal_code"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  int      `json:"review_count"`
	OpeningHours []string `json:"opening_hours,omitempty"`
}

// PlacesClient abstracts the external places provider the ingestion pulls
// candidate businesses from.
type PlacesClient interface {
	Search(ctx context.Context, query, city string, limit int) ([]PlaceResult, error)
}

// Service handles prospect ingestion and the outreach pipeline.
type Service struct {
	client *ent.Client
	places PlacesClient
	log    logger.Logger
}

// NewService creates a new prospects service.
func NewService(client *ent.Client, places PlacesClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{client: client, places: places, log: log}
}

// IngestRequest describes one ingestion run.
type IngestRequest struct {
	Query string `json:"query" validate:"required"`
	City  string `json:"city" validate:"required"`
	Limit int    `json:"limit,omitempty"`
}

// IngestResult summarizes an ingestion run.
type IngestResult struct {
	Found   int `json:"found"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ProspectResponse is the API shape of a prospect.
type ProspectResponse struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	IndustryKey     string   `json:"industry_key"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Phone           string   `json:"phone"`
	ExistingWebsite string   `json:"existing_website,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ReviewCount     int      `json:"review_count"`
	Score           int      `json:"score"`
	Status          string   `json:"status"`
}

// Ingest pulls businesses from the places provider and upserts them as
// prospects. Results without a name or place ID are skipped; phone numbers
// are normalized to E.164 where they parse, kept raw where they don't.
// Re-ingesting a known place refreshes its facts but never touches its
// outreach status.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	results, err := s.places.Search(ctx, req.Query, req.City, limit)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}

	out := &IngestResult{Found: len(results)}
	for _, r := range results {
		if r.PlaceID == "" || r.Name == "" {
			out.Skipped++
			continue
		}

		phoneE164 := r.Phone
		if r.Phone != "" {
			if normalized, err := phone.NormalizePhone(r.Phone, ""); err == nil {
				phoneE164 = normalized
			}
		}

		cls := generator.Classify(r.Category, r.Name)
		score := scoreProspect(r)

		existing, err := s.client.Prospect.
			Query().
			Where(prospect.PlaceIDEQ(r.PlaceID)).
			Only(ctx)
		switch {
		case err == nil:
			err = existing.Update().
				SetName(r.Name).
				SetCategory(r.Category).
				SetIndustryKey(cls.Key).
				SetAddress(r.Address).
				SetCity(r.City).
				SetPostalCode(r.PostalCode).
				SetPhone(phoneE164).
				SetExistingWebsite(r.Website).
				SetNillableRating(r.Rating).
				SetReviewCount(r.ReviewCount).
				SetOpeningHours(r.OpeningHours).
				SetScore(score).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to refresh prospect %s: %w", r.PlaceID, err)
			}
			out.Updated++

		case ent.IsNotFound(err):
			_, err = s.client.Prospect.
				Create().
				SetName(r.Name).
				SetCategory(r.Category).
				SetIndustryKey(cls.Key).
				SetAddress(r.Address).
				SetCity(r.City).
				SetPostalCode(r.PostalCode).
				SetPhone(phoneE164).
				SetExistingWebsite(r.Website).
				SetNillableRating(r.Rating).
				SetReviewCount(r.ReviewCount).
				SetOpeningHours(r.OpeningHours).
				SetPlaceID(r.PlaceID).
				SetScore(score).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create prospect %s: %w", r.PlaceID, err)
			}
			out.Created++

		default:
			return nil, fmt.Errorf("failed to look up prospect %s: %w", r.PlaceID, err)
		}
	}

	s.log.Info("ingestion completed",
		"query", req.Query, "city", req.City,
		"found", out.Found, "created", out.Created, "updated", out.Updated, "skipped", out.Skipped)
	return out, nil
}

// scoreProspect ranks outreach priority. Businesses without a website are the
// product's whole market, so that signal dominates; good reviews mean the
// business is alive and findable; a missing phone number makes outreach
// expensive.
func scoreProspect(r PlaceResult) int {
	score := 50
	if r.Website == "" {
		score += 30
	} else {
		score -= 20
	}
	if r.Rating != nil && *r.Rating >= 4.0 {
		score += 10
	}
	if r.ReviewCount >= 20 {
		score += 10
	}
	if r.Phone == "" {
		score -= 20
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ListFilter narrows a prospect listing.
type ListFilter struct {
	Status      string
	IndustryKey string
	City        string
	MinScore    int
	Limit       int
	Offset      int
}

// List returns prospects matching the filter, best score first.
func (s *Service) List(ctx context.Context, f ListFilter) ([]*ProspectResponse, int, error) {
	q := s.client.Prospect.Query()
	if f.Status != "" {
		q = q.Where(prospect.StatusEQ(prospect.Status(f.Status)))
	}
	if f.IndustryKey != "" {
		q = q.Where(prospect.IndustryKeyEQ(f.IndustryKey))
	}
	if f.City != "" {
		q = q.Where(prospect.CityEQ(f.City))
	}
	if f.MinScore > 0 {
		q = q.Where(prospect.ScoreGTE(f.MinScore))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count prospects: %w", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := q.
		Order(ent.Desc(prospect.FieldScore), ent.Desc(prospect.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prospects: %w", err)
	}

	out := make([]*ProspectResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}
	return out, total, nil
}

// Get returns one prospect by ID.
func (s *Service) Get(ctx context.Context, id int) (*ProspectResponse, error) {
	p, err := s.client.Prospect.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("prospect")
		}
		return nil, fmt.Errorf("failed to fetch prospect: %w", err)
	}
	return toResponse(p), nil
}

// UpdateStatus moves a prospect along the outreach pipeline.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*ProspectResponse, error) {
	p, err := s.client.Prospect.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("prospect")
		}
		return nil, fmt.Errorf("failed to fetch prospect: %w", err)
	}

	updated, err := p.Update().
		SetStatus(prospect.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid prospect status %q", status))
	}
	return toResponse(updated), nil
}

func toResponse(p *ent.Prospect) *ProspectResponse {
	return &ProspectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		IndustryKey:     p.IndustryKey,
		Address:         p.Address,
		City:            p.City,
		Phone:           p.Phone,
		ExistingWebsite: p.ExistingWebsite,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Score:           p.Score,
		Status:          string(p.Status),
	}
}
