package prospects

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sitewerk/sitewerk/pkg/logger"
)

const placesSearchURL = "https://places.googleapis.com/v1/places:searchText"

// placesFieldMask lists the fields we pay for per result. Keep it tight:
// every extra field raises the per-request SKU.
const placesFieldMask = "places.id,places.displayName,places.primaryTypeDisplayName," +
	"places.formattedAddress,places.postalAddress,places.nationalPhoneNumber," +
	"places.websiteUri,places.rating,places.userRatingCount,places.regularOpeningHours"

// GooglePlacesClient queries the Google Places Text Search API.
type GooglePlacesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     logger.Logger
}

// NewGooglePlacesClient creates a new Google Places client
func NewGooglePlacesClient(apiKey string, log logger.Logger) *GooglePlacesClient {
	if log == nil {
		log = logger.Default()
	}
	return &GooglePlacesClient{
		apiKey:  apiKey,
		baseURL: placesSearchURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

type placesSearchRequest struct {
	TextQuery    string `json:"textQuery"`
	LanguageCode string `json:"languageCode"`
	RegionCode   string `json:"regionCode"`
	PageSize     int    `json:"pageSize"`
}

type placesSearchResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		PrimaryTypeDisplayName struct {
			Text string `json:"text"`
		} `json:"primaryTypeDisplayName"`
		FormattedAddress string `json:"formattedAddress"`
		PostalAddress    struct {
			PostalCode string `json:"postalCode"`
			Locality   string `json:"locality"`
		} `json:"postalAddress"`
		NationalPhoneNumber string   `json:"nationalPhoneNumber"`
		WebsiteURI          string   `json:"websiteUri"`
		Rating              *float64 `json:"rating"`
		UserRatingCount     int      `json:"userRatingCount"`
		RegularOpeningHours struct {
			WeekdayDescriptions []string `json:"weekdayDescriptions"`
		} `json:"regularOpeningHours"`
	} `json:"places"`
}

// Search runs a text search like "Friseur in Leipzig" and maps the results
// into provider-neutral PlaceResult values. The API caps pageSize at 20;
// larger limits are truncated rather than paginated since ingestion runs
// repeatedly anyway.
func (g *GooglePlacesClient) Search(ctx context.Context, query, city string, limit int) ([]PlaceResult, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google places api key is not configured")
	}

	pageSize := limit
	if pageSize > 20 || pageSize <= 0 {
		pageSize = 20
	}

	body, err := json.Marshal(placesSearchRequest{
		TextQuery:    fmt.Sprintf("%s in %s", query, city),
		LanguageCode: "de",
		RegionCode:   "DE",
		PageSize:     pageSize,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places search returned status %d", resp.StatusCode)
	}

	var parsed placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	results := make([]PlaceResult, 0, len(parsed.Places))
	for _, p := range parsed.Places {
		locality := p.PostalAddress.Locality
		if locality == "" {
			locality = city
		}
		results = append(results, PlaceResult{
			PlaceID:      p.ID,
			Name:         p.DisplayName.Text,
			Category:     p.PrimaryTypeDisplayName.Text,
			Address:      streetFromFormatted(p.FormattedAddress),
			City:         locality,
			PostalCode:   p.PostalAddress.PostalCode,
			Phone:        p.NationalPhoneNumber,
			Website:      p.WebsiteURI,
			Rating:       p.Rating,
			ReviewCount:  p.UserRatingCount,
			OpeningHours: p.RegularOpeningHours.WeekdayDescriptions,
		})
	}

	g.log.Info("places search completed", "query", query, "city", city, "results", len(results))
	return results, nil
}

// streetFromFormatted keeps the street segment of a formatted address.
// German formatted addresses read "Hauptstraße 1, 04109 Leipzig, Deutschland".
func streetFromFormatted(addr string) string {
	if i := strings.Index(addr, ","); i > 0 {
		return strings.TrimSpace(addr[:i])
	}
	return addr
}
