package prospects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/pkg/logger"
)

func newTestPlacesClient(t *testing.T, handler http.HandlerFunc) *GooglePlacesClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGooglePlacesClient("test-key", logger.Default())
	c.baseURL = srv.URL
	return c
}

func TestGooglePlacesSearch(t *testing.T) {
	var gotBody placesSearchRequest
	var gotKey, gotMask string

	client := newTestPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Goog-Api-Key")
		gotMask = r.Header.Get("X-Goog-FieldMask")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"places": [
				{
					"id": "place-1",
					"displayName": {"text": "Friseursalon Scholz"},
					"primaryTypeDisplayName": {"text": "Friseursalon"},
					"formattedAddress": "Hauptstraße 12, 04109 Leipzig, Deutschland",
					"postalAddress": {"postalCode": "04109", "locality": "Leipzig"},
					"nationalPhoneNumber": "0341 1234567",
					"websiteUri": "https://friseur-scholz.de",
					"rating": 4.6,
					"userRatingCount": 87,
					"regularOpeningHours": {"weekdayDescriptions": ["Montag: 09:00-18:00"]}
				},
				{
					"id": "place-2",
					"displayName": {"text": "Haarwerk"},
					"formattedAddress": "Marktplatz 3, 04109 Leipzig, Deutschland",
					"postalAddress": {"postalCode": "04109"}
				}
			]
		}`))
	})

	results, err := client.Search(context.Background(), "Friseur", "Leipzig", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotMask, "places.id")
	assert.Equal(t, "Friseur in Leipzig", gotBody.TextQuery)
	assert.Equal(t, "de", gotBody.LanguageCode)
	assert.Equal(t, 10, gotBody.PageSize)

	first := results[0]
	assert.Equal(t, "place-1", first.PlaceID)
	assert.Equal(t, "Friseursalon Scholz", first.Name)
	assert.Equal(t, "Friseursalon", first.Category)
	assert.Equal(t, "Hauptstraße 12", first.Address)
	assert.Equal(t, "Leipzig", first.City)
	assert.Equal(t, "04109", first.PostalCode)
	assert.Equal(t, "0341 1234567", first.Phone)
	assert.Equal(t, "https://friseur-scholz.de", first.Website)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.6, *first.Rating, 0.001)
	assert.Equal(t, 87, first.ReviewCount)
	assert.Equal(t, []string{"Montag: 09:00-18:00"}, first.OpeningHours)

	// Missing locality falls back to the searched city
	assert.Equal(t, "Leipzig", results[1].City)
	assert.Nil(t, results[1].Rating)
}

func TestGooglePlacesSearchClampsPageSize(t *testing.T) {
	var gotBody placesSearchRequest
	client := newTestPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"places": []}`))
	})

	_, err := client.Search(context.Background(), "Bäckerei", "Dresden", 100)
	require.NoError(t, err)
	assert.Equal(t, 20, gotBody.PageSize)
}

func TestGooglePlacesSearchErrorStatus(t *testing.T) {
	client := newTestPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), "Friseur", "Leipzig", 10)
	assert.ErrorContains(t, err, "status 403")
}

func TestGooglePlacesSearchMissingKey(t *testing.T) {
	c := NewGooglePlacesClient("", logger.Default())
	_, err := c.Search(context.Background(), "Friseur", "Leipzig", 10)
	assert.ErrorContains(t, err, "api key")
}

func TestStreetFromFormatted(t *testing.T) {
	assert.Equal(t, "Hauptstraße 12", streetFromFormatted("Hauptstraße 12, 04109 Leipzig, Deutschland"))
	assert.Equal(t, "Marktplatz 3", streetFromFormatted("Marktplatz 3, 01067 Dresden"))
	assert.Equal(t, "Unstrukturiert", streetFromFormatted("Unstrukturiert"))
	assert.Equal(t, "", streetFromFormatted(""))
}
