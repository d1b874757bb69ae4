package prospects

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/enttest"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

type fakePlaces struct {
	results []PlaceResult
	err     error
	queries []string
}

func (f *fakePlaces) Search(_ context.Context, query, _ string, _ int) ([]PlaceResult, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func rating(v float64) *float64 { return &v }

func TestIngestCreatesScoredProspects(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	places := &fakePlaces{results: []PlaceResult{
		{
			PlaceID:     "p-1",
			Name:        "Café Lindenhof",
			Category:    "café",
			City:        "Berlin",
			Phone:       "030 12345678",
			Rating:      rating(4.7),
			ReviewCount: 183,
		},
		{
			PlaceID:     "p-2",
			Name:        "Haarstudio Anke",
			Category:    "Friseursalon",
			City:        "Berlin",
			Website:     "https://haarstudio-anke.de",
			Phone:       "030 98765432",
			Rating:      rating(3.2),
			ReviewCount: 4,
		},
		{Name: "missing place id"},
	}}
	service := NewService(client, places, logger.Default())

	result, err := service.Ingest(ctx, IngestRequest{Query: "café", City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Found)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	// No website, good rating, many reviews: top score.
	p1, err := client.Prospect.Query().Where(prospect.PlaceIDEQ("p-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, p1.Score)
	assert.Equal(t, "food", p1.IndustryKey)
	assert.Equal(t, "+493012345678", p1.Phone, "phone normalized to E.164")

	// Already has a website: low priority.
	p2, err := client.Prospect.Query().Where(prospect.PlaceIDEQ("p-2")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, p2.Score)
	assert.Equal(t, "beauty", p2.IndustryKey)
}

func TestIngestRefreshesWithoutTouchingStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	places := &fakePlaces{results: []PlaceResult{
		{PlaceID: "p-1", Name: "Café Lindenhof", Category: "café", ReviewCount: 10},
	}}
	service := NewService(client, places, logger.Default())

	_, err := service.Ingest(ctx, IngestRequest{Query: "café", City: "Berlin"})
	require.NoError(t, err)

	// Sales team starts outreach.
	p, err := client.Prospect.Query().Where(prospect.PlaceIDEQ("p-1")).Only(ctx)
	require.NoError(t, err)
	_, err = service.UpdateStatus(ctx, p.ID, "contacted")
	require.NoError(t, err)

	// A later run refreshes facts but not pipeline state.
	places.results[0].ReviewCount = 25
	result, err := service.Ingest(ctx, IngestRequest{Query: "café", City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Created)

	refreshed := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, 25, refreshed.ReviewCount)
	assert.Equal(t, prospect.StatusContacted, refreshed.Status)
}

func TestIngestKeepsUnparseablePhoneRaw(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	places := &fakePlaces{results: []PlaceResult{
		{PlaceID: "p-1", Name: "Café Lindenhof", Phone: "call us!"},
	}}
	service := NewService(client, places, logger.Default())

	_, err := service.Ingest(ctx, IngestRequest{Query: "café", City: "Berlin"})
	require.NoError(t, err)

	p, err := client.Prospect.Query().Where(prospect.PlaceIDEQ("p-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "call us!", p.Phone)
}

func TestIngestProviderFailure(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	places := &fakePlaces{err: errors.New("quota exceeded")}
	service := NewService(client, places, logger.Default())

	_, err := service.Ingest(context.Background(), IngestRequest{Query: "café", City: "Berlin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "places search failed")
}

func TestListFiltersAndOrders(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	places := &fakePlaces{results: []PlaceResult{
		{PlaceID: "a", Name: "Café A", Category: "café", City: "Berlin", Phone: "030 11111111", Rating: rating(4.8), ReviewCount: 50},
		{PlaceID: "b", Name: "Café B", Category: "café", City: "Berlin", Website: "https://b.de", Phone: "030 22222222"},
		{PlaceID: "c", Name: "Werkstatt C", Category: "KFZ-Werkstatt", City: "Hamburg", Phone: "040 33333333"},
	}}
	service := NewService(client, places, logger.Default())
	_, err := service.Ingest(ctx, IngestRequest{Query: "x", City: "Berlin"})
	require.NoError(t, err)

	all, total, err := service.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	// Best score first.
	assert.Equal(t, "Café A", all[0].Name)

	berlin, total, err := service.List(ctx, ListFilter{City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, berlin, 2)

	auto, _, err := service.List(ctx, ListFilter{IndustryKey: "automotive"})
	require.NoError(t, err)
	require.Len(t, auto, 1)
	assert.Equal(t, "Werkstatt C", auto[0].Name)

	hot, _, err := service.List(ctx, ListFilter{MinScore: 90})
	require.NoError(t, err)
	require.Len(t, hot, 1)
	assert.Equal(t, "Café A", hot[0].Name)
}

func TestGetAndUpdateStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := NewService(client, &fakePlaces{}, logger.Default())

	_, err := service.Get(ctx, 9999)
	assert.True(t, domain.IsNotFound(err))

	p, err := client.Prospect.Create().
		SetName("Café Lindenhof").
		SetPlaceID("p-1").
		Save(ctx)
	require.NoError(t, err)

	resp, err := service.UpdateStatus(ctx, p.ID, "contacted")
	require.NoError(t, err)
	assert.Equal(t, "contacted", resp.Status)

	_, err = service.UpdateStatus(ctx, p.ID, "on-vacation")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
