package websites

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/enttest"
	"github.com/sitewerk/sitewerk/ent/website"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/generator"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

type fixedCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fixedCompleter) CompleteJSON(_ context.Context, _, _ string, _ []string) (string, error) {
	f.calls++
	return f.response, f.err
}

const generatedJSON = `{
	"businessName": "Café Lindenhof",
	"tagline": "Kaffee mit Herz",
	"description": "Ein Café im Herzen von Berlin.",
	"sections": [
		{"type": "hero", "title": "Willkommen im Café Lindenhof", "content": "..."},
		{"type": "menu", "title": "Unsere Karte", "content": "..."},
		{"type": "contact", "title": "Besuchen Sie uns", "content": "..."}
	],
	"designTokens": {
		"headlineFont": "Fraunces",
		"bodyFont": "Nunito",
		"borderRadius": "lg",
		"shadowStyle": "soft",
		"sectionSpacing": "normal",
		"buttonStyle": "filled",
		"accentColor": "#e85d04",
		"textColor": "#1c1917",
		"backgroundColor": "#fefcf8",
		"cardBackground": "#fff7ed",
		"sectionBackgrounds": ["#fefcf8", "#fff7ed"]
	}
}`

func newTestService(t *testing.T, client *ent.Client, llm *fixedCompleter) *Service {
	gen := generator.NewService(llm, generator.NewAssigner(nil, logger.Default()), logger.Default())
	return NewService(client, gen, nil, logger.Default())
}

func createTestProspect(t *testing.T, client *ent.Client, name, category string) *ent.Prospect {
	rating := 4.7
	p, err := client.Prospect.
		Create().
		SetName(name).
		SetCategory(category).
		SetAddress("Lindenstraße 12, 10969 Berlin").
		SetPhone("+493012345678").
		SetRating(rating).
		SetReviewCount(183).
		SetPlaceID("place-" + name).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetEmail(email).
		SetPasswordHash("hashed_password").
		SetName("Test User").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestCreatePreview(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	llm := &fixedCompleter{response: generatedJSON}
	service := newTestService(t, client, llm)
	p := createTestProspect(t, client, "Café Lindenhof", "café")

	resp, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, "preview", resp.Status)
	assert.Equal(t, "pending", resp.OnboardingStatus)
	assert.Equal(t, "cafe-lindenhof", resp.Slug)
	assert.Equal(t, "food", resp.IndustryKey)
	assert.NotEmpty(t, resp.ArchetypeID)
	assert.NotEmpty(t, resp.HeroImage)
	assert.Len(t, resp.Sections, 3)
	assert.Equal(t, 1, resp.GenerationCount)
	require.NotNil(t, resp.ExpiresAt)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// Prospect moved along the outreach pipeline.
	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, "generated", string(updated.Status))
	assert.Equal(t, "food", updated.IndustryKey)
}

func TestCreatePreviewConflictsOnSecondSite(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})
	p := createTestProspect(t, client, "Café Lindenhof", "café")

	_, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	_, err = service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestCreatePreviewUnknownProspect(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})
	_, err := service.CreatePreview(context.Background(), CreatePreviewRequest{ProspectID: 9999})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreatePreviewSlugCollision(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})

	p1 := createTestProspect(t, client, "Café Lindenhof", "café")
	r1, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p1.ID})
	require.NoError(t, err)
	assert.Equal(t, "cafe-lindenhof", r1.Slug)

	p2, err := client.Prospect.Create().
		SetName("Café Lindenhof").
		SetCategory("café").
		SetPlaceID("other-place").
		Save(ctx)
	require.NoError(t, err)

	r2, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p2.ID})
	require.NoError(t, err)
	assert.Equal(t, "cafe-lindenhof-2", r2.Slug)
}

func TestCreatePreviewGenerationFailureStoresNothing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	llm := &fixedCompleter{response: "definitely not json"}
	service := newTestService(t, client, llm)
	p := createTestProspect(t, client, "Café Lindenhof", "café")

	_, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.Error(t, err)
	assert.True(t, domain.IsMalformedGeneration(err))

	count, err := client.Website.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegenerateReplacesContentAllOrNothing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	llm := &fixedCompleter{response: generatedJSON}
	service := newTestService(t, client, llm)
	p := createTestProspect(t, client, "Café Lindenhof", "café")

	created, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	regen, err := service.Regenerate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, regen.GenerationCount)
	assert.Equal(t, created.Slug, regen.Slug, "slug survives regeneration")
	assert.Equal(t, "preview", regen.Status)

	// A failing regeneration leaves the stored site untouched.
	llm.response = "broken output"
	_, err = service.Regenerate(ctx, created.ID)
	require.Error(t, err)

	stored, err := service.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.GenerationCount)
	assert.Equal(t, "Café Lindenhof", stored.BusinessName)
	assert.Len(t, stored.Sections, 3)
}

func TestLifecycleHappyPath(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})
	p := createTestProspect(t, client, "Café Lindenhof", "café")
	u := createTestUser(t, client, "owner@example.com")

	created, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	sold, err := service.MarkSold(ctx, created.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "sold", sold.Status)
	assert.Equal(t, "in_progress", sold.OnboardingStatus)
	assert.Nil(t, sold.ExpiresAt, "sold sites no longer expire")

	patched, err := service.UpdateOnboarding(ctx, created.ID, map[string]interface{}{
		"contact_email": "info@lindenhof.de",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", patched.OnboardingStatus)

	active, err := service.CompleteOnboarding(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", active.Status)
	assert.Equal(t, "completed", active.OnboardingStatus)

	inactive, err := service.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "inactive", inactive.Status)
}

func TestLifecycleRejectsInvalidTransitions(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})
	p := createTestProspect(t, client, "Café Lindenhof", "café")
	u := createTestUser(t, client, "owner@example.com")

	created, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	// preview -> active skips the purchase.
	_, err = service.CompleteOnboarding(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidStateChange(err))

	_, err = service.MarkSold(ctx, created.ID, u.ID)
	require.NoError(t, err)

	// sold -> sold is not a transition.
	_, err = service.MarkSold(ctx, created.ID, u.ID)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidStateChange(err))

	_, err = service.CompleteOnboarding(ctx, created.ID)
	require.NoError(t, err)
	_, err = service.Deactivate(ctx, created.ID)
	require.NoError(t, err)

	// No path out of inactive, and no regeneration either.
	_, err = service.MarkSold(ctx, created.ID, u.ID)
	assert.True(t, domain.IsInvalidStateChange(err))
	_, err = service.Regenerate(ctx, created.ID)
	assert.True(t, domain.IsInvalidStateChange(err))
}

func TestUpdateOnboardingMergesAndSanitizes(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})
	p := createTestProspect(t, client, "Café Lindenhof", "café")
	u := createTestUser(t, client, "owner@example.com")

	created, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: p.ID})
	require.NoError(t, err)

	// Onboarding updates are rejected before purchase.
	_, err = service.UpdateOnboarding(ctx, created.ID, map[string]interface{}{"x": "y"})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidStateChange(err))

	_, err = service.MarkSold(ctx, created.ID, u.ID)
	require.NoError(t, err)

	_, err = service.UpdateOnboarding(ctx, created.ID, map[string]interface{}{
		"contact_email": "info@lindenhof.de",
	})
	require.NoError(t, err)

	// Second patch keeps earlier keys and clamps invalid token values.
	resp, err := service.UpdateOnboarding(ctx, created.ID, map[string]interface{}{
		"opening_note": "Montags geschlossen",
		"design_tokens": map[string]interface{}{
			"bodyFont":     "Playfair Display",
			"borderRadius": "enormous",
		},
	})
	require.NoError(t, err)

	w := client.Website.GetX(ctx, created.ID)
	assert.Equal(t, "info@lindenhof.de", w.OnboardingData["contact_email"])
	assert.Equal(t, "Montags geschlossen", w.OnboardingData["opening_note"])
	assert.Equal(t, "Inter", resp.DesignTokens["bodyFont"])
	assert.Equal(t, "md", resp.DesignTokens["borderRadius"])
}

func TestDeactivateExpiredPreviews(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service := newTestService(t, client, &fixedCompleter{response: generatedJSON})

	expired := createTestProspect(t, client, "Altes Café", "café")
	fresh := createTestProspect(t, client, "Neues Café", "café")

	r1, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: expired.ID})
	require.NoError(t, err)
	r2, err := service.CreatePreview(ctx, CreatePreviewRequest{ProspectID: fresh.ID})
	require.NoError(t, err)

	// Age the first preview past its expiry.
	err = client.Website.UpdateOneID(r1.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := service.DeactivateExpiredPreviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	w1 := client.Website.GetX(ctx, r1.ID)
	assert.Equal(t, website.StatusInactive, w1.Status)
	w2 := client.Website.GetX(ctx, r2.ID)
	assert.Equal(t, website.StatusPreview, w2.Status)
}
