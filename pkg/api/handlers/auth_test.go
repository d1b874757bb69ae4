package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/config"
	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/enttest"
	"github.com/sitewerk/sitewerk/pkg/auth"
	"github.com/sitewerk/sitewerk/pkg/cache"
	"github.com/sitewerk/sitewerk/pkg/models"
)

func setupAuthTestHandler(t *testing.T) (*AuthHandler, *ent.Client) {
	t.Helper()

	dbClient := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { dbClient.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	testConfig := &config.Config{
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 24,
	}

	handler := &AuthHandler{
		db:        dbClient,
		config:    testConfig,
		blacklist: auth.NewTokenBlacklist(redisClient),
		validator: validator.New(),
	}

	return handler, dbClient
}

func createAuthTestUser(t *testing.T, client *ent.Client, email, password string) *ent.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetName("Test User").
		SetPasswordHash(hash).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func newAuthJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/register",
		`{"email":"neu@example.de","password":"sicher-genug-123","name":"Neue Kundin"}`)

	require.NoError(t, handler.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "neu@example.de", resp.User.Email)
	assert.Equal(t, "customer", resp.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	createAuthTestUser(t, client, "neu@example.de", "irrelevant-pw-1")

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/register",
		`{"email":"neu@example.de","password":"sicher-genug-123","name":"Neue Kundin"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_exists")
}

func TestRegister_InvalidBody(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	// Missing password fails validation
	c, rec := newAuthJSONContext(http.MethodPost, "/auth/register",
		`{"email":"neu@example.de","name":"Neue Kundin"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/login",
		`{"email":"kunde@example.de","password":"richtiges-passwort"}`)

	require.NoError(t, handler.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/login",
		`{"email":"kunde@example.de","password":"falsches-passwort"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/login",
		`{"email":"niemand@example.de","password":"egal-welches-pw"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_Success(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	u := createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")

	c, rec := newAuthJSONContext(http.MethodGet, "/auth/me", "")
	c.Set("user_id", u.ID)

	require.NoError(t, handler.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, u.ID, info.ID)
	assert.Equal(t, "kunde@example.de", info.Email)
}

func TestMe_MissingUser(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	c, rec := newAuthJSONContext(http.MethodGet, "/auth/me", "")

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	u := createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")

	c, rec := newAuthJSONContext(http.MethodPut, "/auth/profile",
		`{"name":"Neuer Name"}`)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.UpdateProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Neuer Name", resp.Name)
	assert.Equal(t, "kunde@example.de", resp.Email)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	u := createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")
	createAuthTestUser(t, client, "belegt@example.de", "anderes-passwort")

	c, rec := newAuthJSONContext(http.MethodPut, "/auth/profile",
		`{"email":"belegt@example.de"}`)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_taken")
}

func TestUpdateProfile_EmptyUpdate(t *testing.T) {
	handler, client := setupAuthTestHandler(t)
	u := createAuthTestUser(t, client, "kunde@example.de", "richtiges-passwort")

	c, rec := newAuthJSONContext(http.MethodPut, "/auth/profile", `{}`)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_Success(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/logout", "")
	c.Set("token", "some.jwt.token")

	require.NoError(t, handler.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Token is now revoked
	revoked, err := handler.blacklist.IsBlacklisted(context.Background(), "some.jwt.token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogout_MissingToken(t *testing.T) {
	handler, _ := setupAuthTestHandler(t)

	c, rec := newAuthJSONContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
