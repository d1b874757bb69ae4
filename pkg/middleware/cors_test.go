package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

// newCORSEcho creates an Echo instance with the API CORS config and a test route.
func newCORSEcho() *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(CORSConfig()))
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestCORS_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"development", "http://localhost:3000"},
		{"production", "https://sitewerk.de"},
		{"production www", "https://www.sitewerk.de"},
		{"sales dashboard", "https://app.sitewerk.de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCORSEcho()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_BlockedOrigins(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"unknown external site", "https://evil.com"},
		{"similar domain attack", "https://sitewerk.de.evil.com"},
		{"subdomain not in list", "https://admin.sitewerk.de"},
		{"http instead of https for production", "http://sitewerk.de"},
		{"different port on localhost", "http://localhost:8080"},
		{"null origin", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCORSEcho()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			// The request itself succeeds (CORS doesn't block the request server-side),
			// but the Access-Control-Allow-Origin header should NOT match the origin.
			acao := rec.Header().Get("Access-Control-Allow-Origin")
			assert.NotEqual(t, tt.origin, acao,
				"Origin %q should not be reflected in Access-Control-Allow-Origin", tt.origin)
		})
	}
}

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://sitewerk.de")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization,Content-Type")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://sitewerk.de", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	allowedMethods := rec.Header().Get("Access-Control-Allow-Methods")
	for _, m := range AllowedMethods {
		assert.Contains(t, allowedMethods, m, "Preflight should include method %s", m)
	}

	allowedHeaders := rec.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowedHeaders, "Authorization")
	assert.Contains(t, allowedHeaders, "Content-Type")
}

func TestCORS_PreflightBlockedOrigin(t *testing.T) {
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://evil.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	acao := rec.Header().Get("Access-Control-Allow-Origin")
	assert.NotEqual(t, "https://evil.com", acao,
		"Preflight should not reflect blocked origin")
}

func TestCORS_NoWildcardWithCredentials(t *testing.T) {
	// When AllowCredentials is true, Access-Control-Allow-Origin must NOT be "*".
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	acao := rec.Header().Get("Access-Control-Allow-Origin")
	assert.NotEqual(t, "*", acao,
		"Access-Control-Allow-Origin must not be wildcard when credentials are enabled")
	assert.Equal(t, "http://localhost:3000", acao)
}

func TestCORSConfig_Values(t *testing.T) {
	cfg := CORSConfig()

	assert.Equal(t, AllowedOrigins, cfg.AllowOrigins)
	assert.Equal(t, AllowedMethods, cfg.AllowMethods)
	assert.Equal(t, AllowedHeaders, cfg.AllowHeaders)
	assert.True(t, cfg.AllowCredentials)
}

func TestCORSConfig_NoWildcardOrigin(t *testing.T) {
	cfg := CORSConfig()

	for _, origin := range cfg.AllowOrigins {
		assert.NotEqual(t, "*", origin,
			"Wildcard origin is not allowed in restrictive CORS config")
	}
}

func TestCORSConfig_MethodsDoNotIncludeOPTIONS(t *testing.T) {
	// OPTIONS is handled automatically by the CORS middleware for preflight.
	cfg := CORSConfig()

	for _, m := range cfg.AllowMethods {
		assert.NotEqual(t, http.MethodOptions, m,
			"OPTIONS should not be in AllowMethods (handled automatically)")
	}
}

func TestCORS_ActualPOSTWithAllowedOrigin(t *testing.T) {
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"key":"value"}`))
	req.Header.Set("Origin", "https://www.sitewerk.de")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://www.sitewerk.de", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_RequestWithoutOrigin(t *testing.T) {
	// Server-to-server requests (no Origin header) should work normally.
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
