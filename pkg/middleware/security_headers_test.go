package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runSecurityHeaders(t *testing.T, cfg SecurityHeadersConfig, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SecurityHeaders(cfg)(next)(c)
	return rec, err
}

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	rec, err := runSecurityHeaders(t, SecurityHeadersConfig{}, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	assert.NoError(t, err)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "img-src 'self' data: https:")
	assert.Contains(t, csp, "font-src 'self' https://fonts.gstatic.com")
	assert.Contains(t, csp, "connect-src 'self' https://api.stripe.com")
	assert.Contains(t, csp, "frame-ancestors 'none'")

	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))

	pp := rec.Header().Get("Permissions-Policy")
	assert.Contains(t, pp, "camera=()")
	assert.Contains(t, pp, "payment=(self)")
}

func TestSecurityHeaders_CustomCSP(t *testing.T) {
	customCSP := "default-src 'self'; script-src 'self' https://cdn.example.com"
	rec, err := runSecurityHeaders(t, SecurityHeadersConfig{ContentSecurityPolicy: customCSP}, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	assert.NoError(t, err)

	assert.Equal(t, customCSP, rec.Header().Get("Content-Security-Policy"))
	// Other headers keep their defaults
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_HandlerCalled(t *testing.T) {
	called := false
	rec, err := runSecurityHeaders(t, SecurityHeadersConfig{}, func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "OK")
	})
	assert.NoError(t, err)
	assert.True(t, called, "next handler should be called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeaders_HandlerError(t *testing.T) {
	rec, err := runSecurityHeaders(t, SecurityHeadersConfig{}, func(c echo.Context) error {
		return echo.ErrInternalServerError
	})
	assert.Error(t, err)
	// Headers are set before the handler runs, so they survive handler errors
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}
