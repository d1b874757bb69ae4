package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// AllowedOrigins is the restrictive origin list. Preview and customer sites
// are rendered by the frontend, which is the only browser origin that talks
// to this API directly.
var AllowedOrigins = []string{
	"http://localhost:3000",   // Development
	"https://sitewerk.de",     // Production
	"https://www.sitewerk.de", // Production WWW
	"https://app.sitewerk.de", // Sales dashboard
}

// AllowedMethods lists the HTTP methods the API accepts cross-origin.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// AllowedHeaders lists the request headers allowed on cross-origin calls.
var AllowedHeaders = []string{
	"Origin",
	"Content-Type",
	"Accept",
	"Authorization",
}

// CORSConfig returns the CORS configuration used by the application.
// Centralised here so that both main.go and tests reference the same config.
func CORSConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:     AllowedOrigins,
		AllowMethods:     AllowedMethods,
		AllowCredentials: true,
		AllowHeaders:     AllowedHeaders,
	}
}
