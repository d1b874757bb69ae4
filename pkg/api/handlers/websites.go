package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sitewerk/sitewerk/pkg/api/errors"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/metrics"
	"github.com/sitewerk/sitewerk/pkg/models"
	"github.com/sitewerk/sitewerk/pkg/websites"
)

// WebsiteHandler handles website generation and lifecycle endpoints
type WebsiteHandler struct {
	websites  *websites.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewWebsiteHandler creates a new website handler
func NewWebsiteHandler(ws *websites.Service, m *metrics.Metrics) *WebsiteHandler {
	return &WebsiteHandler{
		websites:  ws,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreatePreview generates a website preview for a prospect
func (h *WebsiteHandler) CreatePreview(c echo.Context) error {
	var req websites.CreatePreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	start := time.Now()
	site, err := h.websites.CreatePreview(c.Request().Context(), req)
	h.recordGeneration(err, time.Since(start))
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusCreated, site)
}

// Regenerate replaces a website's generated content with a fresh draft
func (h *WebsiteHandler) Regenerate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid website ID",
		})
	}

	start := time.Now()
	site, err := h.websites.Regenerate(c.Request().Context(), id)
	h.recordGeneration(err, time.Since(start))
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, site)
}

// GetBySlug returns a website by its public slug
func (h *WebsiteHandler) GetBySlug(c echo.Context) error {
	site, err := h.websites.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, site)
}

// List returns websites, optionally filtered by status
func (h *WebsiteHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sites, total, err := h.websites.List(c.Request().Context(), c.QueryParam("status"), limit, (page-1)*limit)
	if err != nil {
		return errors.DomainError(c, err)
	}

	totalPages := (total + limit - 1) / limit
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": sites,
		"pagination": models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	})
}

// UpdateOnboarding merges customer onboarding data into a sold website
func (h *WebsiteHandler) UpdateOnboarding(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid website ID",
		})
	}

	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Onboarding patch must not be empty",
		})
	}

	site, err := h.websites.UpdateOnboarding(c.Request().Context(), id, patch)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, site)
}

// CompleteOnboarding publishes a sold website
func (h *WebsiteHandler) CompleteOnboarding(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid website ID",
		})
	}

	site, err := h.websites.CompleteOnboarding(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordWebsiteTransition("sold", "active")
	}
	return c.JSON(http.StatusOK, site)
}

// Deactivate takes a website offline
func (h *WebsiteHandler) Deactivate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid website ID",
		})
	}

	site, err := h.websites.Deactivate(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordWebsiteTransition("active", "inactive")
	}
	return c.JSON(http.StatusOK, site)
}

func (h *WebsiteHandler) recordGeneration(err error, d time.Duration) {
	if h.metrics == nil {
		return
	}
	status := "success"
	switch {
	case domain.IsGenerationTransport(err):
		status = "transport_error"
	case domain.IsMalformedGeneration(err):
		status = "malformed"
	case err != nil:
		status = "error"
	}
	h.metrics.RecordGeneration(status, d)
}
