package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sitewerk/sitewerk/pkg/api/errors"
	"github.com/sitewerk/sitewerk/pkg/metrics"
	"github.com/sitewerk/sitewerk/pkg/models"
	"github.com/sitewerk/sitewerk/pkg/prospects"
)

// ProspectHandler handles prospect ingestion and outreach endpoints
type ProspectHandler struct {
	prospects *prospects.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(ps *prospects.Service, m *metrics.Metrics) *ProspectHandler {
	return &ProspectHandler{
		prospects: ps,
		metrics:   m,
		validator: validator.New(),
	}
}

// Ingest pulls businesses from the places provider into the prospect pool
func (h *ProspectHandler) Ingest(c echo.Context) error {
	var req prospects.IngestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.prospects.Ingest(c.Request().Context(), req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordProspectsIngested(result.Created)
	}
	return c.JSON(http.StatusOK, result)
}

// List returns prospects matching the given filters, best score first
func (h *ProspectHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	minScore, _ := strconv.Atoi(c.QueryParam("min_score"))

	list, total, err := h.prospects.List(c.Request().Context(), prospects.ListFilter{
		Status:      c.QueryParam("status"),
		IndustryKey: c.QueryParam("industry"),
		City:        c.QueryParam("city"),
		MinScore:    minScore,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	})
	if err != nil {
		return errors.DomainError(c, err)
	}

	totalPages := (total + limit - 1) / limit
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": list,
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

// Get returns a single prospect by ID
func (h *ProspectHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid prospect ID",
		})
	}

	p, err := h.prospects.Get(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// UpdateStatusRequest carries a prospect status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves a prospect through the outreach pipeline
func (h *ProspectHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid prospect ID",
		})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	p, err := h.prospects.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
