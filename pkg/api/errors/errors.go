package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/models"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A database error occurred. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context, reason string) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message, // Message is safe to expose (e.g., "Prospect already has a website")
	})
}

// DomainError maps a service-layer error to its HTTP response. Generation
// failures surface as 502 so callers can tell a broken upstream apart from
// bad input; rejected lifecycle transitions surface as 409.
func DomainError(c echo.Context, err error) error {
	de, ok := err.(*domain.DomainError)
	if !ok {
		return InternalError(c, err)
	}

	switch de.Code {
	case domain.ErrCodeNotFound:
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: de.Message,
		})
	case domain.ErrCodeValidation, domain.ErrCodeBadRequest:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: de.Message,
		})
	case domain.ErrCodeConflict:
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: de.Message,
		})
	case domain.ErrCodeInvalidStateChange:
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "invalid_state_change",
			Message: de.Message,
		})
	case domain.ErrCodeUnauthorized:
		return UnauthorizedError(c, de.Message)
	case domain.ErrCodeForbidden:
		return ForbiddenError(c, de.Message)
	case domain.ErrCodeGenerationTransport:
		log.Printf("[GENERATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "generation_unavailable",
			Message: "Content generation is temporarily unavailable. Please try again.",
		})
	case domain.ErrCodeMalformedGeneration:
		log.Printf("[GENERATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "generation_failed",
			Message: "Content generation produced an unusable result. Please try again.",
		})
	default:
		return InternalError(c, err)
	}
}
