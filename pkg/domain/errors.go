package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeGenerationTransport = "GENERATION_TRANSPORT"
	ErrCodeMalformedGeneration = "MALFORMED_GENERATION"
	ErrCodeInvalidStateChange  = "INVALID_STATE_CHANGE"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// NewGenerationTransportError wraps a failed LLM call (network, auth, timeout,
// or an empty response body). The request carries no partial result.
func NewGenerationTransportError(err error) error {
	return &DomainError{
		Code:    ErrCodeGenerationTransport,
		Message: "content generation request failed",
		Err:     err,
	}
}

// NewMalformedGenerationError marks an LLM response that is not valid JSON
// after markdown fence stripping. Never raised for repairable token values —
// those are silently clamped by the sanitizer.
func NewMalformedGenerationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeMalformedGeneration,
		Message: msg,
	}
}

// NewInvalidStateChangeError marks a website lifecycle transition that is not
// allowed from the current status.
func NewInvalidStateChangeError(from, to string) error {
	return &DomainError{
		Code:    ErrCodeInvalidStateChange,
		Message: fmt.Sprintf("cannot transition website from %s to %s", from, to),
	}
}

// Helper functions to check error types

func errCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ""
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errCode(err) == ErrCodeNotFound
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return errCode(err) == ErrCodeValidation
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return errCode(err) == ErrCodeConflict
}

// IsGenerationTransport checks if the error is a failed LLM call
func IsGenerationTransport(err error) bool {
	return errCode(err) == ErrCodeGenerationTransport
}

// IsMalformedGeneration checks if the error is an unparseable LLM response
func IsMalformedGeneration(err error) bool {
	return errCode(err) == ErrCodeMalformedGeneration
}

// IsInvalidStateChange checks if the error is a rejected lifecycle transition
func IsInvalidStateChange(err error) bool {
	return errCode(err) == ErrCodeInvalidStateChange
}
