// Package errors provides structured error handling for the application.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic errors
	CodeProfileNotFound      ErrorCode = "PROFILE_NOT_FOUND"
	CodeGenerationInFlight   ErrorCode = "GENERATION_IN_FLIGHT"
	CodeRecommendationFailed ErrorCode = "RECOMMENDATION_FAILED"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound, CodeProfileNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeGenerationInFlight:
		return http.StatusConflict
	case CodeExternalServiceError, CodeRecommendationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewProfileNotFoundError creates a profile not found error
func NewProfileNotFoundError(id string) *AppError {
	return NewAppError(CodeProfileNotFound, "Profile not found", id)
}

// NewRecommendationFailedError creates the user-facing, retryable error for
// the diet recommendation path. The message is fixed product copy.
func NewRecommendationFailedError(cause error) *AppError {
	return NewAppError(CodeRecommendationFailed,
		"Failed to generate recommendations. Please try again.", "").WithCause(cause)
}

// NewGenerationInFlightError signals that a generation for the same profile
// is already running.
func NewGenerationInFlightError(id string) *AppError {
	return NewAppError(CodeGenerationInFlight,
		"A plan generation is already in progress for this profile", id)
}
