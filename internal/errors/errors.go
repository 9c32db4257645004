package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeInvalidDateRange = "INVALID_DATE_RANGE"

	// Resource errors
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
	ErrCodeConflict          = "CONFLICT"

	// Lifecycle errors
	ErrCodeAlreadyClaimed      = "ALREADY_CLAIMED"
	ErrCodeConstraintViolation = "CONSTRAINT_VIOLATION"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// InvalidDateRange sends a 400 response for an expiry date before the donation date
func InvalidDateRange(c *gin.Context, message string) {
	if message == "" {
		message = "Expiry date cannot be before donation date"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidDateRange, message))
}

// DuplicateUsername sends a 409 response for a taken username
func DuplicateUsername(c *gin.Context, message string) {
	if message == "" {
		message = "Username already exists"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeDuplicateUsername, message))
}

// AlreadyClaimed sends a 409 response for a lost claim race
func AlreadyClaimed(c *gin.Context, message string) {
	if message == "" {
		message = "Donation is already assigned to another NGO"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeAlreadyClaimed, message))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeConflict, message))
}

// ConstraintViolation sends a 422 response for a referential integrity failure
func ConstraintViolation(c *gin.Context, message string) {
	if message == "" {
		message = "Operation violates a data constraint"
	}
	RespondWithError(c, http.StatusUnprocessableEntity, NewAPIError(ErrCodeConstraintViolation, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
