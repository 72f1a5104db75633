package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeProductNotFound  ErrorCode = "PRODUCT_NOT_FOUND"
	ErrorCodeInvalidCategory  ErrorCode = "INVALID_CATEGORY"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError        ErrorCode = "INTERNAL_ERROR"
	ErrorCodeRecommendationFailed ErrorCode = "RECOMMENDATION_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// respondWithError writes a standardized error response and aborts the
// request.
func respondWithError(c *gin.Context, status int, code ErrorCode, message string, details ...ErrorDetail) {
	c.AbortWithStatusJSON(status, &APIError{
		Error:     http.StatusText(status),
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	})
}
