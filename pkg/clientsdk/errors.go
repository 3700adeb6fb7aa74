package clientsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FieldError is a single invalid field reported by the API's validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError represents a non-success response from the API server.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Message is the API's error message.
	Message string

	// Fields holds per-field validation errors on a 400 validation response.
	Fields []FieldError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("HTTP %d: %s (%d invalid field(s))", e.StatusCode, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthenticated reports whether err is an APIError with status 401.
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// parseErrorResponse converts an error response body into a typed *APIError.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    errResp.Error,
			Fields:     errResp.Fields,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
