package api

import "fmt"

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeServerError    ErrorType = "server_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request"
)

// ErrorCodeUnknownProvider marks an invalid_request error caused by a
// provider identifier that is not in the registry.
const ErrorCodeUnknownProvider = "unknown_provider"

// APIError represents a structured API error with type, code, param, and message.
type APIError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code,omitempty"`
	Param   string    `json:"param,omitempty"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s (param: %s)", e.Type, e.Message, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorResponse wraps an APIError for JSON serialization as the top-level error response.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// NewInvalidRequestError creates an APIError for invalid request parameters.
func NewInvalidRequestError(param, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidRequest,
		Param:   param,
		Message: message,
	}
}

// NewUnknownProviderError creates an APIError for a provider identifier
// that is not registered. The offending name appears in the message so
// clients can see exactly what was rejected.
func NewUnknownProviderError(name string) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidRequest,
		Code:    ErrorCodeUnknownProvider,
		Param:   "provider",
		Message: fmt.Sprintf("unknown provider: %s", name),
	}
}

// NewServerError creates an APIError for internal server errors,
// including backend call failures.
func NewServerError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeServerError,
		Message: message,
	}
}
