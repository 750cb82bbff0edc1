package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glassos/glassos/pkg/api"
)

// statusForError maps an APIError type to its HTTP status code.
func statusForError(apiErr *api.APIError) int {
	switch apiErr.Type {
	case api.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteAPIError writes an APIError as a JSON error response, deriving the
// status code from the error type.
func WriteAPIError(w http.ResponseWriter, apiErr *api.APIError) {
	WriteErrorResponse(w, apiErr, statusForError(apiErr))
}

// WriteErrorResponse writes an APIError as a JSON error response with an
// explicit status code.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.APIError, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}

// writeError normalizes any error into an APIError response. Errors that
// are not already APIErrors become opaque server errors.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		apiErr = api.NewServerError(err.Error())
	}
	WriteAPIError(w, apiErr)
}
