package openai

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/glassos/glassos/pkg/api"
)

// mapHTTPError converts an HTTP response with a non-2xx status code into
// an APIError. It attempts to parse the response body as a chatErrorResponse
// to extract a descriptive message. All backend failures surface as server
// errors to the caller; the backend status code is preserved in the message
// for diagnostics.
func mapHTTPError(resp *http.Response) *api.APIError {
	message := extractErrorMessage(resp.Body)
	if message == "" {
		message = fmt.Sprintf("backend error (HTTP %d)", resp.StatusCode)
	} else {
		message = fmt.Sprintf("backend error (HTTP %d): %s", resp.StatusCode, message)
	}
	return api.NewServerError("openai call failed: " + message)
}

// mapNetworkError converts a network-level error (connection refused,
// timeout, DNS resolution failure) into an APIError with the original
// cause in the message.
func mapNetworkError(err error) *api.APIError {
	return api.NewServerError(fmt.Sprintf("openai call failed: %s", err.Error()))
}

// extractErrorMessage tries to parse the response body as a chatErrorResponse
// and returns the error message if found.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var errResp chatErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return ""
}
