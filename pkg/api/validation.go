package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// extractionRequestSchema constrains the request body shape before it is
// decoded into an ExtractionRequest. Prompt and response must be present,
// non-empty strings; provider, when given, must be a string.
const extractionRequestSchema = `{
  "type": "object",
  "required": ["prompt", "response"],
  "properties": {
    "prompt": {"type": "string", "minLength": 1},
    "response": {"type": "string", "minLength": 1},
    "provider": {"type": "string"}
  },
  "additionalProperties": false
}`

var requestSchema = jsonschema.MustCompileString("extraction-request.json", extractionRequestSchema)

// DecodeExtractionRequest validates raw JSON against the request schema
// and decodes it into an ExtractionRequest with defaults applied.
// Validation failures come back as invalid_request APIErrors suitable for
// a 400 response.
func DecodeExtractionRequest(body []byte) (*ExtractionRequest, *APIError) {
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return nil, NewInvalidRequestError("body", "invalid JSON: "+err.Error())
	}

	if err := requestSchema.Validate(generic); err != nil {
		return nil, NewInvalidRequestError("body", fmt.Sprintf("request validation failed: %v", err))
	}

	var req ExtractionRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return nil, NewInvalidRequestError("body", "invalid JSON: "+err.Error())
	}

	req.ApplyDefaults()
	return &req, nil
}
