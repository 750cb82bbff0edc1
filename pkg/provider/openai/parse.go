package openai

import (
	"encoding/json"
	"strings"
)

// ParseAssumptions decodes the backend's raw text output into the list of
// assumption strings.
//
// Text-generating backends routinely wrap JSON in markdown code fences, so
// surrounding whitespace and ```/```json markers are stripped before
// decoding. Decode failures and a missing "assumptions" key both normalize
// to an empty list: parsing fragility in free-text model output must never
// fail the extraction operation. This deliberately makes "backend found
// nothing" and "backend output was malformed" indistinguishable to callers.
//
// Array entries that are not strings are dropped. The surviving entries
// keep their original order.
func ParseAssumptions(raw string) []string {
	cleaned := stripCodeFences(raw)

	var decoded struct {
		Assumptions []any `json:"assumptions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return []string{}
	}

	assumptions := make([]string, 0, len(decoded.Assumptions))
	for _, entry := range decoded.Assumptions {
		if s, ok := entry.(string); ok {
			assumptions = append(assumptions, s)
		}
	}
	return assumptions
}

// stripCodeFences removes surrounding markdown code-fence markers and
// whitespace from model output.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json\n")
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```\n")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "\n```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
