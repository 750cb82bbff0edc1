package api

// DefaultProvider is the provider identifier used when a request does not
// name one.
const DefaultProvider = "openai"

// ExtractionRequest is the client request for assumption extraction.
// Prompt and Response are required and must be non-empty; Provider is
// optional and defaults to DefaultProvider.
type ExtractionRequest struct {
	// Prompt is the original user input prompt.
	Prompt string `json:"prompt"`

	// Response is the AI-generated response to analyze.
	Response string `json:"response"`

	// Provider selects the extraction backend by identifier.
	Provider string `json:"provider,omitempty"`
}

// ApplyDefaults fills in defaulted fields. It is called by the transport
// layer after decoding, before provider resolution.
func (r *ExtractionRequest) ApplyDefaults() {
	if r.Provider == "" {
		r.Provider = DefaultProvider
	}
}

// AssumptionList is the successful extraction result. Order reflects the
// order in which the backend listed the assumptions. An empty list is a
// valid result meaning nothing could be extracted.
type AssumptionList struct {
	Assumptions []string `json:"assumptions"`
}

// NewAssumptionList wraps the given assumptions, normalizing nil to an
// empty slice so the JSON field serializes as [] rather than null.
func NewAssumptionList(assumptions []string) *AssumptionList {
	if assumptions == nil {
		assumptions = []string{}
	}
	return &AssumptionList{Assumptions: assumptions}
}
