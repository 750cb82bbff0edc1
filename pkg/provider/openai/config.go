package openai

import "time"

// Config holds configuration for the OpenAI provider adapter.
type Config struct {
	// APIKey authenticates against the backend. Required.
	APIKey string

	// Model is the model identifier to use. Defaults to "gpt-4.1-mini".
	Model string

	// BaseURL is the API root (e.g., "https://api.openai.com").
	// Defaults to the public OpenAI endpoint.
	BaseURL string

	// Timeout for the completion HTTP request. Defaults to 60s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults for the given key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   "gpt-4.1-mini",
		BaseURL: "https://api.openai.com",
		Timeout: 60 * time.Second,
	}
}
