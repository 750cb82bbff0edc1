package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
//
// A missing provider credential is a validation error: the process must
// not come up with a provider it cannot actually call.
func (c *Config) Validate() error {
	var errs []error

	// server.port must be positive.
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	// server.max_body_size must be positive.
	if c.Server.MaxBodySize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_size must be > 0, got %d", c.Server.MaxBodySize))
	}

	// providers.openai.api_key (or api_key_file) is required.
	if c.Providers.OpenAI.APIKey == "" {
		errs = append(errs, fmt.Errorf("providers.openai.api_key or providers.openai.api_key_file is required"))
	}

	// providers.openai.base_url must be an http(s) URL.
	if u := c.Providers.OpenAI.BaseURL; u != "" {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			errs = append(errs, fmt.Errorf("providers.openai.base_url must start with http:// or https://, got %q", u))
		}
	}

	// cors.allowed_origins must not be empty.
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, fmt.Errorf("cors.allowed_origins must contain at least one origin"))
	}

	return errors.Join(errs...)
}
