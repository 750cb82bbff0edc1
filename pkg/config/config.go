// Package config provides unified configuration for the GlassOS server.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (GLASSOS_ prefix, plus OPENAI_API_KEY)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
//
// The loaded Config is immutable for the process lifetime; there is no
// reload path.
package config

import "time"

// Config holds all configuration for the GlassOS server.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	CORS          CORSConfig          `yaml:"cors"`
	Providers     ProvidersConfig     `yaml:"providers"`
	Observability ObservabilityConfig `yaml:"observability"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`             // default: 8080
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // default: 120s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 30s
	MaxBodySize     int64         `yaml:"max_body_size"`    // default: 1 MB
}

// CORSConfig holds the cross-origin allow-list. Only the listed origins
// may call the API from a browser; all methods and headers are permitted
// for them, with credentials.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"` // default: ["https://chatgpt.com"]
}

// ProvidersConfig holds per-provider backend settings.
type ProvidersConfig struct {
	OpenAI OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig holds settings for the OpenAI extraction backend.
type OpenAIConfig struct {
	APIKey     string        `yaml:"api_key"`      // required
	APIKeyFile string        `yaml:"api_key_file"` // _file variant for api_key
	Model      string        `yaml:"model"`        // default: "gpt-4.1-mini"
	BaseURL    string        `yaml:"base_url"`     // default: "https://api.openai.com"
	Timeout    time.Duration `yaml:"timeout"`      // default: 60s
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// LoggingConfig holds debug categories and log level.
type LoggingConfig struct {
	Debug string `yaml:"debug"` // comma-separated debug categories
	Level string `yaml:"level"` // default: "INFO"
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxBodySize:     1 << 20,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"https://chatgpt.com"},
		},
		Providers: ProvidersConfig{
			OpenAI: OpenAIConfig{
				Model:   "gpt-4.1-mini",
				BaseURL: "https://api.openai.com",
				Timeout: 60 * time.Second,
			},
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}
