package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/glassos/glassos/pkg/api"
	"github.com/glassos/glassos/pkg/debug"
	"github.com/glassos/glassos/pkg/provider"
)

// OpenAIProvider implements provider.Provider against the OpenAI Chat
// Completions API.
type OpenAIProvider struct {
	cfg    Config
	client *http.Client
}

// Ensure OpenAIProvider implements provider.Provider at compile time.
var _ provider.Provider = (*OpenAIProvider)(nil)

// New creates a new OpenAIProvider with the given configuration.
// Construction fails closed: a missing API key is rejected here rather
// than surfacing on the first extraction call. No network I/O happens
// at construction time.
func New(cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: APIKey is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	// Normalize: remove trailing slash from base URL.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// Apply default timeout if not set.
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &OpenAIProvider{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// ExtractAssumptions builds the instruction prompt, performs one
// completion call, and parses the result. Backend/transport failures are
// returned as errors with the cause attached; malformed model output is
// recovered locally into an empty list (see ParseAssumptions).
func (p *OpenAIProvider) ExtractAssumptions(ctx context.Context, userPrompt, aiResponse string) ([]string, error) {
	prompt := BuildPrompt(userPrompt, aiResponse)

	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if debug.TraceIsEnabled("providers") {
		debug.Raw("providers", raw)
	}

	return ParseAssumptions(raw), nil
}

// complete sends the instruction to the Chat Completions endpoint and
// returns the raw text of the first choice. No retries: a higher layer
// may retry, the core does not.
func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	chatReq := chatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", api.NewServerError(fmt.Sprintf("failed to marshal request: %s", err.Error()))
	}

	url := p.cfg.BaseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", api.NewServerError(fmt.Sprintf("failed to create HTTP request: %s", err.Error()))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	debug.Log("providers", "backend request", "url", url, "model", p.cfg.Model)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", mapNetworkError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", mapHTTPError(httpResp)
	}

	var chatResp chatCompletionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&chatResp); err != nil {
		return "", api.NewServerError(fmt.Sprintf("failed to parse backend response: %s", err.Error()))
	}

	if len(chatResp.Choices) == 0 {
		return "", api.NewServerError("backend returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Close releases client resources.
func (p *OpenAIProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
