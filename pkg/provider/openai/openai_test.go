package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glassos/glassos/pkg/api"
)

// newTestProvider points a provider at the given test server.
func newTestProvider(t *testing.T, baseURL string) *OpenAIProvider {
	t.Helper()
	p, err := New(Config{APIKey: "sk-test", BaseURL: baseURL})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

// chatReply builds a one-choice chat completion response with the given content.
func chatReply(content string) chatCompletionResponse {
	return chatCompletionResponse{
		ID:    "chatcmpl-test-123",
		Model: "gpt-4.1-mini",
		Choices: []chatChoice{
			{
				Index:        0,
				Message:      chatMessage{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected construction to fail without an API key")
	}
}

func TestNew_Defaults(t *testing.T) {
	p, err := New(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	if p.Name() != "openai" {
		t.Errorf("name = %q, want \"openai\"", p.Name())
	}
	if p.cfg.Model != "gpt-4.1-mini" {
		t.Errorf("default model = %q, want \"gpt-4.1-mini\"", p.cfg.Model)
	}
	if p.cfg.BaseURL != "https://api.openai.com" {
		t.Errorf("default base URL = %q", p.cfg.BaseURL)
	}
}

func TestExtractAssumptions_Success(t *testing.T) {
	want := []string{
		"The user has no prior biology background.",
		"The user wants a simplified, non-technical explanation.",
	}
	payload, _ := json.Marshal(map[string][]string{"assumptions": want})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request shape.
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("expected path /v1/chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q, want \"Bearer sk-test\"", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want \"application/json\"", got)
		}

		var chatReq chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if chatReq.Model != "gpt-4.1-mini" {
			t.Errorf("model = %q, want \"gpt-4.1-mini\"", chatReq.Model)
		}
		if len(chatReq.Messages) != 1 || chatReq.Messages[0].Role != "user" {
			t.Errorf("expected a single user message, got %+v", chatReq.Messages)
		}
		if !strings.Contains(chatReq.Messages[0].Content, "Explain photosynthesis simply") {
			t.Error("instruction does not carry the user prompt")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatReply(string(payload)))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	got, err := p.ExtractAssumptions(context.Background(),
		"Explain photosynthesis simply",
		"Photosynthesis is how plants turn sunlight into food...")
	if err != nil {
		t.Fatalf("ExtractAssumptions failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d assumptions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("assumption[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractAssumptions_FencedOutput(t *testing.T) {
	fenced := "```json\n{\"assumptions\": [\"The user is curious.\"]}\n```"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply(fenced))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	got, err := p.ExtractAssumptions(context.Background(), "p", "r")
	if err != nil {
		t.Fatalf("ExtractAssumptions failed: %v", err)
	}
	if len(got) != 1 || got[0] != "The user is curious." {
		t.Errorf("got %v, want [The user is curious.]", got)
	}
}

func TestExtractAssumptions_MalformedOutputIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply("Sorry, I cannot produce JSON today."))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	got, err := p.ExtractAssumptions(context.Background(), "p", "r")
	if err != nil {
		t.Fatalf("malformed model output must not fail the pipeline: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty result", got)
	}
}

func TestExtractAssumptions_BackendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "rate_limit_error"}}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	_, err := p.ExtractAssumptions(context.Background(), "p", "r")
	if err == nil {
		t.Fatal("expected error for non-2xx backend status")
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.APIError, got %T", err)
	}
	if apiErr.Type != api.ErrorTypeServerError {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeServerError)
	}
	if !strings.Contains(apiErr.Message, "rate limit exceeded") {
		t.Errorf("error %q does not carry the backend cause", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "429") {
		t.Errorf("error %q does not carry the backend status", apiErr.Message)
	}
}

func TestExtractAssumptions_NetworkError(t *testing.T) {
	// A server that is immediately closed produces connection errors.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := newTestProvider(t, srv.URL)

	_, err := p.ExtractAssumptions(context.Background(), "p", "r")
	if err == nil {
		t.Fatal("expected error when the backend is unreachable")
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.APIError, got %T", err)
	}
	if apiErr.Type != api.ErrorTypeServerError {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeServerError)
	}
}

func TestExtractAssumptions_UndecodableTransportResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	if _, err := p.ExtractAssumptions(context.Background(), "p", "r"); err == nil {
		t.Fatal("expected error for an undecodable transport response")
	}
}

func TestExtractAssumptions_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletionResponse{ID: "chatcmpl-empty"})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	if _, err := p.ExtractAssumptions(context.Background(), "p", "r"); err == nil {
		t.Fatal("expected error when the backend returns no choices")
	}
}

func TestExtractAssumptions_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background connection
		// read; otherwise it never observes the client's cancellation and
		// r.Context() is never done, deadlocking srv.Close.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	if _, err := p.ExtractAssumptions(ctx, "p", "r"); err == nil {
		t.Fatal("expected error after context cancellation")
	}
}
