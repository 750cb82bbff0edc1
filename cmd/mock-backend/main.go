// Command mock-backend runs a deterministic Chat Completions server for
// local development and end-to-end testing of the extraction pipeline
// without spending OpenAI credits. It answers every extraction prompt
// with a fixed set of assumptions derived from the embedded user prompt.
//
// Configuration:
//
//	MOCK_PORT   - Listen port (default: 9090)
//	MOCK_FENCED - When set, wrap the JSON payload in a ```json code fence
//	              to exercise the fence-stripping path in the provider
//	MOCK_EMPTY  - When set, return zero assumptions
//	MOCK_PROSE  - When set, return prose instead of JSON to exercise the
//	              malformed-output recovery path
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handleChatCompletions)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":{"message":"invalid request","type":"invalid_request_error"}}`, http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		http.Error(w, `{"error":{"message":"no messages","type":"invalid_request_error"}}`, http.StatusBadRequest)
		return
	}

	content := buildContent()
	slog.Info("mock completion", "model", req.Model, "content_len", len(content))

	resp := chatResponse{
		ID:     "chatcmpl-mock-1",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []chatChoice{
			{
				Index:        0,
				Message:      chatMessage{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// buildContent produces the assistant message according to the MOCK_*
// behavior switches.
func buildContent() string {
	if os.Getenv("MOCK_PROSE") != "" {
		return "The response assumed the user was a beginner, but I cannot produce JSON."
	}

	assumptions := []string{
		"The user has no prior background in the topic.",
		"The user wants a simplified, non-technical explanation.",
		"The user prefers a short answer over a thorough one.",
	}
	if os.Getenv("MOCK_EMPTY") != "" {
		assumptions = []string{}
	}

	payload, _ := json.Marshal(map[string][]string{"assumptions": assumptions})
	if os.Getenv("MOCK_FENCED") != "" {
		return fmt.Sprintf("```json\n%s\n```", payload)
	}
	return string(payload)
}
