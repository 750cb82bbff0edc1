// Package http serves the GlassOS extraction API over HTTP. The adapter
// translates between the wire format and the extraction service; all
// domain decisions (provider resolution, extraction, error taxonomy)
// live below it.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/glassos/glassos/pkg/api"
	"github.com/glassos/glassos/pkg/provider"
)

// ProviderResolver resolves provider identifiers to provider instances.
// Implemented by registry.Registry; small so tests can substitute fakes.
type ProviderResolver interface {
	Get(name string) (provider.Provider, *api.APIError)
}

// Extractor runs an extraction against a resolved provider.
// Implemented by extract.Service.
type Extractor interface {
	Extract(ctx context.Context, prov provider.Provider, userPrompt, aiResponse string) ([]string, error)
}

// Adapter routes extraction requests and serializes responses.
type Adapter struct {
	providers ProviderResolver
	extractor Extractor
	mux       *http.ServeMux
	config    Config
}

// Config holds configuration for the HTTP adapter.
type Config struct {
	MaxBodySize int64
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		MaxBodySize: 1 << 20, // 1 MB
	}
}

// NewAdapter creates an HTTP adapter over the given resolver and extractor.
func NewAdapter(providers ProviderResolver, extractor Extractor, cfg Config) *Adapter {
	a := &Adapter{
		providers: providers,
		extractor: extractor,
		mux:       http.NewServeMux(),
		config:    cfg,
	}

	a.mux.HandleFunc("POST /assumptions/extract-assumptions", a.handleExtractAssumptions)
	a.mux.HandleFunc("GET /healthz", a.handleHealthz)

	return a
}

// Handler returns the http.Handler for this adapter, without middleware.
// Use this to integrate with an http.Server or test with httptest.
func (a *Adapter) Handler() http.Handler {
	return a.mux
}

// handleExtractAssumptions handles POST /assumptions/extract-assumptions.
func (a *Adapter) handleExtractAssumptions(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct != "" && ct != "application/json" {
		WriteErrorResponse(w,
			api.NewInvalidRequestError("content_type", "Content-Type must be application/json"),
			http.StatusUnsupportedMediaType,
		)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteErrorResponse(w,
				api.NewInvalidRequestError("body", fmt.Sprintf("request body too large (max %d bytes)", a.config.MaxBodySize)),
				http.StatusRequestEntityTooLarge,
			)
			return
		}
		WriteErrorResponse(w,
			api.NewInvalidRequestError("body", "failed to read request body"),
			http.StatusBadRequest,
		)
		return
	}

	req, apiErr := api.DecodeExtractionRequest(body)
	if apiErr != nil {
		WriteAPIError(w, apiErr)
		return
	}

	// Resolve the provider before doing any work. An unknown identifier
	// is rejected here; the extractor is never invoked for it.
	prov, apiErr := a.providers.Get(req.Provider)
	if apiErr != nil {
		WriteAPIError(w, apiErr)
		return
	}

	assumptions, err := a.extractor.Extract(r.Context(), prov, req.Prompt, req.Response)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.NewAssumptionList(assumptions))
}

// handleHealthz handles GET /healthz.
func (a *Adapter) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
