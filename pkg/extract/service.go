package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/glassos/glassos/pkg/debug"
	"github.com/glassos/glassos/pkg/observability"
	"github.com/glassos/glassos/pkg/provider"
)

// Service runs extraction requests against a resolved provider.
type Service struct {
	logger *slog.Logger
}

// NewService creates an extraction service. A nil logger falls back to
// the process default.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Extract asks the given provider to infer the assumptions the AI
// response makes about the user. The returned slice preserves the
// provider's ordering. Provider failures are returned as errors; a
// successful call with zero assumptions returns an empty slice and a
// nil error.
func (s *Service) Extract(ctx context.Context, prov provider.Provider, userPrompt, aiResponse string) ([]string, error) {
	name := prov.Name()

	debug.Log("extract", "starting extraction",
		"provider", name,
		"prompt_len", len(userPrompt),
		"response_len", len(aiResponse))

	start := time.Now()
	assumptions, err := prov.ExtractAssumptions(ctx, userPrompt, aiResponse)
	elapsed := time.Since(start)

	observability.ProviderLatency.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(name, "error").Inc()
		s.logger.Error("extraction failed",
			"provider", name,
			"duration", elapsed,
			"error", err)
		return nil, err
	}

	observability.ProviderRequestsTotal.WithLabelValues(name, "ok").Inc()
	observability.AssumptionsExtractedTotal.WithLabelValues(name).Add(float64(len(assumptions)))

	s.logger.Info("extraction complete",
		"provider", name,
		"assumptions", len(assumptions),
		"duration", elapsed)

	return assumptions, nil
}
