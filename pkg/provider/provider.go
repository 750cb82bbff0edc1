package provider

import "context"

// Provider abstracts a reasoning-extraction backend. Given a user prompt
// and the AI response to it, an implementation reconstructs the implicit
// assumptions the AI appears to have made.
//
// Implementations must be safe for concurrent use by multiple goroutines
// and hold no per-call mutable state.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai").
	Name() string

	// ExtractAssumptions performs the extraction. A nil error with an
	// empty slice means the backend found nothing (or its output could
	// not be parsed); a non-nil error means the call itself failed.
	// Callers can rely on the two outcomes being distinguishable.
	ExtractAssumptions(ctx context.Context, userPrompt, aiResponse string) ([]string, error)

	// Close releases provider resources (HTTP clients, connections).
	Close() error
}
