// Package registry builds the process-wide provider registry from
// configuration. The registry is constructed once at startup, is
// read-only afterwards, and is the only place that knows which provider
// identifiers exist. Adding a backend is a pure addition: implement
// provider.Provider and add one entry to the builder table.
package registry

import (
	"fmt"
	"sort"

	"github.com/glassos/glassos/pkg/api"
	"github.com/glassos/glassos/pkg/config"
	"github.com/glassos/glassos/pkg/provider"
	"github.com/glassos/glassos/pkg/provider/openai"
)

// builders maps provider identifiers to their constructors. Construction
// must be side-effect free beyond object creation; in particular, no
// network calls.
var builders = map[string]func(cfg *config.Config) (provider.Provider, error){
	"openai": func(cfg *config.Config) (provider.Provider, error) {
		return openai.New(openai.Config{
			APIKey:  cfg.Providers.OpenAI.APIKey,
			Model:   cfg.Providers.OpenAI.Model,
			BaseURL: cfg.Providers.OpenAI.BaseURL,
			Timeout: cfg.Providers.OpenAI.Timeout,
		})
	},
}

// Registry holds constructed provider instances keyed by identifier.
// Immutable after New returns; safe for concurrent use.
type Registry struct {
	providers map[string]provider.Provider
}

// New constructs every known provider from the given configuration.
// It fails closed: if any provider cannot be constructed (for example
// because its credential is missing), the whole registry build fails and
// the process should not come up.
func New(cfg *config.Config) (*Registry, error) {
	providers := make(map[string]provider.Provider, len(builders))

	for name, build := range builders {
		p, err := build(cfg)
		if err != nil {
			return nil, fmt.Errorf("constructing provider %q: %w", name, err)
		}
		providers[name] = p
	}

	return &Registry{providers: providers}, nil
}

// Get returns the provider for the given identifier, or an unknown-provider
// APIError naming it. There is no default substitution.
func (r *Registry) Get(name string) (provider.Provider, *api.APIError) {
	p, ok := r.providers[name]
	if !ok {
		return nil, api.NewUnknownProviderError(name)
	}
	return p, nil
}

// Names returns the sorted list of registered provider identifiers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases all provider resources.
func (r *Registry) Close() error {
	for _, p := range r.providers {
		p.Close()
	}
	return nil
}
