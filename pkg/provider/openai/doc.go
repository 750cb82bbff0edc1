// Package openai implements provider.Provider against the OpenAI Chat
// Completions API (and any compatible backend). Extraction is three steps,
// each independently testable: BuildPrompt constructs the instruction text,
// the client sends one completion request, and ParseAssumptions decodes
// the model's semi-structured reply.
package openai
