// Package llm provides the text-generation and embedding capability behind
// the report pipeline. One Generator contract, interchangeable provider
// implementations selected by configuration.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrGenerationUnavailable indicates the text-generation backend could not
// be reached. Callers must treat it as fatal for the current request.
var ErrGenerationUnavailable = errors.New("text generation backend unavailable")

// Supported provider names for NewGenerator.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Generator produces text for a single prompt. Implementations pin sampling
// temperature to zero so repeated calls with identical input are expected to
// produce near-identical output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder produces vector embeddings for retrieval ranking.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// NewGenerator returns the provider implementation selected by name.
// An empty provider defaults to Gemini, matching the primary backend.
func NewGenerator(provider, googleAPIKey, anthropicAPIKey string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderGemini:
		return NewGeminiClient(googleAPIKey, "")
	case ProviderClaude:
		return NewClaudeClient(anthropicAPIKey, "")
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (want %q or %q)", provider, ProviderGemini, ProviderClaude)
	}
}
