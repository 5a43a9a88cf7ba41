package rag

import (
	"context"

	"salescope/internal/llm"
)

// Synthesizer produces the first candidate query of a request from schema
// context and the question. The generated text is returned verbatim;
// malformed output is detected downstream at execution.
type Synthesizer struct {
	generator llm.Generator
}

func NewSynthesizer(generator llm.Generator) *Synthesizer {
	return &Synthesizer{generator: generator}
}

func (s *Synthesizer) Synthesize(ctx context.Context, question string, schemaContext Context) (string, error) {
	return s.generator.Generate(ctx, synthesisPrompt(schemaContext, question))
}
