package rag

import (
	"context"

	"salescope/internal/llm"
)

// Corrector produces the next candidate query from a concrete failure.
// The correction prompt carries the question, the failed query, and the
// error message; retrieved schema context is not resent.
type Corrector struct {
	generator llm.Generator
}

func NewCorrector(generator llm.Generator) *Corrector {
	return &Corrector{generator: generator}
}

func (c *Corrector) Correct(ctx context.Context, question, failedQuery, errorMessage string) (string, error) {
	return c.generator.Generate(ctx, correctionPrompt(question, failedQuery, errorMessage))
}
