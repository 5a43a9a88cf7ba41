package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"salescope/internal/llm"
)

// Summarizer turns a raw result set into a plain-language report.
type Summarizer struct {
	generator llm.Generator
}

func NewSummarizer(generator llm.Generator) *Summarizer {
	return &Summarizer{generator: generator}
}

// Summarize serializes the rows to indented JSON (map keys are sorted, so
// the form is stable for identical data) and asks the generator for a prose
// answer. Any failure is reported as ErrSummarizationFailed.
func (s *Summarizer) Summarize(ctx context.Context, question string, rows []map[string]any) (string, error) {
	if rows == nil {
		rows = []map[string]any{}
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing rows: %v: %w", err, ErrSummarizationFailed)
	}

	report, err := s.generator.Generate(ctx, summaryPrompt(question, string(payload)))
	if err != nil {
		return "", fmt.Errorf("generating report: %v: %w", err, ErrSummarizationFailed)
	}
	return strings.TrimSpace(report), nil
}
