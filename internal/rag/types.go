// Package rag implements the query-generation-with-self-correction pipeline:
// retrieval-augmented SQL synthesis, execution-error driven correction under
// a bounded attempt budget, and prose summarization of the winning result.
package rag

import (
	"context"

	"salescope/internal/knowledge"
)

// Context is the ordered set of schema snippets retrieved for one question,
// highest similarity first.
type Context []knowledge.Snippet

// FinalResult is the artifact set of one successful request: the rows the
// winning query produced, the query text itself, and the prose report.
type FinalResult struct {
	Rows   []map[string]any
	Query  string
	Report string
}

// QueryExecutor runs a query string against the sales store. Any executor
// error, transport or semantic, is treated identically: it becomes the
// failure message fed to the next correction attempt.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error)
}
