package rag

import "errors"

var (
	// ErrRetrieverUnavailable indicates the embedding backend behind the
	// context retriever could not be reached. Fatal for the request.
	ErrRetrieverUnavailable = errors.New("context retriever unavailable")

	// ErrNoValidQuery is returned once the attempt budget is spent without a
	// single successful execution. The wrapped message carries the last
	// execution error for diagnostics.
	ErrNoValidQuery = errors.New("no valid query produced within the attempt budget")

	// ErrSummarizationFailed indicates the query succeeded but the prose
	// report could not be generated. The rows and the winning query are
	// still valid and are returned alongside this error.
	ErrSummarizationFailed = errors.New("result summarization failed")
)
