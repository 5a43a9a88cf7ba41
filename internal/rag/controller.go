package rag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// controllerState tracks where one request is in the synthesis/execution/
// correction cycle.
type controllerState int

const (
	stateSynthesizing controllerState = iota
	stateExecuting
	stateCorrecting
	stateSucceeded
	stateExhausted
)

const (
	// emptyQueryMessage is the synthetic failure recorded when the generator
	// returns no usable text. The executor is never called in that case.
	emptyQueryMessage = "generator returned no usable query"

	defaultMaxAttempts = 3
	defaultTopK        = 2
)

// ControllerConfig carries the tunables of the retry loop.
type ControllerConfig struct {
	// MaxAttempts bounds the total number of execution cycles per request.
	// Defaults to 3 when zero or negative.
	MaxAttempts int
	// TopK is the number of schema snippets retrieved for the first attempt.
	// Defaults to 2 when zero or negative.
	TopK int
	// Logger receives per-attempt diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// Controller orchestrates synthesis, execution, and correction across a
// bounded number of attempts. Requests are independent; the controller holds
// no per-request state and is safe for concurrent use.
type Controller struct {
	retriever   *Retriever
	synthesizer *Synthesizer
	corrector   *Corrector
	summarizer  *Summarizer
	executor    QueryExecutor
	maxAttempts int
	topK        int
	logger      *slog.Logger
}

func NewController(retriever *Retriever, synthesizer *Synthesizer, corrector *Corrector,
	summarizer *Summarizer, executor QueryExecutor, config ControllerConfig) *Controller {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaultMaxAttempts
	}
	if config.TopK <= 0 {
		config.TopK = defaultTopK
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		retriever:   retriever,
		synthesizer: synthesizer,
		corrector:   corrector,
		summarizer:  summarizer,
		executor:    executor,
		maxAttempts: config.MaxAttempts,
		topK:        config.TopK,
		logger:      config.Logger,
	}
}

// GenerateAndExecute runs the full pipeline for one question.
//
// State machine: Synthesizing -> Executing -> (Succeeded | Correcting ->
// Executing -> ... | Exhausted). Only execution failures are recovered
// locally, by looping into a correction; retriever and generator
// unavailability abort immediately. On success the summarizer produces the
// report; if it fails, the populated FinalResult is still returned alongside
// ErrSummarizationFailed.
func (c *Controller) GenerateAndExecute(ctx context.Context, question string) (*FinalResult, error) {
	var (
		state   = stateSynthesizing
		query   string
		rows    []map[string]any
		lastErr string
		attempt int
	)

	for {
		switch state {
		case stateSynthesizing:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			schemaContext, err := c.retriever.Retrieve(ctx, question, c.topK)
			if err != nil {
				c.logger.Error("context retrieval failed", "question", question, "error", err)
				return nil, err
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			query, err = c.synthesizer.Synthesize(ctx, question, schemaContext)
			if err != nil {
				c.logger.Error("query synthesis failed", "attempt", attempt+1, "error", err)
				return nil, err
			}
			state = stateExecuting

		case stateExecuting:
			if strings.TrimSpace(query) == "" {
				lastErr = emptyQueryMessage
				c.logger.Warn("attempt produced no usable query", "attempt", attempt+1)
			} else {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				result, err := c.executor.ExecuteQuery(ctx, query)
				if err == nil {
					rows = result
					state = stateSucceeded
					continue
				}
				lastErr = err.Error()
				c.logger.Warn("query execution failed", "attempt", attempt+1, "error", lastErr)
			}

			attempt++
			if attempt >= c.maxAttempts {
				state = stateExhausted
			} else {
				state = stateCorrecting
			}

		case stateCorrecting:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			corrected, err := c.corrector.Correct(ctx, question, query, lastErr)
			if err != nil {
				c.logger.Error("query correction failed", "attempt", attempt+1, "error", err)
				return nil, err
			}
			query = corrected
			state = stateExecuting

		case stateSucceeded:
			c.logger.Info("query executed successfully", "attempt", attempt+1, "rows", len(rows))
			final := &FinalResult{Rows: rows, Query: query}
			report, err := c.summarizer.Summarize(ctx, question, rows)
			if err != nil {
				c.logger.Error("summarization failed", "attempt", attempt+1, "error", err)
				return final, err
			}
			final.Report = report
			return final, nil

		case stateExhausted:
			c.logger.Error("attempt budget exhausted", "attempts", attempt, "last_error", lastErr)
			return nil, fmt.Errorf("%w: %d attempts, last error: %s", ErrNoValidQuery, attempt, lastErr)
		}
	}
}
