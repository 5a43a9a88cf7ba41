package rag

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSummarizeSerializesRowsStably(t *testing.T) {
	rows := []map[string]any{
		{"name": "Priya Sharma", "total": int64(4200), "city": "Mumbai"},
		{"name": "Rahul Gupta", "total": int64(3100), "city": "Delhi"},
	}

	var prompts []string
	for i := 0; i < 2; i++ {
		gen := &scriptedGenerator{outputs: []string{"Priya Sharma leads with 4200."}}
		summarizer := NewSummarizer(gen)
		if _, err := summarizer.Summarize(context.Background(), "Who is the top customer?", rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prompts = append(prompts, gen.prompts[0])
	}

	// Map keys are sorted during serialization, so both prompts are identical.
	if prompts[0] != prompts[1] {
		t.Errorf("serialization is unstable:\nfirst:  %q\nsecond: %q", prompts[0], prompts[1])
	}
	if !strings.Contains(prompts[0], `"city": "Mumbai"`) {
		t.Errorf("prompt missing serialized row data: %q", prompts[0])
	}
}

func TestSummarizeEmptyRowsSendsEmptyArray(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{"I couldn't find an answer."}}
	summarizer := NewSummarizer(gen)

	report, err := summarizer.Summarize(context.Background(), "Any sales on Mars?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != "I couldn't find an answer." {
		t.Errorf("unexpected report: %q", report)
	}
	if !strings.Contains(gen.prompts[0], "[]") {
		t.Errorf("prompt should carry an empty JSON array: %q", gen.prompts[0])
	}
}

func TestSummarizeWrapsGeneratorFailure(t *testing.T) {
	gen := &scriptedGenerator{errs: []error{errors.New("model timeout")}}
	summarizer := NewSummarizer(gen)

	_, err := summarizer.Summarize(context.Background(), "anything", []map[string]any{{"n": 1}})
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Errorf("expected ErrSummarizationFailed, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "model timeout") {
		t.Errorf("error should carry the cause, got %v", err)
	}
}

func TestSummarizeTrimsReport(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{"\n  Revenue grew 8% last quarter.  \n"}}
	summarizer := NewSummarizer(gen)

	report, err := summarizer.Summarize(context.Background(), "How is revenue trending?", []map[string]any{{"growth": 8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != "Revenue grew 8% last quarter." {
		t.Errorf("report not trimmed: %q", report)
	}
}
