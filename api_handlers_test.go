package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salescope/internal/rag"
)

// fakeReportService returns a canned result or error and records the question.
type fakeReportService struct {
	result    *rag.FinalResult
	err       error
	questions []string
}

func (f *fakeReportService) GenerateAndExecute(_ context.Context, question string) (*rag.FinalResult, error) {
	f.questions = append(f.questions, question)
	return f.result, f.err
}

func postReport(t *testing.T, handler *APIHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/generate-report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.GenerateReport(w, req)
	return w
}

func TestGenerateReportSuccess(t *testing.T) {
	service := &fakeReportService{result: &rag.FinalResult{
		Rows:   []map[string]any{{"count": int64(12)}},
		Query:  "SELECT COUNT(*) AS count FROM main.customers WHERE city = 'Mumbai'",
		Report: "There are 12 customers in Mumbai.",
	}}
	handler := &APIHandler{Reports: service}

	w := postReport(t, handler, `{"query": "How many customers are in Mumbai?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Report != "There are 12 customers in Mumbai." {
		t.Errorf("unexpected report: %q", resp.Report)
	}
	if !strings.Contains(resp.GeneratedSQL, "main.customers") {
		t.Errorf("unexpected generated_sql: %q", resp.GeneratedSQL)
	}
	if !strings.Contains(resp.Result, `"count": 12`) {
		t.Errorf("unexpected result payload: %q", resp.Result)
	}
	if len(service.questions) != 1 || service.questions[0] != "How many customers are in Mumbai?" {
		t.Errorf("question not passed through: %v", service.questions)
	}
}

func TestGenerateReportRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"query": `},
		{"missing query", `{}`},
		{"blank query", `{"query": "   "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeReportService{}
			handler := &APIHandler{Reports: service}

			w := postReport(t, handler, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if len(service.questions) != 0 {
				t.Errorf("pipeline must not run for bad requests, got %v", service.questions)
			}
		})
	}
}

func TestGenerateReportExhaustedAttempts(t *testing.T) {
	service := &fakeReportService{err: fmt.Errorf("%w: 3 attempts, last error: syntax error", rag.ErrNoValidQuery)}
	handler := &APIHandler{Reports: service}

	w := postReport(t, handler, `{"query": "anything"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.Contains(resp["error"], "could not generate a valid query") {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestGenerateReportSummarizationFailureExposesArtifacts(t *testing.T) {
	service := &fakeReportService{
		result: &rag.FinalResult{
			Rows:  []map[string]any{{"total": int64(98000)}},
			Query: "SELECT SUM(sale_amount) AS total FROM main.sales",
		},
		err: fmt.Errorf("generating report: timeout: %w", rag.ErrSummarizationFailed),
	}
	handler := &APIHandler{Reports: service}

	w := postReport(t, handler, `{"query": "What is total revenue?"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	// The rows and query survive even though the report does not.
	if !strings.Contains(resp["generated_sql"], "SUM(sale_amount)") {
		t.Errorf("missing generated_sql: %v", resp)
	}
	if !strings.Contains(resp["result"], `"total": 98000`) {
		t.Errorf("missing result rows: %v", resp)
	}
}

func TestMarshalRows(t *testing.T) {
	if got := marshalRows(nil); got != "[]" {
		t.Errorf("nil rows should serialize as empty array, got %q", got)
	}
	got := marshalRows([]map[string]any{{"b": 2, "a": 1}})
	// Keys come out sorted, so the form is stable across runs.
	if !strings.Contains(got, "\"a\": 1") || strings.Index(got, "\"a\"") > strings.Index(got, "\"b\"") {
		t.Errorf("unexpected serialization: %q", got)
	}
}
