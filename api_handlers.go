package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"salescope/internal/rag"
)

// ReportService produces a final report for one natural-language question.
type ReportService interface {
	GenerateAndExecute(ctx context.Context, question string) (*rag.FinalResult, error)
}

// APIHandler handles JSON API requests
type APIHandler struct {
	Reports ReportService
}

// ReportRequest is the inbound body of POST /generate-report.
type ReportRequest struct {
	Query string `json:"query"`
}

// ReportResponse carries the prose report, the query that produced the rows,
// and the rows serialized as JSON text.
type ReportResponse struct {
	Report       string `json:"report"`
	GeneratedSQL string `json:"generated_sql"`
	Result       string `json:"result"`
}

// GenerateReport handles the main reporting endpoint.
func (h *APIHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "query is required",
		})
		return
	}

	final, err := h.Reports.GenerateAndExecute(r.Context(), req.Query)
	if err != nil {
		if logger != nil {
			logger.Error("Report generation failed", "error", err, "query", req.Query)
		}
		switch {
		case errors.Is(err, rag.ErrSummarizationFailed) && final != nil:
			// The query succeeded; expose its artifacts alongside the error.
			respondJSON(w, http.StatusInternalServerError, map[string]string{
				"error":         "report summarization failed",
				"generated_sql": final.Query,
				"result":        marshalRows(final.Rows),
			})
		case errors.Is(err, rag.ErrNoValidQuery):
			respondJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "Unable to get data at this time. The AI agent could not generate a valid query after multiple attempts.",
			})
		default:
			respondJSON(w, http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		return
	}

	respondJSON(w, http.StatusOK, ReportResponse{
		Report:       final.Report,
		GeneratedSQL: final.Query,
		Result:       marshalRows(final.Rows),
	})
}

func marshalRows(rows []map[string]any) string {
	if rows == nil {
		rows = []map[string]any{}
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		if logger != nil {
			logger.Error("Failed to serialize result rows", "error", err)
		}
		return "[]"
	}
	return string(out)
}

// respondJSON is a helper function to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		if logger != nil {
			logger.Error("JSON encoding error", "error", err)
		}
	}
}
