package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ServerConfig holds configuration for the web server
type ServerConfig struct {
	Port    int
	Reports ReportService
}

// StartServer initializes and starts the HTTP server
func StartServer(config ServerConfig) error {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	apiHandler := &APIHandler{Reports: config.Reports}
	r.Post("/generate-report", apiHandler.GenerateReport)

	addr := fmt.Sprintf(":%d", config.Port)
	if logger != nil {
		logger.Info("Starting server", "addr", addr)
	}
	fmt.Printf("Listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, r)
}
