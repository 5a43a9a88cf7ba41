package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"salescope/cmd"
	"salescope/internal/knowledge"
	"salescope/internal/llm"
	"salescope/internal/rag"
)

var logger *slog.Logger

// setupLogger creates and configures the application logger
func setupLogger(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	logPath := filepath.Join(dataDir, "err.log")

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Create JSON handler for structured logging
	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})

	logger = slog.New(handler)
	logger.Info("Application started", "version", "1.0", "data_dir", dataDir)

	return nil
}

func main() {
	// Load .env before any configuration is read.
	_ = godotenv.Load()

	cmd.StartWebServer = runServe
	cmd.AskQuestion = runAsk
	cmd.ReseedData = runReseed
	cmd.RunQuery = runQuery
	cmd.ShowSchema = runSchema

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildPipeline constructs the full report pipeline: DuckDB executor, LLM
// provider, retriever, and retry controller. The caller owns the returned DB.
func buildPipeline(ctx context.Context, dataDir string) (*rag.Controller, *DB, error) {
	if err := setupLogger(dataDir); err != nil {
		return nil, nil, err
	}

	db, err := NewDB(dataDir)
	if err != nil {
		return nil, nil, err
	}

	config := LoadConfig()
	generator, err := llm.NewGenerator(config.Provider, config.GoogleAPIKey, config.AnthropicAPIKey)
	if err != nil {
		db.Close()
		logger.Error("LLM initialization failed", "error", err, "provider", config.Provider)
		return nil, nil, err
	}

	// Retrieval embeddings always come from Gemini; when it is also the
	// generation provider, one client serves both roles.
	embedder, ok := generator.(llm.Embedder)
	if !ok {
		gemini, err := llm.NewGeminiClient(config.GoogleAPIKey, "")
		if err != nil {
			db.Close()
			logger.Error("Embedding backend initialization failed", "error", err)
			return nil, nil, err
		}
		embedder = gemini
	}

	retriever, err := rag.NewRetriever(ctx, embedder, knowledge.Corpus())
	if err != nil {
		db.Close()
		logger.Error("Retriever initialization failed", "error", err)
		return nil, nil, err
	}

	controller := rag.NewController(
		retriever,
		rag.NewSynthesizer(generator),
		rag.NewCorrector(generator),
		rag.NewSummarizer(generator),
		db,
		rag.ControllerConfig{
			MaxAttempts: config.MaxAttempts,
			TopK:        config.TopK,
			Logger:      logger,
		},
	)

	return controller, db, nil
}

func runServe(dataDir string, port int) error {
	ctx := context.Background()
	controller, db, err := buildPipeline(ctx, dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	return StartServer(ServerConfig{Port: port, Reports: controller})
}

func runAsk(dataDir, question string) error {
	ctx := context.Background()
	controller, db, err := buildPipeline(ctx, dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	final, err := controller.GenerateAndExecute(ctx, question)
	if err != nil {
		if final != nil {
			// Summarization failed but the query and rows are valid.
			fmt.Printf("Report unavailable: %v\n\nQuery:\n%s\n\nResult:\n%s\n",
				err, final.Query, marshalRows(final.Rows))
			return nil
		}
		return err
	}

	fmt.Printf("%s\n\nQuery:\n%s\n\nResult:\n%s\n", final.Report, final.Query, marshalRows(final.Rows))
	return nil
}

func runReseed(dataDir string) error {
	if err := setupLogger(dataDir); err != nil {
		return err
	}

	db, err := NewDB(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reseed(); err != nil {
		return err
	}
	fmt.Printf("Sample data reseeded: %d customers, %d sales\n", customerCount, saleCount)
	return nil
}

func runQuery(dataDir, query string) error {
	if err := setupLogger(dataDir); err != nil {
		return err
	}

	db, err := NewDB(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.ExecuteQuery(context.Background(), query)
	if err != nil {
		return err
	}
	fmt.Println(marshalRows(rows))
	return nil
}

func runSchema() error {
	for i, snippet := range knowledge.Corpus() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("--- %s ---\n%s\n", snippet.Name, snippet.Text)
	}
	return nil
}
