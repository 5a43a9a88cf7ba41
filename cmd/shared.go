package cmd

import (
	"fmt"
	"os"
)

// These variables are set by the main package, which owns the database and
// LLM wiring. The cmd package stays free of those dependencies.
var (
	StartWebServer func(dataDir string, port int) error
	AskQuestion    func(dataDir, question string) error
	ReseedData     func(dataDir string) error
	RunQuery       func(dataDir, query string) error
	ShowSchema     func() error
)

// HandleError prints error and exits
func HandleError(err error, message string) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
	os.Exit(1)
}
