package cmd

import (
	"github.com/spf13/cobra"
)

var (
	dataDir string
	rootCmd = &cobra.Command{
		Use:   "salescope",
		Short: "Salescope - Natural-language reporting over sales data",
		Long: `Salescope answers business questions over the sales dataset by
generating a SQL query with an LLM, executing it against DuckDB, retrying
with self-correction on failure, and summarizing the result in plain language.

Use 'serve' to start the HTTP API or 'ask' for a one-shot question.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data/", "Directory holding the DuckDB file and logs")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
