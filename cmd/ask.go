package cmd

import (
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one business question from the command line",
	Long: `Ask a natural language question over the sales dataset and print the
generated report, the SQL query that produced it, and the raw rows.

Requires GOOGLE_API_KEY (or ANTHROPIC_API_KEY with LLM_PROVIDER=claude).

Example:
  salescope ask "How many customers are in Mumbai?"
  salescope ask "Total sales per city in the last quarter"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := AskQuestion(dataDir, args[0]); err != nil {
			HandleError(err, "Failed to answer question")
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
