package cmd

import (
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a raw SQL query against the sales database",
	Long: `Execute a SQL query directly, bypassing the LLM pipeline, and print
the rows as JSON. Handy for inspecting the seeded dataset.

Examples:
  salescope query "SELECT city, COUNT(*) FROM main.customers GROUP BY city"
  salescope query "SELECT * FROM main.sales LIMIT 5"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunQuery(dataDir, args[0]); err != nil {
			HandleError(err, "Query failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
