package cmd

import (
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the schema knowledge corpus",
	Long: `Print the schema descriptions the retriever ranks and the query
synthesizer embeds into its prompts. Useful for checking what the model is
told about the dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := ShowSchema(); err != nil {
			HandleError(err, "Failed to print schema")
		}
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
