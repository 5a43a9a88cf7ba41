package cmd

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the sample sales dataset",
	Long: `Drop and recreate the customers and sales tables with the sample
dataset. The data generator uses a fixed seed, so reseeding always produces
the same tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := ReseedData(dataDir); err != nil {
			HandleError(err, "Failed to reseed database")
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
