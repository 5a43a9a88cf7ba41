package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	port     int
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP server exposing the reporting API.

POST /generate-report with {"query": "..."} returns the generated report,
the SQL that produced it, and the raw result rows.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Starting Salescope server...\n")
			fmt.Printf("Data directory: %s\n", dataDir)

			if err := StartWebServer(dataDir, port); err != nil {
				HandleError(err, "Server failed")
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on")
}
