package cmd

import (
	"github.com/marketref/candle-admin/internal/bootstrap"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Candle admin API server",
	Long: `Serves the read-only JSON API over the market reference data:
candle listings, candle statistics, metadata for the chart selectors and
the tracked exchange configurations.`,
	Run: bootstrap.StartAPIServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
