package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/CPU-commits/Intranet_BCatalog/catalog/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Init(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
