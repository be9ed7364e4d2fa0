package cmd

import (
	"github.com/CPU-commits/Intranet_BCatalog/settings"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Course catalog API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		settings.LoadEnv()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
