package cmd

import (
	"context"
	"time"

	"github.com/CPU-commits/Intranet_BCatalog/catalog/server"
	"github.com/CPU-commits/Intranet_BCatalog/db"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/settings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the unique indexes of the catalog collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsData := settings.GetSettings()
		logger, err := server.NewLogger(settingsData.IsProd())
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		conn, err := db.NewConnection(ctx, settingsData.MONGO_CONNECTION, settingsData.MONGO_DB)
		if err != nil {
			return err
		}
		defer conn.Disconnect(context.Background())

		names, err := db.EnsureIndexes(ctx, conn.Database(), models.UniqueIndexes)
		if err != nil {
			return err
		}
		logger.Info("indexes ready", zap.Strings("indexes", names))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
