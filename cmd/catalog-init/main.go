// Command catalog-init populates both backing stores with the sample catalog.
// Run it once after cloning; the server reads whatever it wrote.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HarounMinhas/product-catalog/internal/seed"
	"github.com/HarounMinhas/product-catalog/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		databasePath string
		csvPath      string
	)

	cmd := &cobra.Command{
		Use:          "catalog-init",
		Short:        "Create and seed the product catalog backing stores",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := logger.Must(logger.New())
			defer func() { _ = log.Sync() }()

			if err := seed.Database(databasePath); err != nil {
				log.Error("failed seeding database", zap.String("path", databasePath), zap.Error(err))
				return err
			}
			log.Info("database seeded",
				zap.String("path", databasePath),
				zap.Int("products", len(seed.SampleProducts)))

			if err := seed.CSV(csvPath); err != nil {
				log.Error("failed seeding csv file", zap.String("path", csvPath), zap.Error(err))
				return err
			}
			log.Info("csv file seeded",
				zap.String("path", csvPath),
				zap.Int("products", len(seed.SampleProducts)))

			return nil
		},
	}

	cmd.Flags().StringVar(&databasePath, "database", "data/products.db", "path of the SQLite database to create")
	cmd.Flags().StringVar(&csvPath, "csv", "data/products.csv", "path of the CSV file to create")

	return cmd
}
