package cmd

import (
	"context"
	"fmt"

	"inventory-backend/config"
	"inventory-backend/logger"
	"inventory-backend/services"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all records with the sample data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.Driver == config.DriverMemory {
			return fmt.Errorf("seeding the memory store from the CLI has no lasting effect; use POST /api/seed")
		}

		a, err := openApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.migrate(); err != nil {
			return err
		}

		counts, err := services.NewSeedService(a.collections).Seed(context.Background())
		if err != nil {
			return err
		}
		log := logger.WithComponent("seed")
		log.Info().
			Int("products", counts.Products).
			Int("customers", counts.Customers).
			Int("companies", counts.Companies).
			Int("invoices", counts.Invoices).
			Msg("Database seeded successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
