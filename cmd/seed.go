package main

import (
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo orders into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.DB.Automigrate = true
		db, err := store.New(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("couldn't connect to mysql: %w", err)
		}
		defer db.Close()
		return db.Seeder().SeedDemo(cmd.Context(), time.Now())
	},
}
