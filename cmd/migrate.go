package main

import (
	"fmt"
	"log/slog"

	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.DB.Automigrate = true
		db, err := store.New(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("couldn't migrate database: %w", err)
		}
		db.Close()
		slog.Default().InfoContext(cmd.Context(), "migrations applied")
		return nil
	},
}
