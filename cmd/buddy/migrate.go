package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbuddy/internal/config"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Printf("Database ready at %s\n", cfg.Database.Path)
			return nil
		},
	}
}
