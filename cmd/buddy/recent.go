package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbuddy/internal/cli"
	"github.com/Veraticus/budgetbuddy/internal/config"
)

func recentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recently recorded expenses",
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

			expenses, err := store.GetRecentExpenses(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			fmt.Println(cli.RenderExpenses(expenses))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of expenses to show")
	return cmd
}
