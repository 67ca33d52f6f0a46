package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbuddy/internal/cli"
)

func processCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "process <text>",
		Short: "Process a natural-language expense description",
		Long: `Process runs a single expense description through the pipeline and
prints the result. For example:

  buddy process "add 30 dollars for groceries"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, _, cleanup, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			text := strings.Join(args, " ")
			resp := agent.Process(cmd.Context(), text, userID)
			fmt.Println(cli.RenderResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "me", "session identifier for clarification context")
	return cmd
}
