package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbuddy/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  `Serve exposes the expense pipeline over HTTP (POST /v1/expenses).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, cfg, cleanup, err := buildAgent(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv, err := server.New(agent, server.Config{Addr: addr, Mode: cfg.Server.Mode})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
