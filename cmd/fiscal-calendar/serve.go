package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/fiscal-calendar/internal/config"
	"github.com/username/fiscal-calendar/internal/server"
)

func serveCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fiscal calendar HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if listenAddr != "" {
				cfg.Server.ListenAddr = listenAddr
			}

			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			srv := server.New(&cfg.Server, converter, logger)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides server.listen_addr)")

	return cmd
}
