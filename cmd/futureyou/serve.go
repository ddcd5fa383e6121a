package main

import (
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "futureyou/internal/adapters/http"
	"futureyou/internal/observability"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the simulator as an HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}

			svc, err := newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			handler := httpadapter.NewServer(svc)
			addr := ":" + cfg.Port
			observability.Logger().Info("http server listening", "addr", addr)
			return http.ListenAndServe(addr, handler)
		},
	}
	cmd.Flags().StringP("port", "p", "", "port to listen on (default 8080)")
	addModelFlags(cmd)
	return cmd
}
