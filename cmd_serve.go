package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sleeptimer/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bedtime calculator as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Web.Port
			}
			if port <= 0 {
				return fmt.Errorf("--port must be > 0")
			}

			srv := web.NewServer(a.log,
				web.DefaultsFor(a.cfg.Bedtime.Wake, a.cfg.Bedtime.Hours),
				web.WithVersion("v"+appVersion),
				web.WithAnnounce(cmd.OutOrStdout()),
			)
			return srv.ListenAndServe(cmd.Context(), fmt.Sprintf(":%d", port))
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config, 8585)")
	return cmd
}
