package main

import (
	"github.com/spf13/cobra"

	"sleeptimer/internal/shutdown"
	"sleeptimer/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive timer and bedtime calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := a.quietLogger(logFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			var hint string
			if !a.cfg.Shutdown.DryRun {
				hint = shutdown.WarnIfUnprivileged(logger)
			}

			err = tui.Run(cmd.Context(), tui.Options{
				Shutdowner: shutdown.New(
					shutdown.WithDryRun(a.cfg.Shutdown.DryRun),
					shutdown.WithLogger(logger),
				),
				Logger: logger,
				Dark:   a.cfg.UI.Dark,
				Wake:   a.cfg.Bedtime.Wake,
				Hours:  a.cfg.Bedtime.Hours,
				Hint:   hint,
			})
			if cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the TUI runs")
	return cmd
}
