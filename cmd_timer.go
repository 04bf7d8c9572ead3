package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sleeptimer/internal/countdown"
	"sleeptimer/internal/shutdown"
	"sleeptimer/internal/term"
)

func newTimerCmd(a *app, name, short string) *cobra.Command {
	mode, err := countdown.ParseMode(name)
	if err != nil {
		panic(err)
	}

	return &cobra.Command{
		Use:   name + " <minutes>",
		Short: short,
		Long: short + ".\n\nThe countdown is drawn until it ends; Ctrl-C aborts it" +
			" and cancels a scheduled shutdown.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == countdown.ModeShutdown && !a.cfg.Shutdown.DryRun {
				if hint := shutdown.WarnIfUnprivileged(a.log); hint != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s if scheduling fails.\n", hint)
				}
			}
			return term.Run(cmd.Context(), cmd.OutOrStdout(), a.shutdowner(), a.log, args[0], mode)
		},
	}
}

func newAbortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Cancel a scheduled shutdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shutdowner().Cancel(cmd.Context()); err != nil {
				a.log.Debug("cancel failed", "error", err)
				return fmt.Errorf("no scheduled shutdown found or cancel failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Scheduled shutdown canceled.")
			return nil
		},
	}
}
