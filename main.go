package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sleeptimer/internal/config"
	"sleeptimer/internal/logging"
	"sleeptimer/internal/shutdown"
)

const appVersion = "0.2.0"

// app carries what every subcommand needs once flags and config are read.
type app struct {
	cfgPath  string
	logLevel string
	dryRun   bool

	cfg *config.Config
	log *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "sleeptimer",
		Short:         "Shutdown timer, reminder and bedtime calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "sleeptimer v%s\n", appVersion)
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("sleeptimer v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (default: <user config dir>/sleeptimer/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, "Log shutdown commands instead of running them")

	cmd.AddCommand(
		newTimerCmd(a, "shutdown", "Shut the computer down after <minutes>"),
		newTimerCmd(a, "remind", "Show a reminder after <minutes>"),
		newAbortCmd(a),
		newBedtimeCmd(a),
		newServeCmd(a),
		newTUICmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context(), a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.Shutdown.DryRun = a.dryRun
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	slog.SetDefault(logger)

	a.cfg = cfg
	a.log = logger
	return nil
}

func (a *app) shutdowner() *shutdown.Commander {
	return shutdown.New(
		shutdown.WithDryRun(a.cfg.Shutdown.DryRun),
		shutdown.WithLogger(a.log),
	)
}

// quietLogger is for full-screen front-ends that own the terminal.
func (a *app) quietLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger, err := logging.New(f, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
