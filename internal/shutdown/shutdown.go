// Package shutdown schedules and cancels the operating system shutdown by
// running the platform's shutdown command.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

var ErrNoCommand = errors.New("no shutdown command for this platform")

// Runner runs a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Commands builds the argv for each operation.
type Commands struct {
	Schedule func(seconds int) []string
	Cancel   []string
}

type Commander struct {
	run      Runner
	dryRun   bool
	log      *slog.Logger
	commands Commands
}

type Option func(*Commander)

func WithRunner(r Runner) Option {
	return func(c *Commander) { c.run = r }
}

// WithDryRun logs commands instead of running them.
func WithDryRun(dry bool) Option {
	return func(c *Commander) { c.dryRun = dry }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Commander) { c.log = l }
}

func WithCommands(cmds Commands) Option {
	return func(c *Commander) { c.commands = cmds }
}

func New(opts ...Option) *Commander {
	c := &Commander{
		run:      ExecRunner,
		log:      slog.Default(),
		commands: PlatformCommands(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schedule asks the OS to shut down after seconds.
func (c *Commander) Schedule(ctx context.Context, seconds int) error {
	if seconds < 1 {
		return fmt.Errorf("shutdown delay must be >= 1s, got %d", seconds)
	}
	if c.commands.Schedule == nil {
		return ErrNoCommand
	}
	return c.exec(ctx, c.commands.Schedule(seconds))
}

// Cancel asks the OS to drop a pending shutdown. An error means either
// nothing was pending or the cancel failed; the OS does not tell us which.
func (c *Commander) Cancel(ctx context.Context) error {
	return c.exec(ctx, c.commands.Cancel)
}

func (c *Commander) exec(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}
	cmdline := strings.Join(argv, " ")
	if c.dryRun {
		c.log.Info("dry run, not executing", "command", cmdline)
		return nil
	}

	out, err := c.run(ctx, argv[0], argv[1:]...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", cmdline, err)
		}
		return fmt.Errorf("%s: %w: %s", cmdline, err, msg)
	}
	c.log.Debug("shutdown command succeeded", "command", cmdline)
	return nil
}

// WarnIfUnprivileged logs a hint when the process probably lacks the right
// to shut the machine down, and returns the hint ("" when elevated).
func WarnIfUnprivileged(logger *slog.Logger) string {
	if Elevated() {
		return ""
	}
	hint := PrivilegeHint()
	logger.Warn("not running elevated, scheduling a shutdown may fail", "hint", hint)
	return hint
}

func minutesCeil(seconds int) int {
	return (seconds + 59) / 60
}
