package countdown

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Shutdowner schedules and cancels the operating system shutdown.
type Shutdowner interface {
	Schedule(ctx context.Context, seconds int) error
	Cancel(ctx context.Context) error
}

// View is the front-end a Controller reports to.
type View interface {
	SetStatus(text string)
	SetClock(text string)
	SetProgress(p float64)
	SetInputEnabled(enabled bool)
	Notify(title, message string)
}

// Task is a pending callback. Stop reports whether it prevented the call.
type Task interface {
	Stop() bool
}

// Scheduler runs fn once after d on the same event loop the Controller
// methods are called from.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// Controller owns the one countdown of a front-end. All methods, and the
// callbacks it hands to its Scheduler, must run on a single event loop.
type Controller struct {
	shutdowner Shutdowner
	view       View
	sched      Scheduler
	log        *slog.Logger

	state   State
	pending Task
	session string
	onIdle  func()
}

func NewController(shutdowner Shutdowner, view View, sched Scheduler, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		shutdowner: shutdowner,
		view:       view,
		sched:      sched,
		log:        logger,
	}
}

// OnIdle registers fn to run whenever a started countdown ends, by expiry
// or abort.
func (c *Controller) OnIdle(fn func()) {
	c.onIdle = fn
}

func (c *Controller) State() State {
	return c.state
}

// Start parses minutes and begins a countdown. While a countdown runs it
// returns ErrAlreadyRunning and changes nothing.
func (c *Controller) Start(ctx context.Context, minutesText string, mode Mode) error {
	if c.state.Running {
		return ErrAlreadyRunning
	}

	minutes, err := ParseMinutes(minutesText)
	if err == nil && mode == ModeNone {
		err = fmt.Errorf("%w: no mode selected", ErrInvalidInput)
	}
	if err != nil {
		c.log.Debug("countdown rejected", "input", minutesText, "error", err)
		c.view.SetStatus(StatusMessage(err))
		return err
	}

	seconds := minutes * 60
	if mode == ModeShutdown {
		if err := c.shutdowner.Schedule(ctx, seconds); err != nil {
			err = fmt.Errorf("%w: %w", ErrSchedulingFailed, err)
			c.log.Error("failed to schedule shutdown", "seconds", seconds, "error", err)
			c.view.SetStatus(StatusMessage(err))
			return err
		}
	}

	c.stopPending()
	c.state = NewState(minutes, mode)
	c.session = uuid.NewString()
	c.log.Info("countdown started", "session", c.session, "mode", mode.String(), "seconds", seconds)

	c.view.SetInputEnabled(false)
	c.view.SetStatus(startedMessage(mode, minutes))
	c.render()
	c.pending = c.sched.After(TickInterval, c.tick)
	return nil
}

func (c *Controller) tick() {
	c.pending = nil
	if !c.state.Running {
		return
	}

	mode := c.state.Mode
	next, expired := c.state.Tick()
	c.state = next
	c.render()

	if expired {
		c.finish(mode)
		return
	}
	if c.state.Running {
		c.pending = c.sched.After(TickInterval, c.tick)
	}
}

func (c *Controller) finish(mode Mode) {
	minutes := c.state.Total / 60
	c.log.Info("countdown expired", "session", c.session, "mode", mode.String())

	switch mode {
	case ModeShutdown:
		c.view.SetStatus("Shutdown is imminent.")
	case ModeReminder:
		c.view.SetStatus("Time is up.")
		c.view.Notify("Reminder", fmt.Sprintf("Your %d minute(s) are over.", minutes))
	}
	c.view.SetInputEnabled(true)
	c.idle()
}

// Abort stops the countdown from any state. Unless a reminder is running it
// asks the OS to cancel a pending shutdown; a failed cancel and "nothing to
// cancel" are reported the same way.
func (c *Controller) Abort(ctx context.Context) error {
	mode := c.state.Mode
	wasRunning := c.state.Running
	c.stopPending()

	var err error
	if mode == ModeReminder {
		c.view.SetStatus("Reminder canceled.")
	} else if err = c.shutdowner.Cancel(ctx); err != nil {
		c.log.Warn("shutdown cancel reported failure", "session", c.session, "error", err)
		c.view.SetStatus("No scheduled shutdown found or cancel failed.")
	} else {
		c.view.SetStatus("Scheduled shutdown canceled.")
	}
	c.log.Info("countdown aborted", "session", c.session, "mode", mode.String(), "running", wasRunning)

	c.state = State{}
	c.view.SetClock("")
	c.view.SetProgress(0)
	c.view.SetInputEnabled(true)
	if wasRunning {
		c.idle()
	}
	return err
}

func (c *Controller) render() {
	f := c.state.Frame()
	c.view.SetClock(f.Clock)
	c.view.SetProgress(f.Progress)
}

func (c *Controller) stopPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) idle() {
	if c.onIdle != nil {
		c.onIdle()
	}
}

func startedMessage(mode Mode, minutes int) string {
	if mode == ModeReminder {
		return fmt.Sprintf("Reminder set for %d minute(s).", minutes)
	}
	return fmt.Sprintf("Shutdown scheduled in %d minute(s).", minutes)
}
