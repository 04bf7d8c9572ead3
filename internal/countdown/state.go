// Package countdown holds the single delayed action a user can schedule:
// an OS shutdown or a reminder, counted down once per second.
package countdown

import (
	"fmt"
	"strconv"
	"strings"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeShutdown
	ModeReminder
)

func (m Mode) String() string {
	switch m {
	case ModeShutdown:
		return "shutdown"
	case ModeReminder:
		return "reminder"
	default:
		return "none"
	}
}

// ParseMode accepts "shutdown" or "reminder" (also "remind").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shutdown":
		return ModeShutdown, nil
	case "reminder", "remind":
		return ModeReminder, nil
	}
	return ModeNone, fmt.Errorf("unknown mode %q, expected shutdown or reminder", s)
}

// State is the countdown of one session. Remaining never exceeds Total.
type State struct {
	Mode      Mode
	Total     int
	Remaining int
	Running   bool
}

// Frame is what a view shows for a state.
type Frame struct {
	Clock    string
	Progress float64
}

// ParseMinutes reads the delay typed by the user.
func ParseMinutes(text string) (int, error) {
	t := strings.TrimSpace(text)
	minutes, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of minutes", ErrInvalidInput, text)
	}
	if minutes < 1 {
		return 0, fmt.Errorf("%w: at least 1 minute, got %d", ErrInvalidInput, minutes)
	}
	return minutes, nil
}

func NewState(minutes int, mode Mode) State {
	total := minutes * 60
	return State{
		Mode:      mode,
		Total:     total,
		Remaining: total,
		Running:   true,
	}
}

// Tick advances a running state by one second. The returned bool is true
// exactly once per session, on the tick that reaches zero; the state then
// is idle.
func (s State) Tick() (State, bool) {
	if !s.Running {
		return s, false
	}
	if s.Remaining > 0 {
		s.Remaining--
	}
	if s.Remaining > 0 {
		return s, false
	}
	return State{Total: s.Total}, true
}

func (s State) Frame() Frame {
	if !s.Running {
		if s.Total > 0 && s.Remaining == 0 {
			return Frame{Clock: FormatClock(0), Progress: 1}
		}
		return Frame{}
	}
	return Frame{
		Clock:    FormatClock(s.Remaining),
		Progress: progress(s.Remaining, s.Total),
	}
}

func progress(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := 1 - float64(remaining)/float64(total)
	return max(0, min(1, p))
}

// FormatClock renders seconds as HH:MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m, s := seconds/60, seconds%60
	h, m := m/60, m%60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
