// Package tui is the interactive terminal front-end: a countdown tab and a
// bedtime tab on one bubbletea program.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sleeptimer/internal/bedtime"
	"sleeptimer/internal/countdown"
)

type tab int

const (
	tabTimer tab = iota
	tabBedtime
)

type notice struct {
	title   string
	message string
}

// timerView is the countdown.View of the timer tab.
type timerView struct {
	status   string
	clock    string
	progress float64
	enabled  bool
	notice   *notice
}

func (v *timerView) SetStatus(text string)        { v.status = text }
func (v *timerView) SetClock(text string)         { v.clock = text }
func (v *timerView) SetProgress(p float64)        { v.progress = p }
func (v *timerView) SetInputEnabled(enabled bool) { v.enabled = enabled }
func (v *timerView) Notify(title, message string) {
	v.notice = &notice{title: title, message: message}
}

type Options struct {
	Shutdowner countdown.Shutdowner
	Logger     *slog.Logger
	Dark       bool
	Wake       string
	Hours      string
	// Hint is shown under the timer, e.g. how to get shutdown privileges.
	Hint string
	Now  func() time.Time
}

type Model struct {
	ctx   context.Context
	ctrl  *countdown.Controller
	sched *scheduler
	tv    *timerView
	log   *slog.Logger

	tab    tab
	dark   bool
	theme  theme
	width  int
	height int
	hint   string

	minutes textinput.Model
	mode    countdown.Mode
	bar     progress.Model

	now     func() time.Time
	wake    textinput.Model
	custom  textinput.Model
	choices []string
	choice  int
	focus   int
	result  *bedtime.Result
	bedErr  string
}

func New(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := &Model{
		ctx:   ctx,
		sched: newScheduler(),
		tv:    &timerView{enabled: true, status: "No countdown running."},
		log:   logger,
		dark:  opts.Dark,
		theme: newTheme(opts.Dark),
		hint:  opts.Hint,
		mode:  countdown.ModeShutdown,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		now:   now,
	}
	m.ctrl = countdown.NewController(opts.Shutdowner, m.tv, m.sched, logger)

	m.minutes = textinput.New()
	m.minutes.Placeholder = "e.g. 60"
	m.minutes.CharLimit = 5
	m.minutes.Prompt = "> "
	m.minutes.Focus()

	m.wake = textinput.New()
	m.wake.Placeholder = "06:30"
	m.wake.CharLimit = 5
	m.wake.Prompt = "> "
	m.wake.SetValue(opts.Wake)

	m.custom = textinput.New()
	m.custom.Placeholder = "7,5"
	m.custom.CharLimit = 6
	m.custom.Prompt = "> "

	for _, h := range bedtime.MenuHours {
		m.choices = append(m.choices, strconv.Itoa(h))
	}
	m.choices = append(m.choices, bedtime.CustomChoice)
	choice, custom := bedtime.ChoiceFor(opts.Hours)
	for i, c := range m.choices {
		if c == choice {
			m.choice = i
		}
	}
	m.custom.SetValue(custom)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		m.sched.fire(msg.id)
		m.syncInputs()
		return m, m.sched.drain()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if s := m.ctrl.State(); s.Running && s.Mode == countdown.ModeShutdown {
			m.log.Info("quitting with a shutdown still scheduled", "remaining", s.Remaining)
		}
		return m, tea.Quit
	}
	// a notice is modal: the next key only dismisses it
	if m.tv.notice != nil {
		m.tv.notice = nil
		return m, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		if m.tab == tabTimer {
			m.tab = tabBedtime
		} else {
			m.tab = tabTimer
		}
		m.syncInputs()
		return m, nil
	case "ctrl+t":
		m.dark = !m.dark
		m.theme = newTheme(m.dark)
		return m, nil
	}

	if m.tab == tabTimer {
		return m.updateTimer(msg)
	}
	return m.updateBedtime(msg)
}

func (m *Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.ctrl.Start(m.ctx, m.minutes.Value(), m.mode); err != nil {
			m.log.Debug("start rejected", "error", err)
		}
		m.syncInputs()
		return m, m.sched.drain()
	case "esc", "ctrl+a":
		// the outcome is already in the status line
		_ = m.ctrl.Abort(m.ctx)
		m.syncInputs()
		return m, m.sched.drain()
	case "ctrl+r":
		if m.tv.enabled {
			if m.mode == countdown.ModeShutdown {
				m.mode = countdown.ModeReminder
			} else {
				m.mode = countdown.ModeShutdown
			}
		}
		return m, nil
	}

	if !m.tv.enabled {
		return m, nil
	}
	var cmd tea.Cmd
	m.minutes, cmd = m.minutes.Update(msg)
	return m, cmd
}

func (m *Model) updateBedtime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.calculate()
		return m, nil
	case "up", "down":
		m.focus = 1 - m.focus
		m.syncInputs()
		return m, nil
	case "ctrl+n":
		m.choice = (m.choice + 1) % len(m.choices)
		return m, nil
	case "ctrl+p":
		m.choice = (m.choice + len(m.choices) - 1) % len(m.choices)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.wake, cmd = m.wake.Update(msg)
	} else {
		m.custom, cmd = m.custom.Update(msg)
	}
	return m, cmd
}

func (m *Model) calculate() {
	m.result, m.bedErr = nil, ""
	hours, err := bedtime.ResolveHours(m.choices[m.choice], m.custom.Value())
	if err == nil {
		m.result, err = bedtime.Calculate(m.now(), m.wake.Value(), hours)
	}
	if err != nil {
		m.bedErr = bedtime.StatusMessage(err)
	}
}

// syncInputs moves the cursor to the field that accepts input.
func (m *Model) syncInputs() {
	m.minutes.Blur()
	m.wake.Blur()
	m.custom.Blur()
	switch {
	case m.tab == tabTimer && m.tv.enabled:
		m.minutes.Focus()
	case m.tab == tabBedtime && m.focus == 0:
		m.wake.Focus()
	case m.tab == tabBedtime:
		m.custom.Focus()
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
