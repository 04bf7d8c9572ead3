package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sleeptimer/internal/countdown"
)

// taskMsg is delivered when a scheduled task is due.
type taskMsg struct {
	id int
}

// scheduler runs countdown callbacks on the bubbletea event loop. After
// queues a tea.Tick command that Update hands back to the runtime; a task
// stopped before its message arrives is dropped.
type scheduler struct {
	nextID int
	tasks  map[int]*task
	cmds   []tea.Cmd
}

func newScheduler() *scheduler {
	return &scheduler{tasks: make(map[int]*task)}
}

func (s *scheduler) After(d time.Duration, fn func()) countdown.Task {
	s.nextID++
	t := &task{id: s.nextID, fn: fn, s: s}
	s.tasks[t.id] = t
	id := t.id
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return taskMsg{id: id}
	}))
	return t
}

func (s *scheduler) fire(id int) {
	t, ok := s.tasks[id]
	if !ok {
		return
	}
	delete(s.tasks, id)
	t.fn()
}

// drain returns the commands queued since the last call.
func (s *scheduler) drain() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

type task struct {
	id int
	fn func()
	s  *scheduler
}

func (t *task) Stop() bool {
	if _, ok := t.s.tasks[t.id]; !ok {
		return false
	}
	delete(t.s.tasks, t.id)
	return true
}
