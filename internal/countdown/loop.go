package countdown

import (
	"sync"
	"time"
)

// Loop is a minimal event loop: posted funcs run one at a time on a single
// goroutine. It is the Scheduler for front-ends that have no loop of their
// own.
type Loop struct {
	funcs     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

func NewLoop() *Loop {
	l := &Loop{
		funcs: make(chan func(), 16),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.funcs:
			fn()
		case <-l.done:
			return
		}
	}
}

// Post queues fn. It returns false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.funcs <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it. It must not be called from the
// loop itself.
func (l *Loop) Do(fn func()) {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return
	}
	select {
	case <-finished:
	case <-l.done:
	}
}

func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// After must be called from the loop; so must Stop on the returned task.
func (l *Loop) After(d time.Duration, fn func()) Task {
	t := &loopTask{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped {
				return
			}
			t.stopped = true
			fn()
		})
	})
	return t
}

// stopped is only touched on the loop goroutine, so a task stopped after its
// timer fired but before its func ran still never runs.
type loopTask struct {
	timer   *time.Timer
	stopped bool
}

func (t *loopTask) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
