package countdown_test

import (
	"testing"
	"time"

	"sleeptimer/internal/countdown"
)

func TestLoopAfterFires(t *testing.T) {
	l := countdown.NewLoop()
	defer l.Close()

	fired := make(chan struct{})
	l.Do(func() {
		l.After(5*time.Millisecond, func() { close(fired) })
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled func never ran")
	}
}

func TestLoopStoppedTaskNeverRuns(t *testing.T) {
	l := countdown.NewLoop()
	defer l.Close()

	ran := false
	l.Do(func() {
		task := l.After(time.Millisecond, func() { ran = true })
		// keep the loop busy so the fired timer's func is queued, not run
		time.Sleep(20 * time.Millisecond)
		task.Stop()
	})
	time.Sleep(20 * time.Millisecond)

	var got bool
	l.Do(func() { got = ran })
	if got {
		t.Fatal("stopped task ran")
	}
}

func TestLoopStopBeforeDeadline(t *testing.T) {
	l := countdown.NewLoop()
	defer l.Close()

	ran := make(chan struct{}, 1)
	var stopped bool
	l.Do(func() {
		task := l.After(50*time.Millisecond, func() { ran <- struct{}{} })
		stopped = task.Stop()
	})
	if !stopped {
		t.Fatal("Stop should report it prevented the call")
	}

	select {
	case <-ran:
		t.Fatal("stopped task ran")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLoopPostAfterClose(t *testing.T) {
	l := countdown.NewLoop()
	l.Close()
	if l.Post(func() {}) {
		t.Error("Post should fail on a closed loop")
	}
}
