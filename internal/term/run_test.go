package term_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"sleeptimer/internal/countdown"
	"sleeptimer/internal/term"
)

type fakeShutdowner struct {
	scheduled []int
	cancels   int
	cancelErr error
}

func (f *fakeShutdowner) Schedule(_ context.Context, seconds int) error {
	f.scheduled = append(f.scheduled, seconds)
	return nil
}

func (f *fakeShutdowner) Cancel(context.Context) error {
	f.cancels++
	return f.cancelErr
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunAbortOnCancel(t *testing.T) {
	sd := &fakeShutdowner{}
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := term.Run(ctx, &out, sd, discard, "5", countdown.ModeShutdown); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sd.scheduled) != 1 || sd.scheduled[0] != 300 {
		t.Errorf("expected a 300s shutdown, got %v", sd.scheduled)
	}
	if sd.cancels != 1 {
		t.Errorf("expected the shutdown to be canceled once, got %d", sd.cancels)
	}
	if !strings.Contains(out.String(), "Scheduled shutdown canceled.") {
		t.Errorf("missing final status in %q", out.String())
	}
}

func TestRunReportsFailedCancel(t *testing.T) {
	sd := &fakeShutdowner{cancelErr: errors.New("exit status 1")}
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := term.Run(ctx, &out, sd, discard, "5", countdown.ModeShutdown)
	if err == nil {
		t.Fatal("expected an error when the cancel fails")
	}
	if !strings.Contains(out.String(), "No scheduled shutdown found or cancel failed.") {
		t.Errorf("missing final status in %q", out.String())
	}
}

func TestRunReminderAbortIsLocal(t *testing.T) {
	sd := &fakeShutdowner{}
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := term.Run(ctx, &out, sd, discard, "1", countdown.ModeReminder); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sd.scheduled) != 0 || sd.cancels != 0 {
		t.Errorf("reminder touched the OS: %+v", sd)
	}
	if !strings.Contains(out.String(), "Reminder canceled.") {
		t.Errorf("missing final status in %q", out.String())
	}
}

func TestRunInvalidInput(t *testing.T) {
	sd := &fakeShutdowner{}
	var out bytes.Buffer

	err := term.Run(context.Background(), &out, sd, discard, "soon", countdown.ModeShutdown)
	if !errors.Is(err, countdown.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(sd.scheduled) != 0 {
		t.Error("nothing should be scheduled")
	}
	if !strings.Contains(out.String(), countdown.StatusMessage(err)) {
		t.Errorf("missing status in %q", out.String())
	}
}
