package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vbauerster/mpb/v8"

	"sleeptimer/internal/countdown"
)

// Run starts a countdown and draws it until it expires. Canceling ctx
// aborts it, which also cancels a scheduled OS shutdown.
func Run(ctx context.Context, out io.Writer, sd countdown.Shutdowner, logger *slog.Logger, minutes string, mode countdown.Mode) error {
	loop := countdown.NewLoop()
	defer loop.Close()

	p := mpb.New(mpb.WithOutput(out), mpb.WithWidth(48))
	view := NewBarView(p, mode.String(), out)
	ctrl := countdown.NewController(sd, view, loop, logger)

	done := make(chan struct{})
	ctrl.OnIdle(func() { close(done) })

	var err error
	loop.Do(func() { err = ctrl.Start(ctx, minutes, mode) })
	if err != nil {
		view.Close()
		p.Wait()
		view.Flush()
		return err
	}

	select {
	case <-done:
	case <-ctx.Done():
		logger.Info("interrupted, aborting countdown")
		var abortErr error
		loop.Do(func() { abortErr = ctrl.Abort(context.WithoutCancel(ctx)) })
		if abortErr != nil {
			err = fmt.Errorf("failed to cancel shutdown: %w", abortErr)
		}
	}

	view.Close()
	p.Wait()
	view.Flush()
	return err
}
