// Package term renders a countdown in a plain terminal with a progress bar.
package term

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const barScale = 1000

// BarView is a countdown.View on an mpb bar. Status text and the clock are
// drawn as decorators; notifications are held until Flush.
type BarView struct {
	mu     sync.Mutex
	status string
	clock  string
	notes  []string

	bar *mpb.Bar
	out io.Writer
}

func NewBarView(p *mpb.Progress, label string, out io.Writer) *BarView {
	v := &BarView{out: out}
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	v.bar = p.New(barScale,
		barStyle,
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DindentRight}),
			decor.Any(func(decor.Statistics) string { return v.Clock() }, decor.WC{W: 9}),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Any(func(decor.Statistics) string { return " " + v.Status() }),
		),
	)
	return v
}

func (v *BarView) SetStatus(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = text
}

func (v *BarView) SetClock(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clock = text
}

func (v *BarView) SetProgress(p float64) {
	v.bar.SetCurrent(int64(math.Round(p * barScale)))
}

// SetInputEnabled is a no-op: the minutes come from the command line and
// there is no input to lock while the bar runs.
func (v *BarView) SetInputEnabled(bool) {}

func (v *BarView) Notify(title, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notes = append(v.notes, boxed(title, message))
}

func (v *BarView) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

func (v *BarView) Clock() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clock
}

// Close ends the bar so the owning mpb.Progress can be waited on.
func (v *BarView) Close() {
	if !v.bar.Completed() {
		v.bar.Abort(false)
	}
}

// Flush prints the last status and any notifications. Call it after the
// progress container is done drawing.
func (v *BarView) Flush() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status != "" {
		fmt.Fprintln(v.out, v.status)
	}
	for _, n := range v.notes {
		fmt.Fprint(v.out, "\a")
		fmt.Fprintln(v.out, n)
	}
	v.notes = nil
}

func boxed(title, message string) string {
	width := max(len(title), len(message)) + 2
	line := "+" + strings.Repeat("-", width) + "+"
	pad := func(s string) string {
		return "| " + s + strings.Repeat(" ", width-len(s)-1) + "|"
	}
	return strings.Join([]string{line, pad(title), line, pad(message), line}, "\n")
}
