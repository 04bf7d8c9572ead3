package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vbauerster/mpb/v8"
)

func TestBoxed(t *testing.T) {
	got := boxed("Reminder", "Your 5 minute(s) are over.")
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), got)
	}
	for _, l := range lines[1:] {
		if len(l) != len(lines[0]) {
			t.Errorf("ragged box:\n%s", got)
			break
		}
	}
	if !strings.Contains(lines[1], "Reminder") || !strings.Contains(lines[3], "over.") {
		t.Errorf("unexpected box:\n%s", got)
	}
}

func TestBarViewIgnoresInputLock(t *testing.T) {
	var out bytes.Buffer
	p := mpb.New(mpb.WithOutput(&out), mpb.WithWidth(48))
	v := NewBarView(p, "Reminder", &out)

	v.SetStatus("Reminder set for 1 minute(s).")
	v.SetClock("00:01:00")
	v.SetInputEnabled(false)
	v.SetInputEnabled(true)
	if v.Status() != "Reminder set for 1 minute(s)." || v.Clock() != "00:01:00" {
		t.Errorf("input lock changed the view: status %q clock %q", v.Status(), v.Clock())
	}

	v.Close()
	p.Wait()
	v.Flush()
	if !strings.Contains(out.String(), "Reminder set for 1 minute(s).") {
		t.Errorf("status not flushed:\n%s", out.String())
	}
}
