package bedtime_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"sleeptimer/internal/bedtime"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestCalculateNextDayWake(t *testing.T) {
	now := at(10, 22, 0)

	got, err := bedtime.Calculate(now, "06:30", 8)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	earlier := at(10, 23, 30)
	want := &bedtime.Result{
		Now:          now,
		Wake:         at(11, 6, 30),
		DesiredHours: 8,
		Until:        8*time.Hour + 30*time.Minute,
		Primary:      at(10, 22, 30),
		Earlier:      &earlier,
		Later:        at(10, 21, 30),
		CycleMarks: []time.Time{
			at(10, 22, 0),
			at(10, 23, 30),
			at(11, 1, 0),
			at(11, 2, 30),
			at(11, 4, 0),
			at(11, 5, 30),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
	}
	if got.Cycles() != 5 {
		t.Errorf("expected 5 full cycles, got %d", got.Cycles())
	}
}

func TestCalculateSameDayWake(t *testing.T) {
	now := at(10, 5, 0)

	got, err := bedtime.Calculate(now, "06:30", 8)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if got.Wake != at(10, 6, 30) {
		t.Errorf("wake = %v", got.Wake)
	}
	if got.Until != 90*time.Minute {
		t.Errorf("until = %v, want 1h30m", got.Until)
	}
	if got.Earlier == nil || !got.Earlier.Equal(at(9, 23, 30)) {
		t.Errorf("earlier = %v, want 7h before wake", got.Earlier)
	}
	if !got.Later.Equal(at(9, 21, 30)) {
		t.Errorf("later = %v, want 9h before wake", got.Later)
	}
	want := []time.Time{at(10, 5, 0), at(10, 6, 30)}
	if diff := cmp.Diff(want, got.CycleMarks); diff != "" {
		t.Errorf("cycle marks mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateWakeEqualToNowRollsOver(t *testing.T) {
	now := at(10, 7, 0)
	got, err := bedtime.Calculate(now, "7:00", 8)
	if err != nil {
		t.Fatal(err)
	}
	if got.Wake != at(11, 7, 0) {
		t.Errorf("wake = %v, want next day", got.Wake)
	}
}

func TestCalculateUntilIsFloored(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 59, 0, time.UTC)
	got, err := bedtime.Calculate(now, "00:00", 8)
	if err != nil {
		t.Fatal(err)
	}
	if got.Until != 59*time.Minute {
		t.Errorf("until = %v, want 59m", got.Until)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 21, 17, 42, 0, time.UTC)
	a, err := bedtime.Calculate(now, "06:45", 7.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bedtime.Calculate(now, "06:45", 7.5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("results differ:\n%s", diff)
	}
}

func TestCalculateKeepsFractionalMinutes(t *testing.T) {
	now := at(10, 22, 0)
	tests := []struct {
		hours   float64
		primary time.Time
		shown   string
	}{
		{hours: 7.49, primary: at(10, 23, 0).Add(36 * time.Second), shown: "23:00"},
		{hours: 7.99, primary: at(10, 22, 30).Add(36 * time.Second), shown: "22:30"},
		{hours: 7.5, primary: at(10, 23, 0), shown: "23:00"},
	}
	for _, tc := range tests {
		got, err := bedtime.Calculate(now, "06:30", tc.hours)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Primary.Equal(tc.primary) {
			t.Errorf("%vh: primary = %v, want %v", tc.hours, got.Primary, tc.primary)
		}
		if s := bedtime.FormatClock(got.Primary, now); s != tc.shown {
			t.Errorf("%vh: shown as %q, want %q", tc.hours, s, tc.shown)
		}
	}
}

func TestCalculateShortSleepHasNoEarlier(t *testing.T) {
	got, err := bedtime.Calculate(at(10, 22, 0), "06:30", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Earlier != nil {
		t.Errorf("expected no earlier alternative, got %v", got.Earlier)
	}
	if !got.Later.Equal(at(11, 5, 0)) {
		t.Errorf("later = %v", got.Later)
	}
}

func TestCycleMarkProperties(t *testing.T) {
	for _, wake := range []string{"00:00", "03:10", "06:30", "12:00", "21:59"} {
		now := time.Date(2025, 3, 10, 22, 13, 20, 0, time.UTC)
		got, err := bedtime.Calculate(now, wake, 8)
		if err != nil {
			t.Fatal(err)
		}
		total := got.Wake.Sub(now).Minutes()
		if want := int(math.Floor(total/90)) + 1; len(got.CycleMarks) != want {
			t.Errorf("%s: %d marks, want %d", wake, len(got.CycleMarks), want)
		}
		for i, m := range got.CycleMarks {
			if m.After(got.Wake) {
				t.Errorf("%s: mark %d after wake", wake, i)
			}
			if i > 0 && m.Sub(got.CycleMarks[i-1]) != bedtime.CycleLength {
				t.Errorf("%s: mark %d not 90 minutes after the previous", wake, i)
			}
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	now := at(10, 22, 0)
	tests := []struct {
		name  string
		wake  string
		hours float64
		want  error
	}{
		{name: "empty wake", wake: "", hours: 8, want: bedtime.ErrInvalidTimeFormat},
		{name: "garbage wake", wake: "soon", hours: 8, want: bedtime.ErrInvalidTimeFormat},
		{name: "hour out of range", wake: "24:00", hours: 8, want: bedtime.ErrInvalidTimeFormat},
		{name: "minute out of range", wake: "06:60", hours: 8, want: bedtime.ErrInvalidTimeFormat},
		{name: "zero hours", wake: "06:30", hours: 0, want: bedtime.ErrInvalidDuration},
		{name: "negative hours", wake: "06:30", hours: -2, want: bedtime.ErrInvalidDuration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bedtime.Calculate(now, tc.wake, tc.hours)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if res != nil {
				t.Error("expected no result")
			}
		})
	}
}

func TestResolveHours(t *testing.T) {
	tests := []struct {
		choice string
		custom string
		want   float64
		err    bool
	}{
		{choice: "8", want: 8},
		{choice: "6", want: 6},
		{choice: "10", want: 10},
		{choice: "custom", custom: "7,5", want: 7.5},
		{choice: "custom", custom: "7.25", want: 7.25},
		{choice: "", custom: " 9 ", want: 9},
		{choice: "11", err: true},
		{choice: "custom", custom: "0", err: true},
		{choice: "custom", custom: "-2", err: true},
		{choice: "custom", custom: "lots", err: true},
		{choice: "custom", custom: "NaN", err: true},
		{choice: "custom", custom: "", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.choice+"/"+tc.custom, func(t *testing.T) {
			got, err := bedtime.ResolveHours(tc.choice, tc.custom)
			if tc.err {
				if !errors.Is(err, bedtime.ErrInvalidDuration) {
					t.Fatalf("expected ErrInvalidDuration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	ref := at(10, 22, 0)
	if got := bedtime.FormatClock(at(10, 22, 30), ref); got != "22:30" {
		t.Errorf("same day: %q", got)
	}
	if got := bedtime.FormatClock(at(11, 6, 30), ref); got != "06:30 (+1d)" {
		t.Errorf("next day: %q", got)
	}
	if got := bedtime.FormatClock(at(9, 21, 30), ref); got != "21:30 (-1d)" {
		t.Errorf("previous day: %q", got)
	}
	if got := bedtime.FormatHM(8*time.Hour + 5*time.Minute); got != "8h05m" {
		t.Errorf("FormatHM: %q", got)
	}
	if got := bedtime.FormatHours(7.5); got != "7.5h" {
		t.Errorf("FormatHours: %q", got)
	}
}

func TestRenderASCII(t *testing.T) {
	res, err := bedtime.Calculate(at(10, 22, 0), "06:30", 8)
	if err != nil {
		t.Fatal(err)
	}
	out := bedtime.RenderASCII(res, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 17 {
		t.Fatalf("expected 17 rows, got %d", len(lines))
	}
	for _, want := range []string{"N", "W", "+", "8h30m sleep", "00", "06", "12", "18"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(lines[0], ".") && !strings.Contains(lines[0], "W") && !strings.Contains(lines[0], "+") {
		t.Errorf("top row should hold the ring:\n%s", out)
	}
}

func TestStatusMessage(t *testing.T) {
	_, err := bedtime.Calculate(at(10, 22, 0), "6h30", 8)
	if got := bedtime.StatusMessage(err); !strings.Contains(got, "HH:MM") {
		t.Errorf("time format message = %q", got)
	}
	_, err = bedtime.ResolveHours("custom", "-2")
	if got := bedtime.StatusMessage(err); !strings.Contains(got, "greater than 0") {
		t.Errorf("duration message = %q", got)
	}
	if bedtime.StatusMessage(nil) != "" {
		t.Error("nil error should map to empty text")
	}
}

func TestChoiceFor(t *testing.T) {
	tests := []struct {
		hours, choice, custom string
	}{
		{hours: "8", choice: "8"},
		{hours: "6", choice: "6"},
		{hours: "7,5", choice: "custom", custom: "7,5"},
		{hours: "11", choice: "custom", custom: "11"},
		{hours: "junk", choice: "8"},
	}
	for _, tc := range tests {
		choice, custom := bedtime.ChoiceFor(tc.hours)
		if choice != tc.choice || custom != tc.custom {
			t.Errorf("ChoiceFor(%q) = %q, %q; want %q, %q", tc.hours, choice, custom, tc.choice, tc.custom)
		}
	}
}
