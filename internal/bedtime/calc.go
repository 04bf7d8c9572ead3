// Package bedtime suggests when to go to sleep for a wake-up time and a
// desired amount of sleep, and lays the night out on a 24-hour ring.
package bedtime

import (
	"fmt"
	"math"
	"time"
)

// CycleLength is the approximate length of one sleep cycle.
const CycleLength = 90 * time.Minute

type Result struct {
	Now          time.Time
	Wake         time.Time
	DesiredHours float64

	// Until is the sleep left when going to bed now, floored to minutes.
	Until time.Duration

	Primary time.Time
	// Earlier is nil when DesiredHours < 1.
	Earlier *time.Time
	Later   time.Time

	// CycleMarks start at Now and are CycleLength apart, none after Wake.
	CycleMarks []time.Time
}

// Calculate resolves wakeText to the next HH:MM strictly after now and
// derives bedtimes from it. It is deterministic in its arguments.
func Calculate(now time.Time, wakeText string, hours float64) (*Result, error) {
	h, m, err := ParseWakeTime(wakeText)
	if err != nil {
		return nil, err
	}
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, fmt.Errorf("%w: must be > 0, got %v", ErrInvalidDuration, hours)
	}

	wake := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	if !wake.After(now) {
		wake = wake.Add(24 * time.Hour)
	}

	res := &Result{
		Now:          now,
		Wake:         wake,
		DesiredHours: hours,
		Until:        wake.Sub(now).Truncate(time.Minute),
		Primary:      wake.Add(-hoursToDuration(hours)),
		Later:        wake.Add(-hoursToDuration(hours + 1)),
	}
	if hours >= 1 {
		earlier := wake.Add(-hoursToDuration(hours - 1))
		res.Earlier = &earlier
	}
	for t := now; !t.After(wake); t = t.Add(CycleLength) {
		res.CycleMarks = append(res.CycleMarks, t)
	}
	return res, nil
}

// Cycles is the number of complete sleep cycles that fit before waking.
func (r *Result) Cycles() int {
	return max(len(r.CycleMarks)-1, 0)
}

// hoursToDuration keeps fractions of a minute; display truncates to HH:MM.
func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// FormatClock renders t as HH:MM, suffixed with the day offset from ref
// when they fall on different dates.
func FormatClock(t, ref time.Time) string {
	days := dayOffset(t, ref)
	if days == 0 {
		return t.Format("15:04")
	}
	return fmt.Sprintf("%s (%+dd)", t.Format("15:04"), days)
}

// FormatHM renders d as e.g. 7h05m.
func FormatHM(d time.Duration) string {
	min := int(d / time.Minute)
	if min < 0 {
		min = -min
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

// FormatHours renders 7.5 as "7.5h" and 8 as "8h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%gh", h)
}

func dayOffset(t, ref time.Time) int {
	t = t.In(ref.Location())
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}
