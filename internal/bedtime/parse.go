package bedtime

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDuration   = errors.New("invalid sleep duration")
)

// MenuHours are the sleep durations offered without typing a value.
var MenuHours = []int{6, 7, 8, 9, 10}

// CustomChoice selects the free-form duration instead of a menu entry.
const CustomChoice = "custom"

// ParseWakeTime parses HH:MM on a 24-hour clock.
func ParseWakeTime(s string) (hour, minute int, err error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, 0, fmt.Errorf("%w: wake time is empty, expected HH:MM", ErrInvalidTimeFormat)
	}
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}
	return h, m, nil
}

// ParseHours reads a positive number of hours; "7,5" and "7.5" are equal.
func ParseHours(s string) (float64, error) {
	t := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	h, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDuration, s)
	}
	if h <= 0 {
		return 0, fmt.Errorf("%w: must be > 0, got %v", ErrInvalidDuration, h)
	}
	return h, nil
}

// ResolveHours turns a menu choice ("6".."10" or "custom") and the custom
// text into hours. An empty choice falls back to the custom text.
func ResolveHours(choice, custom string) (float64, error) {
	c := strings.ToLower(strings.TrimSpace(choice))
	if c == "" || c == CustomChoice {
		return ParseHours(custom)
	}
	n, err := strconv.Atoi(c)
	if err != nil || !slices.Contains(MenuHours, n) {
		return 0, fmt.Errorf("%w: unknown choice %q", ErrInvalidDuration, choice)
	}
	return float64(n), nil
}

// StatusMessage maps a Calculate or ResolveHours error to user-facing text.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTimeFormat):
		return "Please enter the wake time as HH:MM (24-hour), e.g. 06:30."
	case errors.Is(err, ErrInvalidDuration):
		return "Please enter a sleep duration in hours greater than 0, e.g. 7,5."
	default:
		return err.Error()
	}
}

// ChoiceFor is the inverse of ResolveHours for a configured value: a menu
// choice when hours is a whole menu entry, otherwise the custom choice with
// hours as its text.
func ChoiceFor(hours string) (choice, custom string) {
	h, err := ParseHours(hours)
	if err != nil {
		return strconv.Itoa(MenuHours[2]), ""
	}
	if h == math.Trunc(h) && slices.Contains(MenuHours, int(h)) {
		return strconv.Itoa(int(h)), ""
	}
	return CustomChoice, hours
}
