package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sleeptimer/internal/bedtime"
)

func newBedtimeCmd(a *app) *cobra.Command {
	var (
		wake   string
		hours  string
		custom string
		nowStr string
		ring   bool
		radius int
	)

	cmd := &cobra.Command{
		Use:   "bedtime",
		Short: "Suggest bedtimes for a wake-up time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("wake") {
				wake = a.cfg.Bedtime.Wake
			}
			if !cmd.Flags().Changed("hours") && !cmd.Flags().Changed("custom") {
				hours, custom = bedtime.ChoiceFor(a.cfg.Bedtime.Hours)
			}
			if cmd.Flags().Changed("custom") && !cmd.Flags().Changed("hours") {
				hours = bedtime.CustomChoice
			}

			now, err := parseNow(nowStr, time.Now())
			if err != nil {
				return err
			}
			h, err := bedtime.ResolveHours(hours, custom)
			if err != nil {
				return fmt.Errorf("%s: %w", bedtime.StatusMessage(err), err)
			}
			res, err := bedtime.Calculate(now, wake, h)
			if err != nil {
				return fmt.Errorf("%s: %w", bedtime.StatusMessage(err), err)
			}

			printBedtime(cmd.OutOrStdout(), res)
			if ring {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), bedtime.RenderASCII(res, radius))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wake, "wake", "", "Wake-up time HH:MM (default from config)")
	cmd.Flags().StringVar(&hours, "hours", "", "Hours of sleep: 6-10 or custom (default from config)")
	cmd.Flags().StringVar(&custom, "custom", "", "Custom hours of sleep, e.g. 7,5 or 7.5")
	cmd.Flags().StringVar(&nowStr, "now", "", "Pretend the current time is HH:MM today")
	cmd.Flags().BoolVar(&ring, "ring", true, "Draw the 24-hour ring")
	cmd.Flags().IntVar(&radius, "ring-radius", 8, "Ring radius in rows")
	return cmd
}

func parseNow(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now, nil
	}
	h, m, err := bedtime.ParseWakeTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location()), nil
}

func printBedtime(w io.Writer, r *bedtime.Result) {
	fmt.Fprintf(w, "Now:   %s\n", bedtime.FormatClock(r.Now, r.Now))
	fmt.Fprintf(w, "Wake:  %s\n", bedtime.FormatClock(r.Wake, r.Now))
	fmt.Fprintf(w, "Sleep if you go to bed now: %s (%d cycles)\n\n", bedtime.FormatHM(r.Until), r.Cycles())

	fmt.Fprintf(w, "  Bedtime for %-6s %s\n", bedtime.FormatHours(r.DesiredHours)+":", bedtime.FormatClock(r.Primary, r.Now))
	if r.Earlier != nil {
		fmt.Fprintf(w, "  One hour less:     %s\n", bedtime.FormatClock(*r.Earlier, r.Now))
	}
	fmt.Fprintf(w, "  One hour more:     %s\n", bedtime.FormatClock(r.Later, r.Now))

	marks := make([]string, len(r.CycleMarks))
	for i, m := range r.CycleMarks {
		marks[i] = bedtime.FormatClock(m, r.Now)
	}
	fmt.Fprintf(w, "  Cycle marks:       %s\n", strings.Join(marks, ", "))
}
