package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okelund/fastwin/internal/fasting"
)

func (a *App) fastCmd() *cobra.Command {
	var now string
	var meal string
	var hours string
	var twelveHour bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "fast",
		Short: "Compute when to start fasting before your next meal",
		Long: `Compute the time to begin fasting so that the fast ends exactly at
the next occurrence of the meal time after "now".

Times take HH:MM form, optionally with a trailing AM/PM. The current
time defaults to the wall clock. Hours accept fractions ("16.5") and
duration strings ("16h30m").`,
		Example: `  fastwin fast --meal 12:00 --hours 16
  fastwin fast --now "8:00 PM" --meal "12:00 PM" --hours 16 --12h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			if now == "" {
				t := a.clock.Now()
				now = fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
			}

			minutes, err := fasting.ParseHours(hours)
			if err != nil {
				return err
			}

			nowTime, nowPeriod := fasting.SplitClock(now)
			mealTime, mealPeriod := fasting.SplitClock(meal)

			window, err := fasting.StartTime(fasting.Request{
				CurrentTime:   nowTime,
				CurrentPeriod: nowPeriod,
				MealTime:      mealTime,
				MealPeriod:    mealPeriod,
				Minutes:       minutes,
				TwelveHour:    twelveHour,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatResult(fmt.Sprintf("You should start fasting at %s %s.", window.Start, window.Day)))
			fmt.Fprintf(out, "%s\n", formatMuted(strings.Repeat("─", min(termWidth(), 40))))
			fmt.Fprintf(out, "%s\n", formatMuted(fmt.Sprintf("The fast ends at the %s meal.", fasting.FormatMinutes(window.StartMinutes+minutes, twelveHour))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&meal, "meal", "m", "", "Next meal time, e.g. \"12:00\" or \"12:00 PM\" (required)")
	cmd.Flags().StringVarP(&now, "now", "n", "", "Current time (default: wall clock)")
	cmd.Flags().StringVar(&hours, "hours", a.config.Fasting.DefaultHours, "Fasting length in hours")
	cmd.Flags().BoolVar(&twelveHour, "12h", a.config.TwelveHour(), "Print the start time in 12-hour form")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("meal")

	return cmd
}
