package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okelund/fastwin/internal/dateshift"
)

func (a *App) dateCmd() *cobra.Command {
	var years int
	var from string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Shift a date by a number of calendar years",
		Long: `Shift a date by a signed number of calendar years.

The start date takes YYYY-MM-DD form and defaults to today. Feb 29
shifted onto a non-leap year lands on Mar 1.`,
		Example: `  fastwin date --years 5
  fastwin date --years -3 --from 2020-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			result, err := dateshift.AddYears(years, from, a.clock)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatHeader("New Date:"), formatResult(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&years, "years", "y", 0, "Number of years, negative for the past (required)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "Start date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
