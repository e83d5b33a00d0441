package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's entries, totals and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := requireSignIn(ctx, a); err != nil {
				return err
			}
			report, err := a.data.DailyReport(ctx, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := report.Summary
			fmt.Fprintf(out, "Date: %s\n", report.Date)
			fmt.Fprintf(out, "Intake: %.0f kcal\n", s.Totals.Calories)
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n", s.Totals.Protein, s.Totals.Carbs, s.Totals.Fat)
			if s.HasGoal {
				fmt.Fprintf(out, "Goal: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n", s.Targets.Calories, s.Targets.Protein, s.Targets.Carbs, s.Targets.Fat)
				fmt.Fprintf(out, "Remaining: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n", s.Remaining.Calories, s.Remaining.Protein, s.Remaining.Carbs, s.Remaining.Fat)
				fmt.Fprintf(out, "Progress: %.0f%%", s.Progress*100)
				if s.Achieved {
					fmt.Fprint(out, " (goal reached)")
				}
				fmt.Fprintln(out)
			} else {
				fmt.Fprintln(out, "Goal: not set")
			}

			fmt.Fprintln(out, "MEAL\tITEMS\tKCAL")
			for _, m := range s.ByMeal {
				fmt.Fprintf(out, "%s\t%d\t%.0f\n", m.MealType.DisplayName(), m.Entries, m.Totals.Calories)
			}

			if len(report.Entries) > 0 {
				fmt.Fprintln(out, "ID\tMEAL\tNAME\tKCAL\tP\tC\tF")
				for _, e := range report.Entries {
					fmt.Fprintf(out, "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", e.ID, e.MealType, e.FoodName, e.Calories, e.Protein, e.Carbs, e.Fat)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
