package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitai/fitai/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or set the daily nutrition goal",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := requireSignIn(ctx, a); err != nil {
				return err
			}
			goal, err := a.data.GetActiveGoal(ctx)
			if err != nil {
				return err
			}
			if goal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No goal configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\nProtein: %dg\nCarbs: %dg\nFat: %dg\n",
				goal.DailyCalorieGoal, goal.DailyProteinGoal, goal.DailyCarbGoal, goal.DailyFatGoal)
			if goal.CalorieDeficitGoal != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Deficit: %d kcal\n", *goal.CalorieDeficitGoal)
			}
			if goal.CalorieSurplusGoal != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Surplus: %d kcal\n", *goal.CalorieSurplusGoal)
			}
			return nil
		})
	},
}

var (
	goalCalories int
	goalProtein  int
	goalCarbs    int
	goalFat      int
	goalDeficit  int
	goalSurplus  int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the daily goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetGoalInput{
			DailyCalorieGoal:   goalCalories,
			DailyProteinGoal:   goalProtein,
			DailyCarbGoal:      goalCarbs,
			DailyFatGoal:       goalFat,
			CalorieDeficitGoal: optionalInt(goalDeficit, cmd.Flags().Changed("deficit")),
			CalorieSurplusGoal: optionalInt(goalSurplus, cmd.Flags().Changed("surplus")),
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := requireSignIn(ctx, a); err != nil {
				return err
			}
			goal, err := a.data.SetGoal(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goal %d kcal (P %dg | C %dg | F %dg)\n",
				goal.DailyCalorieGoal, goal.DailyProteinGoal, goal.DailyCarbGoal, goal.DailyFatGoal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalSetCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calories")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein grams")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Daily carb grams")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Daily fat grams")
	goalSetCmd.Flags().IntVar(&goalDeficit, "deficit", 0, "Optional daily calorie deficit")
	goalSetCmd.Flags().IntVar(&goalSurplus, "surplus", 0, "Optional daily calorie surplus")
	_ = goalSetCmd.MarkFlagRequired("calories")
}
