package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitai/fitai/internal/service"
)

var (
	logMeal     string
	logName     string
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logServing  string
	logNotes    string
	logDate     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealType(logMeal)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := requireSignIn(ctx, a); err != nil {
				return err
			}
			entry, err := a.data.LogFood(ctx, service.LogFoodInput{
				Date:        date,
				MealType:    meal,
				FoodName:    logName,
				Calories:    logCalories,
				Protein:     logProtein,
				Carbs:       logCarbs,
				Fat:         logFat,
				ServingSize: optionalString(logServing),
				Notes:       optionalString(logNotes),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal) as %s: %s\n", entry.FoodName, entry.Calories, entry.MealType, entry.ID)
			return nil
		})
	},
}

var deleteDate string

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry logged on --date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(deleteDate)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := requireSignIn(ctx, a); err != nil {
				return err
			}
			entry, err := a.data.FindFoodEntry(ctx, date, args[0])
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("entry %s not found on %s", args[0], date.Format("2006-01-02"))
			}
			if err := a.data.DeleteFoodEntry(ctx, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", entry.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd, deleteCmd)

	logCmd.Flags().StringVar(&logMeal, "meal", "", "Meal type: breakfast, lunch, dinner or snack")
	logCmd.Flags().StringVar(&logName, "name", "", "Food name")
	logCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories (kcal)")
	logCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams")
	logCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carb grams")
	logCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams")
	logCmd.Flags().StringVar(&logServing, "serving", "", "Serving size, e.g. \"1 cup\"")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Optional notes")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = logCmd.MarkFlagRequired("meal")
	_ = logCmd.MarkFlagRequired("name")
	_ = logCmd.MarkFlagRequired("calories")

	deleteCmd.Flags().StringVar(&deleteDate, "date", "", "Date the entry was logged on, YYYY-MM-DD (default today)")
}
