package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/output"
	"github.com/goalplan/goalplan/pkg/dateutil"
)

var (
	flagRequiredGoal string
	flagRequiredBy   string
)

var requiredCmd = &cobra.Command{
	Use:   "required",
	Short: "Compute the monthly contribution needed to hit a goal by a date",
	RunE:  runRequired,
}

func init() {
	requiredCmd.Flags().StringVar(&flagRequiredGoal, "goal", "", "Goal ID")
	requiredCmd.Flags().StringVar(&flagRequiredBy, "by", "", "Target month (YYYY-MM; default: the goal's desired date)")
	rootCmd.AddCommand(requiredCmd)
}

func runRequired(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(flagRequiredGoal)
	if err != nil {
		return fmt.Errorf("invalid --goal ID %q: %w", flagRequiredGoal, err)
	}
	goal := plan.GoalByID(id)
	if goal == nil {
		return fmt.Errorf("no goal with ID %s in the plan", id)
	}

	var targetDate time.Time
	switch {
	case flagRequiredBy != "":
		var month dateutil.Month
		if err := month.UnmarshalText([]byte(flagRequiredBy)); err != nil {
			return err
		}
		targetDate = month.Date()
	case goal.DesiredDate != nil:
		targetDate = *goal.DesiredDate
	default:
		return fmt.Errorf("goal %q has no desired date; pass --by YYYY-MM", goal.Name)
	}

	engine := newEngine(plan)
	required, err := engine.RequiredMonthlyContribution(goal, targetDate, time.Now().UTC())
	if err != nil {
		return err
	}

	if flagJSON {
		return emitJSON(map[string]any{
			"goal":                  goal.ID,
			"target_month":          dateutil.MonthOf(targetDate).String(),
			"required_contribution": required,
		})
	}
	fmt.Printf("%s needs %s/mo to reach %s by %s\n",
		goal.Name, output.FormatCurrency(*required),
		output.FormatCurrency(goal.TargetAmount), dateutil.MonthOf(targetDate))
	return nil
}
