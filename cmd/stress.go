package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/calculation"
	"github.com/goalplan/goalplan/internal/output"
)

var (
	flagJobLossMonths     int
	flagCorrectionPercent float64
	flagExpenseAmount     float64
	flagExpenseGoal       string
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Stress test a scenario against adverse events",
	Long: "Runs the default event battery (job loss, market correction, unexpected expense), " +
		"or a custom battery assembled from the event flags.",
	RunE: runStress,
}

func init() {
	stressCmd.Flags().IntVar(&flagJobLossMonths, "job-loss", 0, "Months without contributions")
	stressCmd.Flags().Float64Var(&flagCorrectionPercent, "correction", 0, "Market correction fraction (e.g. 0.2)")
	stressCmd.Flags().Float64Var(&flagExpenseAmount, "expense", 0, "Unexpected expense amount")
	stressCmd.Flags().StringVar(&flagExpenseGoal, "expense-goal", "", "Goal ID the expense hits (optional)")
	rootCmd.AddCommand(stressCmd)
}

func runStress(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	scenario, err := selectScenario(plan)
	if err != nil {
		return err
	}

	events, err := stressEvents()
	if err != nil {
		return err
	}

	engine := newEngine(plan)
	suite, err := engine.RunStressSuite(engineInput(plan, scenario), events)
	if err != nil {
		return fmt.Errorf("stress test failed: %w", err)
	}

	if flagJSON {
		return emitJSON(suite)
	}
	return emit(output.ConsoleFormatter{}.FormatStressSuite(plan.Goals, suite))
}

// stressEvents assembles the battery from flags, falling back to the default
// battery when no event flag is set.
func stressEvents() ([]calculation.StressEvent, error) {
	var events []calculation.StressEvent
	if flagJobLossMonths > 0 {
		events = append(events, calculation.JobLoss{Months: flagJobLossMonths})
	}
	if flagCorrectionPercent > 0 {
		events = append(events, calculation.MarketCorrection{Percent: decimal.NewFromFloat(flagCorrectionPercent)})
	}
	if flagExpenseAmount > 0 {
		expense := calculation.UnexpectedExpense{Amount: decimal.NewFromFloat(flagExpenseAmount)}
		if flagExpenseGoal != "" {
			id, err := uuid.Parse(flagExpenseGoal)
			if err != nil {
				return nil, fmt.Errorf("invalid --expense-goal %q: %w", flagExpenseGoal, err)
			}
			expense.GoalID = &id
		}
		events = append(events, expense)
	}
	if len(events) == 0 {
		events = calculation.DefaultStressEvents()
	}
	return events, nil
}
