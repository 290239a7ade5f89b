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
	flagWindfallAmount   float64
	flagWindfallStrategy string
	flagWindfallGoal     string
)

var windfallCmd = &cobra.Command{
	Use:   "windfall",
	Short: "Distribute a one-time lump sum across goals",
	RunE:  runWindfall,
}

func init() {
	windfallCmd.Flags().Float64Var(&flagWindfallAmount, "amount", 0, "Lump sum amount")
	windfallCmd.Flags().StringVar(&flagWindfallStrategy, "strategy", "proportional", "Strategy: single|proportional|equal")
	windfallCmd.Flags().StringVar(&flagWindfallGoal, "goal", "", "Goal ID for the single strategy")
	rootCmd.AddCommand(windfallCmd)
}

func runWindfall(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	scenario, err := selectScenario(plan)
	if err != nil {
		return err
	}

	strategy, err := windfallStrategy()
	if err != nil {
		return err
	}

	engine := newEngine(plan)
	result, err := engine.SimulateWindfall(engineInput(plan, scenario), decimal.NewFromFloat(flagWindfallAmount), strategy)
	if err != nil {
		return fmt.Errorf("windfall simulation failed: %w", err)
	}

	if flagJSON {
		return emitJSON(result)
	}
	return emit(output.ConsoleFormatter{}.FormatWindfall(plan.Goals, result))
}

func windfallStrategy() (calculation.WindfallStrategy, error) {
	switch flagWindfallStrategy {
	case "single":
		id, err := uuid.Parse(flagWindfallGoal)
		if err != nil {
			return nil, fmt.Errorf("the single strategy needs a valid --goal ID: %w", err)
		}
		return calculation.AllToSingleGoal{GoalID: id}, nil
	case "proportional":
		return calculation.ProportionalSplit{}, nil
	case "equal":
		return calculation.EqualSplit{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want single, proportional, or equal)", flagWindfallStrategy)
	}
}
