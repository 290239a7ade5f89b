package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario-a> <scenario-b>",
	Short: "Compare two scenarios' goal timelines",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	scenarioA := plan.ScenarioByName(args[0])
	if scenarioA == nil {
		return unknownScenarioError(args[0])
	}
	scenarioB := plan.ScenarioByName(args[1])
	if scenarioB == nil {
		return unknownScenarioError(args[1])
	}

	engine := newEngine(plan)
	deltas, err := engine.CompareScenarios(scenarioA, scenarioB, plan.Goals, plan.Profile, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if flagJSON {
		return emitJSON(map[string]any{
			"scenario_a": scenarioA.Name,
			"scenario_b": scenarioB.Name,
			"deltas":     deltas,
		})
	}
	return emit(output.ConsoleFormatter{}.FormatComparison(scenarioA.Name, scenarioB.Name, plan.Goals, deltas))
}
