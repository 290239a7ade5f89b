package cmd

import (
	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project goal completion timelines for a scenario",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	scenario, err := selectScenario(plan)
	if err != nil {
		return err
	}

	engine := newEngine(plan)
	input := engineInput(plan, scenario)

	projections, err := engine.Calculate(input)
	if err != nil {
		return err
	}
	status := engine.ValidateAllocation(scenario.Allocation, plan.Profile)

	if flagJSON {
		return emitJSON(map[string]any{
			"scenario":    scenario.Name,
			"projections": projections,
			"allocation":  status,
		})
	}
	return emit(output.ConsoleFormatter{}.FormatProjections(plan.Goals, projections, status))
}
