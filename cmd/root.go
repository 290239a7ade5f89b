package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/calculation"
	"github.com/goalplan/goalplan/internal/config"
	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/internal/output"
)

var (
	flagPlan     string
	flagScenario string
	flagJSON     bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "goalplan",
	Short: "Financial goal projection engine",
	Long:  "Project savings-goal timelines, compare allocation scenarios, and stress test a household plan.",
	RunE:  runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "plan.yaml", "Plan file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario name (default: the active scenario)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose engine logging")
}

// loadPlan reads and validates the plan file.
func loadPlan() (*domain.Plan, error) {
	return config.NewInputParser().LoadFromFile(flagPlan)
}

// newEngine builds an engine from the plan's assumptions, wiring the CLI
// logger when verbose.
func newEngine(plan *domain.Plan) *calculation.Engine {
	engine := calculation.NewEngineWithAssumptions(plan.Assumptions)
	if flagVerbose {
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

// selectScenario resolves --scenario, falling back to the active scenario.
func selectScenario(plan *domain.Plan) (*domain.Scenario, error) {
	if flagScenario != "" {
		if scenario := plan.ScenarioByName(flagScenario); scenario != nil {
			return scenario, nil
		}
		return nil, unknownScenarioError(flagScenario)
	}
	if scenario := plan.ActiveScenario(); scenario != nil {
		return scenario, nil
	}
	if len(plan.Scenarios) > 0 {
		return &plan.Scenarios[0], nil
	}
	return nil, noScenariosError()
}

// engineInput assembles the calculation snapshot for one scenario.
func engineInput(plan *domain.Plan, scenario *domain.Scenario) *domain.EngineInput {
	return &domain.EngineInput{
		Profile:    plan.Profile,
		Goals:      plan.Goals,
		Allocation: scenario.Allocation,
		AsOf:       time.Now().UTC(),
	}
}

func emit(data []byte) error {
	_, err := os.Stdout.Write(data)
	return err
}

func emitJSON(result any) error {
	data, err := output.JSONFormatter{}.Format(result)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return emit(data)
}
