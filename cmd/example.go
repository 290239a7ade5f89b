package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goalplan/goalplan/internal/config"
)

var flagExampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example plan file",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&flagExampleOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, _ []string) error {
	plan := config.NewInputParser().CreateExamplePlan()
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to render example plan: %w", err)
	}

	if flagExampleOut == "" {
		return emit(data)
	}
	if err := os.WriteFile(flagExampleOut, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote example plan to %s\n", flagExampleOut)
	return nil
}
