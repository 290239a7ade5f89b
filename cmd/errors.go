package cmd

import (
	"fmt"
	"os"
)

func unknownScenarioError(name string) error {
	return fmt.Errorf("no scenario named %q in the plan", name)
}

func noScenariosError() error {
	return fmt.Errorf("the plan has no scenarios")
}

// stderrLogger routes engine diagnostics to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logf("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logf("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logf("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logf("ERROR", format, args...) }

func logf(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, level+": "+format+"\n", args...)
}
