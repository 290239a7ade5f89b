package output

import (
	"encoding/json"
)

// JSONFormatter serializes any engine result as pretty-printed JSON.
type JSONFormatter struct{}

// Name returns a short identifier for logging and formatter lookup.
func (JSONFormatter) Name() string { return "json" }

// Format marshals the result with two-space indentation.
func (JSONFormatter) Format(result any) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
