package cli

import (
	"encoding/json"
	"io"
)

// IsJSONOutput reports whether --json output was requested.
func IsJSONOutput() bool {
	return flagJSON
}

// WriteOutput encodes value as indented JSON.
func WriteOutput(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
