//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the vcalc module embedded at build
// time. It is printed by the --version flag.
//
//go:embed VERSION
var version string

// Version returns the embedded version without surrounding white space.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the command name. It appears in help text, default config
	// paths, and the prefix of environment variables.
	Name = "vcalc"
	// Description is a short summary of the project used in help output.
	Description = "Vector calculator language"
	// Label is the diagnostic label of interactive input.
	Label = "<shell>"
)
