//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the module embedded at build time.
// It is printed by the CLI when users request version information.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and default config paths.
	Name = "qdraw"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Interpreter for the QDraw teaching language"
)
