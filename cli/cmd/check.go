package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/Reader10/Interprete-QDraw/exec"
	"github.com/Reader10/Interprete-QDraw/lang"
	"github.com/Reader10/Interprete-QDraw/log"
)

// Check parses a program and reports diagnostics without executing it.
type Check struct {
	Source string `arg:"" help:"Program source file or '-' for stdin" name:"source" default:"-"`
	Dump   string `help:"Dump the parsed program (${enum})" enum:"none,native,json,yaml" default:"none" short:"d"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	source, err := LoadSource(c.Source)
	if err != nil {
		return err
	}

	prog, err := lang.ParseString(source)
	if err != nil {
		return report(err, source)
	}

	// Surface duplicate procedure names as check failures
	if _, err := exec.ProcedureTable(prog); err != nil {
		return report(err, source)
	}

	switch c.Dump {
	case "native":
		err = lang.Format(prog, os.Stdout)
	case "json":
		err = lang.FormatJSON(prog, os.Stdout)
	case "yaml":
		err = lang.FormatYAML(prog, os.Stdout)
	}
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "program ok",
		slog.String("source", c.Source),
		slog.Int("procedures", len(prog.Procs)),
	)

	return nil
}
