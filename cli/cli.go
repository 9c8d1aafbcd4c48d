// Package cli wires the qdraw command-line interface: flag parsing with
// kong, logging and profiling flag groups, and an optional YAML config file
// for flag defaults.
package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Reader10/Interprete-QDraw/cli/cmd"
	"github.com/Reader10/Interprete-QDraw/cli/cmd/play"
	"github.com/Reader10/Interprete-QDraw/pkg"
)

// CLI is the top-level command-line interface for qdraw.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Check cmd.Check `cmd:"" help:"Parse a program and report diagnostics"`
	Run   cmd.Run   `cmd:"" help:"Execute a program and print the final board"`
	Play  play.Play `cmd:"" help:"Animate a program in an interactive terminal UI"`
}

// Run executes the qdraw CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Vars{"version": strings.TrimSpace(pkg.Version)},
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(resolve, configPaths()...),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	stop := cli.Pprof.config().Start()
	defer stop.Stop()

	return ktx.Run()
}
