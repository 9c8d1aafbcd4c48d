package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Reader10/Interprete-QDraw/board"
	"github.com/Reader10/Interprete-QDraw/exec"
	"github.com/Reader10/Interprete-QDraw/lang"
	"github.com/Reader10/Interprete-QDraw/log"
)

// Run executes a program headless and prints the final board.
type Run struct {
	Source string `arg:"" help:"Program source file or '-' for stdin" name:"source" default:"-"`

	Width  int    `help:"Board width in cells"                   default:"8" short:"W"`
	Height int    `help:"Board height in cells"                  default:"8" short:"H"`
	Speed  string `help:"Pacing between commands (${enum})"      default:"instant" enum:"instant,fast,normal,slow"`
	Diff   bool   `help:"Also print the board before execution"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) error {
	source, err := LoadSource(r.Source)
	if err != nil {
		return err
	}

	prog, err := lang.ParseString(source)
	if err != nil {
		return report(err, source)
	}

	b, err := board.New(r.Width, r.Height)
	if err != nil {
		return err
	}

	x, err := exec.New(b, prog,
		exec.WithSpeed(exec.ParseSpeed(r.Speed)),
		exec.WithLogger(log.Default()),
	)
	if err != nil {
		return report(err, source)
	}

	before := b.Clone()

	if err := b.SetState(board.Running); err != nil {
		return err
	}

	result, runErr := x.Execute(ctx)
	if runErr != nil {
		_ = b.SetState(board.Failed)
	} else {
		_ = b.SetState(board.Finished)
	}

	if r.Diff {
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
			RenderBoard(before), "  ", RenderBoard(b),
		))
	} else {
		fmt.Println(RenderBoard(b))
	}

	if runErr != nil {
		if errors.Is(runErr, exec.ErrCancelled) {
			log.InfoContext(ctx, "execution cancelled",
				slog.Uint64("steps", result.Steps),
			)
			return runErr
		}
		fmt.Fprintln(os.Stderr, lang.Annotate(runErr, source))
		return runErr
	}

	log.InfoContext(ctx, "execution finished",
		slog.Uint64("steps", result.Steps),
		slog.String("state", b.State().String()),
	)

	return nil
}
