// Package exec walks a parsed QDraw program against a board, enforcing the
// runtime limits and the cooperative cancellation/pacing contract used to
// animate execution.
//
// Concurrency is cooperative, not parallel: the only suspension points are
// the fixed post-command pacing delays, ordering is strictly sequential and
// deterministic, and the board is exclusively owned by one executor for the
// run's duration. Cancellation is checked at statement boundaries, so the
// board is always left consistent with some prefix of the program having
// fully executed.
package exec

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/Reader10/Interprete-QDraw/board"
	"github.com/Reader10/Interprete-QDraw/lang"
	"github.com/Reader10/Interprete-QDraw/log"
)

// Runtime limits. The step and recursion caps are the system's only
// liveness guarantee against non-terminating or explosively recursive
// programs; the repeat cap bounds loop blowup independently of the looser
// lexical bound on number literals.
const (
	MaxSteps       = 100_000
	MaxCallDepth   = 1000
	MaxRepeatCount = 10_000
)

// Observer is invoked with no arguments after each successfully applied
// command, before the pacing delay. It must not mutate interpreter state;
// observers that need the board take a board.Board Clone through their own
// channel.
type Observer func()

// Option configures an Executor at construction.
type Option func(*Executor)

// WithSpeed sets the pacing level for the run.
func WithSpeed(s Speed) Option {
	return func(x *Executor) { x.speed = s }
}

// WithObserver sets the per-command step observer.
func WithObserver(fn Observer) Option {
	return func(x *Executor) { x.observe = fn }
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(x *Executor) { x.logger = logger }
}

// Executor runs one program against one board. It is scoped to a single
// run: create a new Executor for each execution.
type Executor struct {
	board   *board.Board
	prog    *lang.Program
	procs   map[string]*lang.Procedure
	steps   uint64
	stack   []string // procedure call chain, len = recursion depth
	speed   Speed
	observe Observer
	logger  log.Logger
}

// Result carries the terminal outcome of a successful run.
type Result struct {
	Steps uint64
}

// New builds an executor, resolving the program's procedure table.
// Two procedures sharing a name is a *DefinitionError reporting both
// definition lines.
func New(b *board.Board, prog *lang.Program, opts ...Option) (*Executor, error) {
	if prog.Main == nil {
		return nil, fmt.Errorf("program has no main block")
	}

	procs, err := ProcedureTable(prog)
	if err != nil {
		return nil, err
	}

	x := &Executor{
		board: b,
		prog:  prog,
		procs: procs,
		speed: Normal,
	}

	for _, opt := range opts {
		opt(x)
	}

	return x, nil
}

// ProcedureTable maps procedure names to their declarations, failing with a
// *DefinitionError when two procedures share a name.
func ProcedureTable(prog *lang.Program) (map[string]*lang.Procedure, error) {
	procs := make(map[string]*lang.Procedure, len(prog.Procs))

	for _, proc := range prog.Procs {
		if first, ok := procs[proc.Name]; ok {
			return nil, &DefinitionError{
				Name:       proc.Name,
				FirstLine:  first.Line,
				SecondLine: proc.Line,
			}
		}

		procs[proc.Name] = proc
	}

	return procs, nil
}

// Execute runs the program's main block to completion or failure.
//
// On success the result carries the total step count. On failure the error
// carries the originating source line and a human-readable message. Either
// way the board's state machine is left for the caller to mark Finished or
// Failed.
func (x *Executor) Execute(ctx context.Context) (Result, error) {
	x.logger.DebugContext(ctx, "execution start",
		slog.Int("procedures", len(x.procs)),
		slog.String("speed", x.speed.String()),
	)

	if err := x.runBlock(ctx, x.prog.Main); err != nil {
		x.logger.DebugContext(ctx, "execution failed",
			slog.Uint64("steps", x.steps),
			slog.Any("error", err),
		)

		return Result{Steps: x.steps}, err
	}

	x.logger.DebugContext(ctx, "execution complete",
		slog.Uint64("steps", x.steps),
	)

	return Result{Steps: x.steps}, nil
}

// runBlock executes a statement sequence depth-first, left to right.
func (x *Executor) runBlock(ctx context.Context, block *lang.Block) error {
	for _, stmt := range block.Stmts {
		if err := x.runStmt(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func (x *Executor) runStmt(ctx context.Context, stmt lang.Stmt) error {
	// Cancellation is checked before every statement, never mid-mutation.
	if ctx.Err() != nil {
		return &RunError{
			Kind: Cancelled,
			Line: stmt.Pos(),
			Msg:  "execution cancelled by user",
		}
	}

	switch s := stmt.(type) {
	case *lang.CommandStmt:
		if err := x.countStep(s); err != nil {
			return err
		}

		if err := x.runCommand(s); err != nil {
			return err
		}

		x.afterCommand(ctx)

		return nil

	case *lang.CallStmt:
		if err := x.countStep(s); err != nil {
			return err
		}

		return x.runCall(ctx, s)

	case *lang.RepeatStmt:
		// The repeat construct itself consumes no step; its body is
		// counted per iteration.
		return x.runRepeat(ctx, s)

	case *lang.IfStmt:
		// Sensors are pure reads of the head's cell; the branch taken does
		// not advance the step counter beyond this statement's own step.
		if err := x.countStep(s); err != nil {
			return err
		}

		if x.sense(s.Cond) {
			return x.runBlock(ctx, s.Then)
		}

		if s.Else != nil {
			return x.runBlock(ctx, s.Else)
		}

		return nil

	default:
		return fmt.Errorf("line %d: unsupported statement %T", stmt.Pos(), stmt)
	}
}

// countStep advances the step counter and enforces the execution cap,
// aborting at the statement that tipped it over.
func (x *Executor) countStep(stmt lang.Stmt) error {
	x.steps++
	if x.steps > MaxSteps {
		return &RunError{
			Kind: StepLimit,
			Line: stmt.Pos(),
			Msg: fmt.Sprintf(
				"step limit exceeded: more than %d statements executed, "+
					"the program probably never terminates",
				MaxSteps,
			),
		}
	}

	return nil
}

func (x *Executor) runCommand(s *lang.CommandStmt) error {
	hx, hy := x.board.Head()

	switch s.Cmd {
	case lang.CmdMoveUp:
		return x.moveHead(s, hx, hy, 0, -1)
	case lang.CmdMoveDown:
		return x.moveHead(s, hx, hy, 0, 1)
	case lang.CmdMoveRight:
		return x.moveHead(s, hx, hy, 1, 0)
	case lang.CmdMoveLeft:
		return x.moveHead(s, hx, hy, -1, 0)
	case lang.CmdPaintBlack:
		return x.board.SetColor(hx, hy, board.Black)
	case lang.CmdPaintRed:
		return x.board.SetColor(hx, hy, board.Red)
	case lang.CmdPaintGreen:
		return x.board.SetColor(hx, hy, board.Green)
	case lang.CmdClear:
		return x.board.SetColor(hx, hy, board.None)
	default:
		return fmt.Errorf("line %d: unsupported command %s", s.Line, s.Cmd)
	}
}

// moveHead validates the destination cell before moving. Stepping outside
// the grid is fatal to the whole run, annotated with the source line and
// the coordinate the head was leaving from.
func (x *Executor) moveHead(s *lang.CommandStmt, hx, hy, dx, dy int) error {
	nx, ny := hx+dx, hy+dy
	if !x.board.InBounds(nx, ny) {
		return &RunError{
			Kind: Boundary,
			Line: s.Line,
			Msg: fmt.Sprintf(
				"BOOM: %s would take the head outside the %dx%d grid from (%d, %d)",
				s.Cmd, x.board.Width(), x.board.Height(), hx, hy,
			),
		}
	}

	return x.board.SetHead(nx, ny)
}

// afterCommand invokes the step observer and then suspends for the pacing
// interval. This is the sole scheduling point in the system; an in-flight
// suspension honors cancellation at the next statement boundary.
func (x *Executor) afterCommand(ctx context.Context) {
	if x.observe != nil {
		x.observe()
	}

	delay := x.speed.Delay()
	if delay <= 0 {
		return
	}

	timer := time.NewTimer(delay)

	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
	}
}

func (x *Executor) runCall(ctx context.Context, s *lang.CallStmt) error {
	proc, ok := x.procs[s.Name]
	if !ok {
		return x.unknownProcedure(s)
	}

	if len(x.stack) >= MaxCallDepth {
		return &RunError{
			Kind: RecursionLimit,
			Line: s.Line,
			Msg: fmt.Sprintf(
				"call depth limit exceeded (%d): %s",
				MaxCallDepth,
				strings.Join(append(x.stack, s.Name), " → "),
			),
		}
	}

	x.stack = append(x.stack, s.Name)

	// Popped even if the body fails, so depth accounting stays correct for
	// stack reporting in the terminal error.
	defer func() {
		x.stack = x.stack[:len(x.stack)-1]
	}()

	return x.runBlock(ctx, proc.Body)
}

func (x *Executor) unknownProcedure(s *lang.CallStmt) error {
	names := make([]string, 0, len(x.procs))
	for name := range x.procs {
		names = append(names, name)
	}

	sort.Strings(names)

	var msg strings.Builder

	fmt.Fprintf(&msg, "unknown procedure %q", s.Name)

	if len(names) == 0 {
		msg.WriteString("; no procedures are defined")
	} else {
		msg.WriteString("; defined procedures: ")
		msg.WriteString(strings.Join(names, ", "))

		if matches := fuzzy.Find(s.Name, names); len(matches) > 0 {
			fmt.Fprintf(&msg, "; did you mean %s?", matches[0].Str)
		}
	}

	fmt.Fprintf(&msg, "; declare it with 'procedimiento %s() { ... }'", s.Name)

	return &RunError{Kind: UnknownProcedure, Line: s.Line, Msg: msg.String()}
}

func (x *Executor) runRepeat(ctx context.Context, s *lang.RepeatStmt) error {
	// The runtime cap is tighter than the lexical literal bound; it exists
	// specifically to bound repeat blowup, and trips before any statement
	// in the body executes.
	if s.Count > MaxRepeatCount {
		return &RunError{
			Kind: RepeatLimit,
			Line: s.Line,
			Msg: fmt.Sprintf(
				"repeat count %d exceeds the maximum of %d",
				s.Count, MaxRepeatCount,
			),
		}
	}

	for range s.Count {
		if err := x.runBlock(ctx, s.Body); err != nil {
			return err
		}
	}

	return nil
}

// sense evaluates a sensor against the head's current cell. Sensors never
// mutate state.
func (x *Executor) sense(s lang.Sensor) bool {
	c := x.board.ColorAt(x.board.Head())

	switch s {
	case lang.SenseEmpty:
		return c == board.None
	case lang.SensePaintedBlack:
		return c == board.Black
	case lang.SensePaintedRed:
		return c == board.Red
	case lang.SensePaintedGreen:
		return c == board.Green
	default:
		return false
	}
}
