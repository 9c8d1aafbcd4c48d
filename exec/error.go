package exec

import (
	"errors"
	"fmt"
)

// Kind classifies the runtime fault taxonomy. Every kind except Cancelled is
// a program defect; Cancelled is user-initiated and never reported as one.
type Kind int

const (
	// Boundary is the fatal "BOOM" fault raised when a movement command
	// would take the head outside the grid.
	Boundary Kind = iota

	// UnknownProcedure is a call to a name with no matching declaration.
	UnknownProcedure

	// RecursionLimit is raised when the call stack depth reaches its cap.
	RecursionLimit

	// StepLimit is raised when the execution-step cap is exceeded.
	StepLimit

	// RepeatLimit is raised when a repeat count exceeds its runtime cap.
	RepeatLimit

	// Cancelled is a user-initiated abort, checked at statement boundaries.
	Cancelled
)

// ErrCancelled is the sentinel matched by errors.Is for user-initiated
// aborts, letting callers distinguish them from program faults.
var ErrCancelled = errors.New("execution cancelled by user")

// RunError is a line-addressed runtime fault. All kinds abort the run
// immediately; none are retried or recovered internally.
type RunError struct {
	Kind Kind
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Pos returns the originating source line.
func (e *RunError) Pos() int { return e.Line }

// Is reports cancellation errors as ErrCancelled for errors.Is.
func (e *RunError) Is(target error) bool {
	return target == ErrCancelled && e.Kind == Cancelled
}

// DefinitionError reports two procedures sharing one name. It is raised at
// executor construction, before any execution.
type DefinitionError struct {
	Name       string
	FirstLine  int
	SecondLine int
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf(
		"duplicate procedure name %q: defined at line %d and again at line %d",
		e.Name, e.FirstLine, e.SecondLine,
	)
}

// Pos returns the second definition's source line.
func (e *DefinitionError) Pos() int { return e.SecondLine }
