// Package board holds the mutable world a QDraw program acts on: a bounded
// 2-D grid of cell colors plus a head coordinate, guarded by a small
// execution state machine.
//
// Origin (0,0) is the top-left cell; x grows rightward and y grows downward.
package board

import (
	"fmt"
)

// Board side length bounds.
const (
	MinSize = 1
	MaxSize = 50
)

// Color is the paint state of a single cell.
type Color int

const (
	None Color = iota
	Black
	Red
	Green
)

// String returns a short lowercase name for the color.
func (c Color) String() string {
	switch c {
	case None:
		return "empty"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// State is the board's execution state machine.
//
// Legal transitions: Editing to Running when execution starts, Running to
// Finished on clean completion, Running to Failed on a runtime fault, and
// any state to Editing on reset or resize. Finished and Failed are terminal
// until reset.
type State int

const (
	Editing State = iota
	Running
	Finished
	Failed
)

// String returns a short lowercase name for the state.
func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Board is a bounded grid of cell colors with a single movable head.
// It is exclusively owned by one executor for the duration of a run;
// Clone is the sanctioned way to hand a consistent copy to an observer.
type Board struct {
	width  int
	height int
	cells  []Color
	headX  int
	headY  int
	state  State
}

// New creates an all-empty board with the head at the origin.
// Width and height must both be within [MinSize, MaxSize].
func New(width, height int) (*Board, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}, nil
}

func validateSize(width, height int) error {
	if width < MinSize || width > MaxSize ||
		height < MinSize || height > MaxSize {
		return fmt.Errorf(
			"board size %dx%d out of bounds: sides must be within [%d, %d]",
			width, height, MinSize, MaxSize,
		)
	}

	return nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Head returns the head's current cell coordinate.
func (b *Board) Head() (x, y int) { return b.headX, b.headY }

// State returns the current execution state.
func (b *Board) State() State { return b.state }

// InBounds reports whether (x, y) addresses a cell on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ColorAt returns the color of cell (x, y). It is total: coordinates outside
// the grid read as None.
func (b *Board) ColorAt(x, y int) Color {
	if !b.InBounds(x, y) {
		return None
	}

	return b.cells[y*b.width+x]
}

// SetColor paints cell (x, y). It is partial: coordinates outside the grid
// are an error. Cell edits are permitted while Editing (manual edits) or
// Running (executor paints); terminal states are read-only until reset.
func (b *Board) SetColor(x, y int, c Color) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf(
			"cell (%d, %d) outside the %dx%d grid",
			x, y, b.width, b.height,
		)
	}

	if b.state == Finished || b.state == Failed {
		return fmt.Errorf("board is %s: reset before editing cells", b.state)
	}

	b.cells[y*b.width+x] = c

	return nil
}

// SetHead moves the head to cell (x, y).
// Coordinates outside the grid are an error; the executor turns that into a
// boundary-violation fault with source context.
func (b *Board) SetHead(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf(
			"head position (%d, %d) outside the %dx%d grid",
			x, y, b.width, b.height,
		)
	}

	b.headX, b.headY = x, y

	return nil
}

// SetState transitions the execution state machine, rejecting transitions
// the machine does not define. Transitioning to Editing is always legal and
// is how reset and resize force the machine back to its initial state.
func (b *Board) SetState(next State) error {
	legal := next == Editing ||
		(b.state == Editing && next == Running) ||
		(b.state == Running && (next == Finished || next == Failed))

	if !legal {
		return fmt.Errorf("illegal state transition %s to %s", b.state, next)
	}

	b.state = next

	return nil
}

// Resize re-validates the bounds, reallocates the grid to all-empty, clamps
// the head to the origin if it falls outside the new bounds, and forces the
// state to Editing.
func (b *Board) Resize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}

	b.width, b.height = width, height
	b.cells = make([]Color, width*height)

	if !b.InBounds(b.headX, b.headY) {
		b.headX, b.headY = 0, 0
	}

	b.state = Editing

	return nil
}

// Reset clears every cell, returns the head to the origin, and forces the
// state to Editing. Resetting an already-reset board is a no-op.
func (b *Board) Reset() {
	clear(b.cells)
	b.headX, b.headY = 0, 0
	b.state = Editing
}

// Clone returns a deep copy with no aliasing between the live board and the
// copy: mutating one never affects the other. Together with Restore it
// implements the before/after snapshot contract.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
		headX:  b.headX,
		headY:  b.headY,
		state:  b.state,
	}
}

// Restore copies every cell, the head position, and the state from snapshot
// into b. The snapshot remains independent after the copy.
func (b *Board) Restore(snapshot *Board) {
	b.width = snapshot.width
	b.height = snapshot.height
	b.cells = make([]Color, len(snapshot.cells))
	copy(b.cells, snapshot.cells)
	b.headX = snapshot.headX
	b.headY = snapshot.headY
	b.state = snapshot.state
}

// Equal reports whether two boards have identical dimensions, cells, head
// position, and state.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height ||
		b.headX != other.headX || b.headY != other.headY ||
		b.state != other.state {
		return false
	}

	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}

	return true
}
