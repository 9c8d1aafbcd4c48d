package board

import (
	"strings"
	"testing"
)

func TestNew_SizeBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "minimum", width: 1, height: 1},
		{name: "typical", width: 8, height: 8},
		{name: "maximum", width: 50, height: 50},
		{name: "rectangular", width: 3, height: 40},
		{name: "zero width", width: 0, height: 8, wantErr: true},
		{name: "zero height", width: 8, height: 0, wantErr: true},
		{name: "negative", width: -1, height: 8, wantErr: true},
		{name: "width too large", width: 51, height: 8, wantErr: true},
		{name: "height too large", width: 8, height: 51, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("New: %v", err)
			}

			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d",
					b.Width(), b.Height(), tt.width, tt.height)
			}

			if x, y := b.Head(); x != 0 || y != 0 {
				t.Errorf("head at (%d, %d), want origin", x, y)
			}

			if b.State() != Editing {
				t.Errorf("state = %v, want Editing", b.State())
			}
		})
	}
}

func TestBoard_Cells(t *testing.T) {
	b, err := New(4, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := b.SetColor(2, 1, Red); err != nil {
		t.Fatalf("SetColor: %v", err)
	}

	if got := b.ColorAt(2, 1); got != Red {
		t.Errorf("ColorAt(2, 1) = %v, want Red", got)
	}

	// Reads are total: out-of-bounds cells are empty.
	if got := b.ColorAt(-1, 0); got != None {
		t.Errorf("ColorAt(-1, 0) = %v, want None", got)
	}
	if got := b.ColorAt(4, 0); got != None {
		t.Errorf("ColorAt(4, 0) = %v, want None", got)
	}

	// Writes are partial: out-of-bounds cells are an error.
	if err := b.SetColor(4, 0, Green); err == nil {
		t.Error("SetColor outside the grid did not fail")
	}
	if err := b.SetColor(0, 3, Green); err == nil {
		t.Error("SetColor outside the grid did not fail")
	}
}

func TestBoard_SetHead(t *testing.T) {
	b, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := b.SetHead(3, 2); err != nil {
		t.Fatalf("SetHead: %v", err)
	}

	if x, y := b.Head(); x != 3 || y != 2 {
		t.Errorf("head at (%d, %d), want (3, 2)", x, y)
	}

	if err := b.SetHead(4, 2); err == nil {
		t.Error("SetHead outside the grid did not fail")
	}

	// A failed move leaves the head where it was.
	if x, y := b.Head(); x != 3 || y != 2 {
		t.Errorf("head at (%d, %d) after failed move, want (3, 2)", x, y)
	}
}

func TestBoard_StateMachine(t *testing.T) {
	tests := []struct {
		name    string
		path    []State
		wantErr bool
	}{
		{name: "full run", path: []State{Running, Finished}},
		{name: "failed run", path: []State{Running, Failed}},
		{name: "back to editing", path: []State{Running, Finished, Editing}},
		{name: "skip running", path: []State{Finished}, wantErr: true},
		{name: "fail while editing", path: []State{Failed}, wantErr: true},
		{name: "run twice", path: []State{Running, Running}, wantErr: true},
		{name: "edit mid-run allowed", path: []State{Running, Editing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(2, 2)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for i, next := range tt.path {
				err = b.SetState(next)

				last := i == len(tt.path)-1
				if last && tt.wantErr {
					if err == nil {
						t.Errorf("transition to %v did not fail", next)
					}
					return
				}

				if err != nil {
					t.Fatalf("transition %d to %v: %v", i, next, err)
				}
			}
		})
	}
}

func TestBoard_TerminalStatesAreReadOnly(t *testing.T) {
	b, err := New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = b.SetState(Running)
	_ = b.SetState(Finished)

	err = b.SetColor(0, 0, Red)
	if err == nil {
		t.Fatal("painting a finished board did not fail")
	}

	if !strings.Contains(err.Error(), "reset before editing") {
		t.Errorf("error %q does not tell the user to reset", err)
	}

	b.Reset()

	if err := b.SetColor(0, 0, Red); err != nil {
		t.Errorf("painting after reset failed: %v", err)
	}
}

func TestBoard_Resize(t *testing.T) {
	b, err := New(6, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = b.SetColor(5, 5, Green)
	_ = b.SetHead(5, 5)
	_ = b.SetState(Running)

	if err := b.Resize(3, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	if b.Width() != 3 || b.Height() != 3 {
		t.Errorf("size = %dx%d, want 3x3", b.Width(), b.Height())
	}

	// Head fell outside the new bounds: clamped to origin.
	if x, y := b.Head(); x != 0 || y != 0 {
		t.Errorf("head at (%d, %d), want origin", x, y)
	}

	// Cells are reallocated empty.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := b.ColorAt(x, y); got != None {
				t.Errorf("ColorAt(%d, %d) = %v after resize, want None", x, y, got)
			}
		}
	}

	if b.State() != Editing {
		t.Errorf("state = %v after resize, want Editing", b.State())
	}

	if err := b.Resize(0, 3); err == nil {
		t.Error("resize to illegal bounds did not fail")
	}
}

func TestBoard_ResizeKeepsHeadInBounds(t *testing.T) {
	b, err := New(6, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = b.SetHead(2, 2)

	if err := b.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	// Head still fits: it stays put.
	if x, y := b.Head(); x != 2 || y != 2 {
		t.Errorf("head at (%d, %d), want (2, 2)", x, y)
	}
}

func TestBoard_ResetIdempotent(t *testing.T) {
	b, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = b.SetColor(1, 1, Black)
	_ = b.SetHead(3, 3)
	_ = b.SetState(Running)

	b.Reset()
	once := b.Clone()

	b.Reset()
	if !b.Equal(once) {
		t.Error("second reset changed the board")
	}

	if got := b.ColorAt(1, 1); got != None {
		t.Errorf("ColorAt(1, 1) = %v after reset, want None", got)
	}

	if x, y := b.Head(); x != 0 || y != 0 {
		t.Errorf("head at (%d, %d) after reset, want origin", x, y)
	}

	if b.State() != Editing {
		t.Errorf("state = %v after reset, want Editing", b.State())
	}
}

func TestBoard_CloneRestore(t *testing.T) {
	b, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = b.SetColor(1, 2, Red)
	_ = b.SetHead(2, 3)

	snapshot := b.Clone()

	if !b.Equal(snapshot) {
		t.Fatal("clone of an untouched board is not equal to it")
	}

	// Mutating the clone never affects the live board.
	_ = snapshot.SetColor(0, 0, Black)
	_ = snapshot.SetHead(1, 1)

	if got := b.ColorAt(0, 0); got != None {
		t.Errorf("live board cell mutated through the clone: %v", got)
	}
	if x, y := b.Head(); x != 2 || y != 3 {
		t.Errorf("live board head mutated through the clone: (%d, %d)", x, y)
	}

	// Restore brings the live board back to the snapshot.
	_ = b.SetColor(3, 3, Green)
	_ = b.SetHead(0, 0)

	b.Restore(snapshot)

	if !b.Equal(snapshot) {
		t.Error("restored board differs from its snapshot")
	}

	// The snapshot stays independent after the restore.
	_ = snapshot.SetColor(3, 0, Black)
	if got := b.ColorAt(3, 0); got != None {
		t.Errorf("restored board aliases the snapshot: %v", got)
	}
}
