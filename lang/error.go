package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // wrapped error (for errors.Unwrap)
	attrs []slog.Attr // attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// It creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LexError reports a lexical fault at a source line.
// It is fatal to the lex pass.
type LexError struct {
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d: %s", e.Line, e.Msg)
}

// Pos returns the originating source line.
func (e *LexError) Pos() int { return e.Line }

// SyntaxError reports a grammar fault with the expected construct in natural
// language, the literal text actually found, and a short corrective example.
// It is fatal to the parse pass.
type SyntaxError struct {
	Line     int
	Col      int
	Expected string // natural-language description of the expected construct
	Found    string // literal text or kind of the offending token
	Hint     string // short corrective example
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(": expected ")
	buf.WriteString(e.Expected)
	buf.WriteString(", found ")
	buf.WriteString(strconv.Quote(e.Found))

	if e.Hint != "" {
		buf.WriteString(" (e.g. ")
		buf.WriteString(e.Hint)
		buf.WriteString(")")
	}

	return buf.String()
}

// Pos returns the originating source line.
func (e *SyntaxError) Pos() int { return e.Line }

// positioned is satisfied by every line-addressed error in this module:
// LexError, SyntaxError, and the exec package's runtime errors.
type positioned interface {
	Pos() int
}

// PosOf extracts the originating source line from any line-addressed error
// in the error chain. It reports false when the error carries no position.
func PosOf(err error) (int, bool) {
	var p positioned
	if errors.As(err, &p) {
		return p.Pos(), true
	}

	return 0, false
}

// Annotate renders a source snippet pointing at the line (and column, when
// nonzero) carried by err. It returns the error text unchanged when err
// carries no position.
func Annotate(err error, source string) string {
	line, ok := PosOf(err)
	if !ok || line <= 0 {
		return err.Error()
	}

	col := 0

	se := &SyntaxError{}
	if errors.As(err, &se) {
		col = se.Col
	}

	lines := strings.Split(source, "\n")

	var buf strings.Builder

	buf.WriteString(err.Error())
	buf.WriteString("\n")

	// Show the offending line if within bounds
	if line <= len(lines) {
		lineText := lines[line-1]

		buf.WriteString("  ")
		buf.WriteString(strconv.Itoa(line))
		buf.WriteString(" | ")
		buf.WriteString(lineText)
		buf.WriteString("\n")

		// Print marker pointing to the column
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		lineNumWidth := len(strconv.Itoa(line))
		padding := strings.Repeat(" ", lineNumWidth+5)

		if col > 0 {
			padding += strings.Repeat(" ", col-1)
		}

		buf.WriteString(padding + "^\n")
	}

	return buf.String()
}
