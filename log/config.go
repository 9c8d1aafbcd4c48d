package log

import (
	"io"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the level's lowercase name.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return slog.Level(l).String()
	}
}

// ParseLevel parses a string representation of a log level.
// Unrecognized names return DefaultLevel.
func ParseLevel(s string) Level {
	// slog.Level.UnmarshalText doesn't recognize "trace"
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	l := new(slog.Level)
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the log output format.
type Format int

const (
	FormatJSON Format = iota // json
	FormatText               // text
)

// DefaultFormat is the default log output format.
const DefaultFormat = FormatJSON

// String returns the format's lowercase name.
func (f Format) String() string {
	if f == FormatText {
		return "text"
	}

	return "json"
}

// ParseFormat parses a string representation of a log format.
// Unrecognized names return DefaultFormat.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "text") {
		return FormatText
	}

	return DefaultFormat
}

// config holds the logger settings applied at creation time.
type config struct {
	w      io.Writer
	level  Level
	format Format
	pretty bool
}

func makeConfig(w io.Writer, options ...Option) config {
	cfg := config{
		w:      w,
		level:  DefaultLevel,
		format: DefaultFormat,
	}

	for _, opt := range options {
		cfg = opt(cfg)
	}

	return cfg
}

// opts reconstructs the functional options equivalent to cfg, so a logger
// can be rebuilt with overrides layered on top.
func (c config) opts() []Option {
	return []Option{
		WithLevel(c.level),
		WithFormat(c.format),
		WithPretty(c.pretty),
	}
}

// handler builds the slog.Handler for the configured format.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.Level(c.level)}

	switch {
	case c.format == FormatText && c.pretty:
		return newPrettyTextHandler(c.w, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.w, opts)
	default:
		return slog.NewJSONHandler(c.w, opts)
	}
}
