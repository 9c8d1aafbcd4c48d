package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/Reader10/Interprete-QDraw/log"
	"github.com/Reader10/Interprete-QDraw/pkg"
)

// logConfig declares the flags controlling the shared package logger.
type logConfig struct {
	Level  string `default:"info" enum:"trace,debug,info,warn,error" help:"Set logging level (${enum})"`
	Format string `default:"text" enum:"text,json"                   help:"Set logging format (${enum})"`
	Pretty bool   `default:"true" negatable:""                       help:"Colorize text output"`
}

func (logConfig) group() kong.Group {
	return kong.Group{
		Key:   "log",
		Title: "Logging options:",
	}
}

func (c logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(c.Level)),
		log.WithFormat(log.ParseFormat(c.Format)),
		log.WithPretty(c.Pretty),
	)
	log.DebugContext(ctx, "logging configured",
		slog.String("name", pkg.Name),
		slog.String("version", pkg.Version),
	)
}
