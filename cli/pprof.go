package cli

import (
	"github.com/alecthomas/kong"

	"github.com/Reader10/Interprete-QDraw/profile"
)

// pprofConfig declares the flags controlling runtime profiling.
type pprofConfig struct {
	Mode  string `default:""     enum:",cpu,mem,mutex,block,goroutine,trace" help:"Enable profiling mode (${enum})"`
	Path  string `default:""     type:"path"                                 help:"Write profiles to directory"`
	Quiet bool   `default:"true" negatable:""                                help:"Suppress profiler messages"`
}

func (pprofConfig) group() kong.Group {
	return kong.Group{
		Key:   "pprof",
		Title: "Profiling options:",
	}
}

func (c pprofConfig) config() profile.Config {
	return profile.Make(
		profile.WithMode(c.Mode),
		profile.WithPath(c.Path),
		profile.WithQuiet(c.Quiet),
	)
}
