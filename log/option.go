package log

// Option applies a configuration option to config.
type Option func(config) config

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithPretty enables colorized pretty printing for the text format.
func WithPretty(pretty bool) Option {
	return func(c config) config {
		c.pretty = pretty

		return c
	}
}
