package lang

import "github.com/ardnew/vcalc/log"

// Option configures the pipeline entry points.
type Option func(*config)

// config holds the options shared by [Run], [Exec] and [Interpret].
type config struct {
	logger log.Logger
}

func makeConfig(opts ...Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger sets the logger used for trace output.
// The zero value of [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}
