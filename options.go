package cubecoord

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures move table building and loading.
type Option func(*config)

type config struct {
	workers int
	logger  zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		workers: runtime.NumCPU(),
		logger:  zerolog.Nop(),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithWorkers sets how many goroutines sweep the coordinate space.
// Values below 1 fall back to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		c.workers = n
	}
}

// WithLogger sets the logger used to report table builds and loads.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
