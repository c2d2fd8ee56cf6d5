package config

import (
	"runtime"

	"go.uber.org/multierr"
)

// DefaultDistortionThreshold is the percentage distortion at or below
// which the balance search accepts the current (x, y) immediately,
// before the balance search stops early.
const DefaultDistortionThreshold = 5.0

// Config holds the tunable parameters of a partition search.
//
// Config is immutable once resolved by New; each call to
// partition.FindPartitionPoint should resolve its own Config.
type Config struct {
	// DistortionThreshold is the maximum acceptable distortion before
	// the balance search stops early.
	DistortionThreshold float64
	// Workers bounds the number of goroutines the partition pass's
	// fork-join worker pool uses to classify arcs concurrently.
	Workers int
}

// Option customizes a Config. As a rule, options never panic and ignore
// out-of-range inputs rather than producing an invalid Config.
type Option func(cfg *Config)

// New returns a Config initialized with defaults — distortion threshold
// 5.0, worker count runtime.NumCPU() — then applies opts in order.
func New(opts ...Option) *Config {
	cfg := &Config{
		DistortionThreshold: DefaultDistortionThreshold,
		Workers:             runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDistortionThreshold overrides the early-exit distortion threshold.
// Non-positive values are ignored.
func WithDistortionThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.DistortionThreshold = threshold
		}
	}
}

// WithWorkers overrides the worker pool size. Non-positive values are
// ignored; the pool always runs with at least one worker.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// Validate checks a search's bounds and grid dimensions against the
// configuration error classes, combining every independent
// failure into a single error via multierr so callers see all of them
// at once instead of stopping at the first.
func Validate(x0, x1, y0, y1, gridDimX, gridDimY, arcCount int) error {
	var err error
	if x0 >= x1 || y0 >= y1 {
		err = multierr.Append(err, ErrInvertedBounds)
	}
	if gridDimX <= 0 || gridDimY <= 0 {
		err = multierr.Append(err, ErrNonPositiveGridDim)
	}
	if arcCount == 0 {
		err = multierr.Append(err, ErrEmptyArcs)
	}
	return err
}
