package pointset

import "math/rand"

// config aggregates the knobs used by generators. It is passed by value.
type config struct {
	rng    *rand.Rand // nil means no randomness
	dx, dy int
}

// newConfig applies opts in order over the zero config; later options win.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
