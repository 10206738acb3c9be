// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// api.go — Build orchestrator and the Generator type.

package pointset

import (
	"fmt"

	"github.com/katalvlaran/sepline/core"
)

// Generator emits points into a Sink using the resolved config. Generators
// validate their parameters before emitting anything.
type Generator func(s *Sink, cfg config) error

// Sink accumulates emitted points and rejects duplicates.
type Sink struct {
	points []core.Point
	seen   map[[2]int]int
}

func newSink() *Sink {
	return &Sink{seen: make(map[[2]int]int)}
}

// emit appends (x, y) shifted by the configured offset.
func (s *Sink) emit(cfg config, x, y int) error {
	x, y = x+cfg.dx, y+cfg.dy
	key := [2]int{x, y}
	if prev, ok := s.seen[key]; ok {
		return fmt.Errorf("(%d,%d) already emitted as point %d: %w", x, y, prev, ErrDuplicatePoint)
	}
	id := len(s.points)
	s.seen[key] = id
	s.points = append(s.points, core.Point{ID: id, X: x, Y: y})

	return nil
}

// Build resolves opts, runs gens in order and returns the accumulated points.
// Any generator error is wrapped with "Build: %w" and returned immediately.
func Build(opts []Option, gens ...Generator) ([]core.Point, error) {
	cfg := newConfig(opts...)
	sink := newSink()
	for i, gen := range gens {
		if gen == nil {
			return nil, fmt.Errorf("Build: generator %d: %w", i, ErrNilGenerator)
		}
		if err := gen(sink, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return sink.points, nil
}
