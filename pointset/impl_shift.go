// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// impl_shift.go — Shifted(dx, dy, gen).
//
// Composes with the Build-wide WithOffset: both translations add up.

package pointset

import "fmt"

const methodShifted = "Shifted"

// Shifted returns a Generator that runs gen with its points translated by
// (dx, dy), so several shapes can be placed side by side in one Build.
func Shifted(dx, dy int, gen Generator) Generator {
	return func(s *Sink, cfg config) error {
		if gen == nil {
			return fmt.Errorf("%s: %w", methodShifted, ErrNilGenerator)
		}
		cfg.dx += dx
		cfg.dy += dy

		return gen(s, cfg)
	}
}
