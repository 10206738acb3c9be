// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// impl_line.go — Diagonal(n) and Collinear(axis, n).
//
// Both need n ≥ 1 and emit in index order. Diagonal points are separable on
// either axis; Collinear points share one coordinate so only lines of the
// varying axis can split them.

package pointset

import (
	"fmt"

	"github.com/katalvlaran/sepline/core"
)

const (
	methodDiagonal  = "Diagonal"
	methodCollinear = "Collinear"
	minLinePoints   = 1
)

// Diagonal returns a Generator for (i, i), i in [0, n).
func Diagonal(n int) Generator {
	return func(s *Sink, cfg config) error {
		if n < minLinePoints {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodDiagonal, n, minLinePoints, ErrTooFewPoints)
		}
		for i := 0; i < n; i++ {
			if err := s.emit(cfg, i, i); err != nil {
				return fmt.Errorf("%s: %w", methodDiagonal, err)
			}
		}

		return nil
	}
}

// Collinear returns a Generator for n points whose axis coordinate runs over
// [0, n) while the other coordinate stays 0. Collinear(core.X, n) is a row.
func Collinear(axis core.Axis, n int) Generator {
	return func(s *Sink, cfg config) error {
		if n < minLinePoints {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCollinear, n, minLinePoints, ErrTooFewPoints)
		}
		for i := 0; i < n; i++ {
			x, y := i, 0
			if axis == core.Y {
				x, y = 0, i
			}
			if err := s.emit(cfg, x, y); err != nil {
				return fmt.Errorf("%s: %w", methodCollinear, err)
			}
		}

		return nil
	}
}
