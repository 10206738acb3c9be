// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// impl_grid.go — Grid(rows, cols, step).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, step ≥ 1 (else ErrTooFewPoints).
//   • Emits (c*step, r*step) in row-major order: r ascending, then c ascending.
//
// Complexity: O(rows*cols).

package pointset

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Generator for a rows×cols lattice with the given spacing.
func Grid(rows, cols, step int) Generator {
	return func(s *Sink, cfg config) error {
		if rows < minGridDim || cols < minGridDim || step < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d, step=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, step, minGridDim, ErrTooFewPoints)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := s.emit(cfg, c*step, r*step); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}

		return nil
	}
}
