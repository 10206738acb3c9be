// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// impl_random.go — RandomUnique(n, span).
//
// Contract:
//   • n ≥ 1 and span ≥ 1 (else ErrTooFewPoints); span ≤ MaxSpan (else
//     ErrSpanTooLarge); n ≤ span² (else ErrSpanTooSmall).
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Draws n distinct cells of the span×span lattice by partial Fisher–Yates
//     over a lazily materialized index map, so memory stays O(n).
//
// Determinism: identical for a fixed seed, n and span.

package pointset

import "fmt"

const methodRandomUnique = "RandomUnique"

// MaxSpan bounds the RandomUnique lattice side so span² fits in an int64.
const MaxSpan = 1 << 30

// RandomUnique returns a Generator for n distinct points in [0, span)².
func RandomUnique(n, span int) Generator {
	return func(s *Sink, cfg config) error {
		if n < 1 || span < 1 {
			return fmt.Errorf("%s: n=%d, span=%d (each must be ≥ 1): %w", methodRandomUnique, n, span, ErrTooFewPoints)
		}
		if span > MaxSpan {
			return fmt.Errorf("%s: span=%d > %d: %w", methodRandomUnique, span, MaxSpan, ErrSpanTooLarge)
		}
		total := span * span
		if n > total {
			return fmt.Errorf("%s: n=%d > span²=%d: %w", methodRandomUnique, n, total, ErrSpanTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomUnique, ErrNeedRandSource)
		}

		// swapped[i] holds the value at position i after earlier swaps; absent means i.
		swapped := make(map[int]int, n)
		at := func(i int) int {
			if v, ok := swapped[i]; ok {
				return v
			}
			return i
		}
		for i := 0; i < n; i++ {
			j := i + cfg.rng.Intn(total-i)
			vi, vj := at(i), at(j)
			swapped[i], swapped[j] = vj, vi
			if err := s.emit(cfg, vj%span, vj/span); err != nil {
				return fmt.Errorf("%s: %w", methodRandomUnique, err)
			}
		}

		return nil
	}
}
