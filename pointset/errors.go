// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// errors.go — sentinel errors for the pointset package.
//
// Callers branch with errors.Is; generators attach context with %w.

package pointset

import "errors"

// ErrTooFewPoints indicates a size parameter (n, rows, cols, step) below its minimum.
var ErrTooFewPoints = errors.New("pointset: parameter too small")

// ErrNeedRandSource indicates a stochastic generator ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("pointset: rng is required")

// ErrSpanTooSmall indicates RandomUnique was asked for more points than span² cells.
var ErrSpanTooSmall = errors.New("pointset: span too small for requested points")

// ErrSpanTooLarge indicates a RandomUnique span above MaxSpan.
var ErrSpanTooLarge = errors.New("pointset: span too large")

// ErrDuplicatePoint indicates two generators emitted the same coordinates.
var ErrDuplicatePoint = errors.New("pointset: duplicate point")

// ErrNilGenerator indicates a nil Generator passed to Build.
var ErrNilGenerator = errors.New("pointset: nil generator")
