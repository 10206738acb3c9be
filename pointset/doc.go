// Package pointset builds deterministic 2D point sets for tests, benchmarks
// and the sepline gen command.
//
// The package offers:
//
//   - Build(opts, gens...): resolve options once, run generators in order and
//     return the accumulated points with IDs assigned in emission order.
//   - Generators:
//     – Grid(rows, cols, step): row-major lattice.
//     – Diagonal(n):            (i, i) for i in [0, n).
//     – Collinear(axis, n):     n points on one vertical or horizontal line.
//     – RandomUnique(n, span):  n distinct points in [0, span)²; needs WithSeed or WithRand.
//   - Options: WithSeed, WithRand, WithOffset; Shifted places one generator apart.
//
// Guarantees:
//
//   - Determinism: same options, seed and generator order ⇒ identical points.
//   - Distinctness: Build rejects a point emitted twice with ErrDuplicatePoint,
//     including duplicates produced by two different generators.
//   - Option constructors panic on nil arguments; generators return sentinel
//     errors and never panic.
package pointset
