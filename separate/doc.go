// Package separate computes a reduced set of axis-parallel lines that
// separates every pair of points of a static 2D point set.
//
// The point set is treated as a complete graph: every pair of points starts
// connected, and a committed line removes every connection it crosses. A Solver
// runs three phases in strict order:
//
//  1. Generation. lines.Generate emits n−1 midpoint candidates per axis.
//  2. Commitment. Candidates are tested in lockstep by generation index,
//     X candidate k before Y candidate k. A candidate is committed when some
//     pair on opposite sides of it is still connected; every such pair is then
//     disconnected. The phase stops when either list is exhausted or no
//     connection remains.
//  3. Optimization. Each committed line is dropped when, inside the strip
//     bounded by its committed neighbours on the same axis, every pair of
//     points adjacent in the orthogonal order is already split by a committed
//     orthogonal line. The X axis is processed first; the Y pass sees the X
//     lines the X pass left in place.
//
// Optimization modes:
//
//	SinglePass  one X pass then one Y pass (default)
//	FixedPoint  repeat both passes until a round removes nothing
//	Off         keep every committed line
//
// Verification:
//
//	Verify re-derives separation from the final lines alone through a
//	cells.Partition and never consults the solver's connectivity store.
//	VerifyRemoval checks that dropping a single line left the points of its
//	strip separated.
//
// Observability:
//
//	A Solver logs through an injected *slog.Logger, opens an OpenTelemetry
//	span per solve with a child span per phase, and records counters and
//	phase durations on an optional *Metrics.
//
// Complexity:
//
//   - Commitment: O(n) candidates, each tested in O(n²/64) worst case.
//   - Optimization: O(k · n log n) per pass for k committed lines.
//   - Verify: O(n log k).
package separate
