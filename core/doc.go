// Package core holds the point set of one separating-lines instance and the
// connectivity relation over it.
//
// The point set is treated as a complete graph K_n: initially every point is
// connected to every other point, n·(n−1) ordered connections in total.
// Committing an axis-parallel line removes every connection it crosses; the
// relation only ever shrinks and a removed connection never comes back.
//
// What lives here:
//
//   - Point, Axis — immutable integer coordinates plus a stable ID (input order).
//   - Store       — owns the points and the symmetric connectivity relation,
//     stored as one bitset per point, and the remaining-connection counter.
//   - Views       — two read-only orderings of point IDs (by X and by Y) used for
//     binary partitioning and for locating the split of a candidate line.
//
// Invariants:
//
//   - RemainingConnections() == 2 × (number of still-connected unordered pairs).
//   - Disconnect decrements the counter by exactly 2, once per pair; repeated
//     calls on the same pair are no-ops, so the counter never goes negative.
//   - NewStore verifies the n·(n−1) construction total and reports
//     ErrInvariantViolation if it does not hold.
//
// Concurrency:
//
//	Store serializes mutations behind a sync.RWMutex, so a caller that spreads
//	work across goroutines still observes a consistent relation. Views are
//	immutable after construction and safe to share.
//
// Complexity:
//
//   - NewStore:        O(n²/64) words, O(n²) time.
//   - Disconnect:      O(1).
//   - NewViews:        O(n log n).
//   - NearestBefore:   O(log n).
//
// Errors:
//
//   - ErrCapacityExceeded:   more points than the configured capacity.
//   - ErrInvariantViolation: the initial relation does not total n·(n−1).
//   - ErrPointNotFound:      an ID or rank outside the point set.
package core
