// Package lines models axis-parallel candidate lines and generates them by
// divide and conquer over an axis-sorted view.
//
// What:
//
//   - Line is an axis tag, a coordinate and a committed flag. Its ID is its
//     index in the owning Set and never changes.
//   - Set is the single source of truth for every candidate of both axes of one
//     instance. It remembers per-axis generation order and the order in which
//     lines were committed; committed views are derived on demand.
//   - Generate emits one candidate at the midpoint of every binary split of the
//     sorted point sequence, outer splits first.
//
// Why midpoints:
//
//	For n points a split between ranks mid and mid+1 is the line that cuts the
//	most pairs at that recursion level. Recursing on both halves yields exactly
//	n−1 candidates per axis, one per adjacent rank boundary, so every pair of
//	points with distinct coordinates on that axis has a candidate between them.
//
// Complexity:
//
//   - Generate: O(n) time, O(log n) recursion depth.
//   - CommittedSorted: O(k log k) for k committed lines.
//
// Errors:
//
//   - ErrLineNotFound: an ID outside the Set.
package lines
