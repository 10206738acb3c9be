// File: view.go
// Role: Read-only axis-sorted orderings of a point set.
// Determinism:
//   - Stable sort: points with equal keys keep their input order. Callers must
//     not rely on the tie order for correctness.
// Concurrency:
//   - Immutable after NewViews; safe for concurrent readers.

package core

import (
	"fmt"
	"sort"
)

// Views holds two orderings of the same point IDs: ascending X and ascending Y.
// Views never own points; they index into a snapshot taken at construction.
type Views struct {
	points []Point
	order  [2][]int // order[axis][rank] = point ID
}

// NewViews sorts the IDs of points by each axis. Point IDs must equal their
// index in points, as produced by Store.Points.
//
// Complexity: O(n log n).
func NewViews(points []Point) *Views {
	v := &Views{points: make([]Point, len(points))}
	copy(v.points, points)

	for _, a := range Axes {
		ids := make([]int, len(points))
		for i := range ids {
			ids[i] = i
		}
		axis := a
		sort.SliceStable(ids, func(l, r int) bool {
			return v.points[ids[l]].Coord(axis) < v.points[ids[r]].Coord(axis)
		})
		v.order[a] = ids
	}

	return v
}

// Len returns the number of points in each ordering.
func (v *Views) Len() int {
	return len(v.points)
}

// Order returns a copy of the IDs in ascending order of axis a.
func (v *Views) Order(a Axis) []int {
	out := make([]int, len(v.order[a]))
	copy(out, v.order[a])

	return out
}

// Ranks returns the IDs at ranks [lo, hi) of axis a. The slice aliases the
// view and must not be modified.
func (v *Views) Ranks(a Axis, lo, hi int) []int {
	return v.order[a][lo:hi]
}

// At returns the point at the given rank of axis a.
func (v *Views) At(a Axis, rank int) (Point, error) {
	if rank < 0 || rank >= len(v.points) {
		return Point{}, fmt.Errorf("At(%s, %d): %w", a, rank, ErrPointNotFound)
	}

	return v.points[v.order[a][rank]], nil
}

// Coord returns the axis-a coordinate of the point at rank. rank must be valid.
func (v *Views) Coord(a Axis, rank int) int {
	return v.points[v.order[a][rank]].Coord(a)
}

// Min returns the smallest axis-a coordinate; 0 for an empty view.
func (v *Views) Min(a Axis) int {
	if len(v.points) == 0 {
		return 0
	}

	return v.Coord(a, 0)
}

// Max returns the largest axis-a coordinate; 0 for an empty view.
func (v *Views) Max(a Axis) int {
	if len(v.points) == 0 {
		return 0
	}

	return v.Coord(a, len(v.points)-1)
}

// NearestBefore returns the highest rank on axis a whose coordinate is strictly
// less than c, or -1 when c is at or below every coordinate.
//
// Complexity: O(log n).
func (v *Views) NearestBefore(a Axis, c float64) int {
	ids := v.order[a]
	first := sort.Search(len(ids), func(r int) bool {
		return float64(v.points[ids[r]].Coord(a)) >= c
	})

	return first - 1
}
