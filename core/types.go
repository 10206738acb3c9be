// SPDX-License-Identifier: MIT
// Package: sepline/core
//
// types.go — Axis, Point, Store, StoreOption and sentinel errors.

package core

import (
	"errors"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for core operations.
var (
	// ErrCapacityExceeded indicates the point set is larger than the store capacity.
	ErrCapacityExceeded = errors.New("core: point count exceeds capacity")

	// ErrInvariantViolation indicates the connectivity relation was built with a
	// total other than n·(n−1). It signals a construction defect, not bad input.
	ErrInvariantViolation = errors.New("core: connectivity invariant violated")

	// ErrPointNotFound indicates a point ID or rank outside [0, n).
	ErrPointNotFound = errors.New("core: point not found")
)

// DefaultCapacity is the point capacity applied by NewStore when no
// WithCapacity option is given.
const DefaultCapacity = 100

// Axis selects a coordinate of a Point.
//
// A line on axis X is vertical (it cuts the X coordinate); a line on axis Y is
// horizontal.
type Axis int

const (
	// X is the horizontal coordinate; X-lines are vertical.
	X Axis = iota
	// Y is the vertical coordinate; Y-lines are horizontal.
	Y
)

// Axes lists both axes in processing order.
var Axes = [2]Axis{X, Y}

// String returns "x" or "y".
func (a Axis) String() string {
	if a == X {
		return "x"
	}

	return "y"
}

// Other returns the orthogonal axis.
func (a Axis) Other() Axis {
	if a == X {
		return Y
	}

	return X
}

// Point is an immutable integer coordinate pair with a stable identity.
// ID is the index of the point in input order.
type Point struct {
	ID int
	X  int
	Y  int
}

// Coord returns the coordinate of p on axis a.
func (p Point) Coord(a Axis) int {
	if a == X {
		return p.X
	}

	return p.Y
}

// StoreOption configures a Store before its relation is built.
type StoreOption func(s *Store)

// WithCapacity bounds the number of points a Store accepts.
// A non-positive capacity removes the bound.
func WithCapacity(capacity int) StoreOption {
	return func(s *Store) { s.capacity = capacity }
}

// Store owns the points of one instance and the connectivity relation over them.
//
// adjacency[i] is a bitset over point IDs: bit j is set while i and j are still
// connected. The relation is kept symmetric by every mutation. degree[i] caches
// the popcount of adjacency[i]; remaining is the sum of all degrees.
type Store struct {
	mu sync.RWMutex // guards adjacency, degree and remaining

	capacity int
	points   []Point

	adjacency []*bitset.BitSet
	degree    []int
	remaining int
}
