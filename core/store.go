// SPDX-License-Identifier: MIT
// Package: sepline/core
//
// store.go — Store construction, connectivity queries and disconnection.
// Determinism:
//   - Point IDs equal input indices; NeighborIDs returns ascending IDs.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NewStore copies points, assigns ID = input index, and connects every ordered
// pair (i, j) with i != j.
//
// Steps:
//  1. Apply options; reject len(points) > capacity with ErrCapacityExceeded.
//  2. Copy points, overwriting IDs with their index.
//  3. Build the complete relation and verify it totals n·(n−1).
//
// A total other than n·(n−1) is reported as ErrInvariantViolation; callers are
// expected to treat it as fatal.
//
// Complexity: O(n²) time, O(n²/64) words of memory.
func NewStore(points []Point, opts ...StoreOption) (*Store, error) {
	s := &Store{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	if s.capacity > 0 && len(points) > s.capacity {
		return nil, fmt.Errorf("NewStore: n=%d > capacity=%d: %w", len(points), s.capacity, ErrCapacityExceeded)
	}

	s.points = make([]Point, len(points))
	for i, p := range points {
		s.points[i] = Point{ID: i, X: p.X, Y: p.Y}
	}

	if err := s.connectAll(); err != nil {
		return nil, err
	}

	return s, nil
}

// connectAll builds the complete relation K_n and checks its total.
func (s *Store) connectAll() error {
	n := len(s.points)
	s.adjacency = make([]*bitset.BitSet, n)
	s.degree = make([]int, n)
	s.remaining = 0

	for i := 0; i < n; i++ {
		s.adjacency[i] = bitset.New(uint(n))
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			s.adjacency[i].Set(uint(j))
			s.degree[i]++
			s.remaining++
		}
	}

	if want := n * (n - 1); s.remaining != want {
		return fmt.Errorf("NewStore: established %d connections, want %d: %w", s.remaining, want, ErrInvariantViolation)
	}

	return nil
}

// Len returns the number of points.
func (s *Store) Len() int {
	return len(s.points)
}

// Point returns the point with the given ID.
func (s *Store) Point(id int) (Point, error) {
	if id < 0 || id >= len(s.points) {
		return Point{}, fmt.Errorf("Point(%d): %w", id, ErrPointNotFound)
	}

	return s.points[id], nil
}

// Points returns a copy of the point set in ID order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)

	return out
}

// RemainingConnections returns the live connection counter: twice the number of
// unordered pairs that are still connected.
func (s *Store) RemainingConnections() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.remaining
}

// Connected reports whether points i and j are still connected.
// Out-of-range IDs and i == j report false.
func (s *Store) Connected(i, j int) bool {
	if !s.valid(i) || !s.valid(j) || i == j {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.adjacency[i].Test(uint(j))
}

// Degree returns how many points i is still connected to, or 0 for an unknown ID.
func (s *Store) Degree(i int) int {
	if !s.valid(i) {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.degree[i]
}

// NeighborIDs returns the IDs still connected to i in ascending order.
func (s *Store) NeighborIDs(i int) ([]int, error) {
	if !s.valid(i) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", i, ErrPointNotFound)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.adjacency[i]
	out := make([]int, 0, row.Count())
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out, nil
}

// Disconnect removes the connection between i and j in both directions and
// reports whether it existed. Disconnecting an already separated pair, a point
// from itself, or an unknown ID is a no-op: the counter is untouched.
func (s *Store) Disconnect(i, j int) bool {
	if !s.valid(i) || !s.valid(j) || i == j {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.disconnectLocked(i, j)
}

// AnyConnected reports whether some ID in left is still connected to some ID
// in right. Unknown IDs are ignored.
//
// Complexity: O(|left|·|right|) under one read lock.
func (s *Store) AnyConnected(left, right []int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range left {
		if !s.valid(i) || s.degree[i] == 0 {
			continue
		}
		row := s.adjacency[i]
		for _, j := range right {
			if s.valid(j) && row.Test(uint(j)) {
				return true
			}
		}
	}

	return false
}

// DisconnectAll removes every connection between left and right and returns
// the number of unordered pairs that were actually disconnected.
//
// Complexity: O(|left|·|right|) under one write lock.
func (s *Store) DisconnectAll(left, right []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, i := range left {
		if !s.valid(i) {
			continue
		}
		for _, j := range right {
			if s.valid(j) && i != j && s.disconnectLocked(i, j) {
				removed++
			}
		}
	}

	return removed
}

// disconnectLocked clears the (i, j) pair; callers hold mu for writing.
func (s *Store) disconnectLocked(i, j int) bool {
	if !s.adjacency[i].Test(uint(j)) {
		return false
	}
	s.adjacency[i].Clear(uint(j))
	s.adjacency[j].Clear(uint(i))
	s.degree[i]--
	s.degree[j]--
	s.remaining -= 2

	return true
}

func (s *Store) valid(id int) bool {
	return id >= 0 && id < len(s.points)
}
