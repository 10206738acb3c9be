package lines

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sepline/core"
)

// Add appends an uncommitted candidate and returns its ID.
func (s *Set) Add(axis core.Axis, coord float64) int {
	id := len(s.lines)
	s.lines = append(s.lines, Line{ID: id, Axis: axis, Coord: coord})
	s.byAxis[axis] = append(s.byAxis[axis], id)

	return id
}

// Len returns the number of candidates of both axes.
func (s *Set) Len() int {
	return len(s.lines)
}

// Line returns a copy of the line with the given ID.
func (s *Set) Line(id int) (Line, error) {
	if id < 0 || id >= len(s.lines) {
		return Line{}, fmt.Errorf("Line(%d): %w", id, ErrLineNotFound)
	}

	return s.lines[id], nil
}

// Candidates returns the IDs of axis candidates in generation order.
func (s *Set) Candidates(axis core.Axis) []int {
	out := make([]int, len(s.byAxis[axis]))
	copy(out, s.byAxis[axis])

	return out
}

// Commit marks a line committed. The first commit of a line fixes its
// position in the commit order; recommitting keeps the original position.
func (s *Set) Commit(id int) error {
	if id < 0 || id >= len(s.lines) {
		return fmt.Errorf("Commit(%d): %w", id, ErrLineNotFound)
	}
	if s.lines[id].Committed {
		return nil
	}
	s.lines[id].Committed = true
	for _, o := range s.order {
		if o == id {
			return nil
		}
	}
	s.order = append(s.order, id)

	return nil
}

// Uncommit clears the committed flag of a line.
func (s *Set) Uncommit(id int) error {
	if id < 0 || id >= len(s.lines) {
		return fmt.Errorf("Uncommit(%d): %w", id, ErrLineNotFound)
	}
	s.lines[id].Committed = false

	return nil
}

// IsCommitted reports whether the line is committed; unknown IDs report false.
func (s *Set) IsCommitted(id int) bool {
	return id >= 0 && id < len(s.lines) && s.lines[id].Committed
}

// CommittedCount returns the number of currently committed lines.
func (s *Set) CommittedCount() int {
	c := 0
	for _, id := range s.order {
		if s.lines[id].Committed {
			c++
		}
	}

	return c
}

// Committed returns the committed lines of both axes in commit order.
func (s *Set) Committed() []Line {
	out := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		if s.lines[id].Committed {
			out = append(out, s.lines[id])
		}
	}

	return out
}

// EverCommitted returns every line that was committed at some point, in commit
// order, with its current flag.
func (s *Set) EverCommitted() []Line {
	out := make([]Line, len(s.order))
	for i, id := range s.order {
		out[i] = s.lines[id]
	}

	return out
}

// CommittedSorted returns the committed lines of one axis in ascending
// coordinate order; equal coordinates keep ID order.
func (s *Set) CommittedSorted(axis core.Axis) []Line {
	var out []Line
	for _, id := range s.byAxis[axis] {
		if s.lines[id].Committed {
			out = append(out, s.lines[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Coord < out[j].Coord })

	return out
}

// Coords returns the ascending coordinates of the committed lines of one axis.
func (s *Set) Coords(axis core.Axis) []float64 {
	sorted := s.CommittedSorted(axis)
	out := make([]float64, len(sorted))
	for i, l := range sorted {
		out[i] = l.Coord
	}

	return out
}
