package lines

import (
	"errors"

	"github.com/katalvlaran/sepline/core"
)

// ErrLineNotFound indicates a line ID outside the Set.
var ErrLineNotFound = errors.New("lines: line not found")

// Line is an axis-parallel candidate line.
//
// An X-line is the vertical line x = Coord; a Y-line is the horizontal line
// y = Coord. Only Committed changes after generation.
type Line struct {
	ID        int
	Axis      core.Axis
	Coord     float64
	Committed bool
}

// Set owns all candidate lines of one instance.
//
// lines is indexed by Line.ID. byAxis keeps the generation order per axis and
// order keeps the first-commit order of every line that was ever committed.
type Set struct {
	lines  []Line
	byAxis [2][]int
	order  []int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}
