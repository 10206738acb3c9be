package cells

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/sepline/core"
)

// NewPartition copies and sorts the line coordinates. Duplicated coordinates
// are kept; they only add an empty column or row.
// Returns ErrNaNCoordinate if any coordinate is NaN.
func NewPartition(xs, ys []float64) (*Partition, error) {
	p := &Partition{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(p.xs, xs)
	copy(p.ys, ys)
	for _, c := range [][]float64{p.xs, p.ys} {
		for _, v := range c {
			if math.IsNaN(v) {
				return nil, ErrNaNCoordinate
			}
		}
		sort.Float64s(c)
	}
	p.Width, p.Height = len(p.xs)+1, len(p.ys)+1

	return p, nil
}

// Lines returns the sorted line coordinates of one axis.
func (p *Partition) Lines(a core.Axis) []float64 {
	src := p.xs
	if a == core.Y {
		src = p.ys
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// InBounds reports whether c addresses a cell of the grid.
// Complexity: O(1).
func (p *Partition) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < p.Width && c.Row >= 0 && c.Row < p.Height
}

// Index maps c to its row-major index Row*Width + Col.
func (p *Partition) Index(c Cell) int {
	return c.Row*p.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (p *Partition) Coordinate(idx int) (Cell, error) {
	if idx < 0 || idx >= p.Width*p.Height {
		return Cell{}, fmt.Errorf("Coordinate(%d): %w", idx, ErrCellIndex)
	}

	return Cell{Col: idx % p.Width, Row: idx / p.Width}, nil
}

// CellOf returns the cell containing pt. ok is false when pt lies exactly on
// a line, in which case the returned cell is the one just above and right of
// that line.
// Complexity: O(log k).
func (p *Partition) CellOf(pt core.Point) (c Cell, ok bool) {
	col, onX := locate(p.xs, float64(pt.X))
	row, onY := locate(p.ys, float64(pt.Y))

	return Cell{Col: col, Row: row}, !onX && !onY
}

// locate returns the number of coordinates strictly below v and whether v
// equals one of them.
func locate(sorted []float64, v float64) (int, bool) {
	i := sort.SearchFloat64s(sorted, v)

	return i, i < len(sorted) && sorted[i] == v
}

// Separated reports whether some line lies strictly between a and b on
// either axis.
// Complexity: O(log k).
func (p *Partition) Separated(a, b core.Point) bool {
	return between(p.xs, a.X, b.X) || between(p.ys, a.Y, b.Y)
}

// between reports whether sorted holds a value strictly inside (lo, hi) in
// either order of the bounds.
func between(sorted []float64, u, v int) bool {
	lo, hi := float64(min(u, v)), float64(max(u, v))
	i := sort.Search(len(sorted), func(k int) bool { return sorted[k] > lo })

	return i < len(sorted) && sorted[i] < hi
}

// Collisions returns every cell holding more than one point, ordered by the
// row-major index of the cell. Points on a line are ignored; see OnLine.
// Complexity: O(n log k).
func (p *Partition) Collisions(points []core.Point) []Collision {
	buckets := p.bucket(points)
	keys := make([]int, 0, len(buckets))
	for idx, ids := range buckets {
		if len(ids) > 1 {
			keys = append(keys, idx)
		}
	}
	sort.Ints(keys)

	out := make([]Collision, len(keys))
	for i, idx := range keys {
		c, _ := p.Coordinate(idx)
		out[i] = Collision{Cell: c, Points: buckets[idx]}
	}

	return out
}

// Occupied returns the number of distinct cells holding at least one point.
// Points on a line are not counted.
func (p *Partition) Occupied(points []core.Point) int {
	return len(p.bucket(points))
}

// OnLine returns the IDs of points lying exactly on at least one line.
func (p *Partition) OnLine(points []core.Point) []int {
	var out []int
	for _, pt := range points {
		if _, ok := p.CellOf(pt); !ok {
			out = append(out, pt.ID)
		}
	}

	return out
}

// bucket groups point IDs by the row-major index of their cell.
func (p *Partition) bucket(points []core.Point) map[int][]int {
	buckets := make(map[int][]int, len(points))
	for _, pt := range points {
		c, ok := p.CellOf(pt)
		if !ok {
			continue
		}
		idx := p.Index(c)
		buckets[idx] = append(buckets[idx], pt.ID)
	}

	return buckets
}
