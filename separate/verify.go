package separate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sepline/cells"
	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

// Verify checks that the given lines separate every pair of points. It uses
// only the points and the line coordinates; committed flags are ignored.
// The first offending pair is reported in an error wrapping ErrUnseparated.
func Verify(points []core.Point, ls []lines.Line) error {
	part, err := partitionOf(ls)
	if err != nil {
		return err
	}

	return verifyPoints(part, points)
}

// VerifyRemoval checks that dropping removed kept every pair of points inside
// its strip separated by kept. The strip runs between the nearest kept lines of
// removed's axis on either side, bounds inclusive, or is unbounded where no
// such line exists.
func VerifyRemoval(points []core.Point, kept []lines.Line, removed lines.Line) error {
	left, right := math.Inf(-1), math.Inf(1)
	for _, l := range kept {
		if l.Axis != removed.Axis {
			continue
		}
		if l.Coord < removed.Coord && l.Coord > left {
			left = l.Coord
		}
		if l.Coord > removed.Coord && l.Coord < right {
			right = l.Coord
		}
	}

	var strip []core.Point
	for _, p := range points {
		c := float64(p.Coord(removed.Axis))
		if c >= left && c <= right {
			strip = append(strip, p)
		}
	}

	part, err := partitionOf(kept)
	if err != nil {
		return err
	}
	if err = verifyPoints(part, strip); err != nil {
		return fmt.Errorf("removing %s=%g: %w: %w", removed.Axis, removed.Coord, ErrRemovalUnsound, err)
	}

	return nil
}

func partitionOf(ls []lines.Line) (*cells.Partition, error) {
	var xs, ys []float64
	for _, l := range ls {
		if l.Axis == core.X {
			xs = append(xs, l.Coord)
		} else {
			ys = append(ys, l.Coord)
		}
	}

	return cells.NewPartition(xs, ys)
}

// verifyPoints reports the first pair sharing a cell, then checks every point
// that lies on a line against all other points.
func verifyPoints(part *cells.Partition, points []core.Point) error {
	if cs := part.Collisions(points); len(cs) > 0 {
		return unseparated(points, cs[0].Points[0], cs[0].Points[1])
	}
	for _, id := range part.OnLine(points) {
		a := find(points, id)
		for _, b := range points {
			if b.ID != a.ID && !part.Separated(a, b) {
				return unseparated(points, a.ID, b.ID)
			}
		}
	}

	return nil
}

func unseparated(points []core.Point, i, j int) error {
	a, b := find(points, i), find(points, j)

	return fmt.Errorf("points %d (%d,%d) and %d (%d,%d): %w", a.ID, a.X, a.Y, b.ID, b.X, b.Y, ErrUnseparated)
}

// find returns the point with the given ID; points may be a subset, so IDs
// are not indices.
func find(points []core.Point, id int) core.Point {
	for _, p := range points {
		if p.ID == id {
			return p
		}
	}

	return core.Point{ID: id}
}
