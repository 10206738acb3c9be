package separate

import (
	"sort"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

// stripMargin pads the outermost strip beyond the extreme coordinates so the
// first and last points of an axis always fall inside it.
const stripMargin = 0.5

// optimize drops redundant committed lines according to mode and returns the
// pass statistics plus the dropped lines in removal order. The X pass runs
// first; the Y pass then sees the X lines the X pass removed.
func optimize(points []core.Point, views *core.Views, set *lines.Set, mode OptimizeMode) (OptimizeStats, []lines.Line) {
	var (
		stats   OptimizeStats
		dropped []lines.Line
	)
	if mode == Off {
		return stats, nil
	}

	for {
		stats.Rounds++
		before := len(dropped)
		for _, axis := range core.Axes {
			examined, removed := optimizeAxis(points, views, set, axis)
			stats.Examined += examined
			dropped = append(dropped, removed...)
		}
		if mode != FixedPoint || len(dropped) == before {
			break
		}
	}
	stats.Removed = len(dropped)

	return stats, dropped
}

// optimizeAxis makes one ascending pass over the committed lines of axis.
//
// A line's strip runs from the nearest lower line still committed (or the
// axis minimum − stripMargin) to the next higher committed line (or the axis
// maximum + stripMargin), both bounds inclusive. The line is dropped when every
// pair of strip points adjacent in the orthogonal order has a committed
// orthogonal line within its inclusive coordinate range. Orthogonal lines do
// not change during the pass.
func optimizeAxis(points []core.Point, views *core.Views, set *lines.Set, axis core.Axis) (int, []lines.Line) {
	sorted := set.CommittedSorted(axis)
	if len(sorted) == 0 {
		return 0, nil
	}

	var (
		other   = axis.Other()
		ortho   = set.Coords(other)
		byOther = views.Ranks(other, 0, views.Len())
		lowest  = float64(views.Min(axis)) - stripMargin
		highest = float64(views.Max(axis)) + stripMargin
		removed []lines.Line
	)

	for idx, l := range sorted {
		left := lowest
		for j := idx - 1; j >= 0; j-- {
			if set.IsCommitted(sorted[j].ID) {
				left = sorted[j].Coord
				break
			}
		}
		right := highest
		if idx+1 < len(sorted) {
			right = sorted[idx+1].Coord
		}

		if !stripCovered(points, byOther, axis, left, right, ortho) {
			continue
		}
		if err := set.Uncommit(l.ID); err != nil {
			continue
		}
		l.Committed = false
		removed = append(removed, l)
	}

	return len(sorted), removed
}

// stripCovered walks the points in orthogonal order, keeping those whose axis
// coordinate lies in [left, right], and checks every consecutive pair against
// the sorted orthogonal coordinates.
func stripCovered(points []core.Point, byOther []int, axis core.Axis, left, right float64, ortho []float64) bool {
	other := axis.Other()
	prev := -1
	for _, id := range byOther {
		c := float64(points[id].Coord(axis))
		if c < left || c > right {
			continue
		}
		if prev >= 0 {
			lo := float64(points[prev].Coord(other))
			hi := float64(points[id].Coord(other))
			if !anyWithin(ortho, lo, hi) {
				return false
			}
		}
		prev = id
	}

	return true
}

// anyWithin reports whether sorted holds a value in [lo, hi].
func anyWithin(sorted []float64, lo, hi float64) bool {
	i := sort.SearchFloat64s(sorted, lo)

	return i < len(sorted) && sorted[i] <= hi
}
