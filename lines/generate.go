package lines

import "github.com/katalvlaran/sepline/core"

// Generate appends the candidate lines of one axis to set and returns how many
// were added: n−1 for n ≥ 2 points, 0 otherwise.
//
// The sorted sequence [0, n−1] is split at mid = (lo+hi)/2; a candidate is
// emitted at the midpoint of the coordinates at ranks mid and mid+1, then the
// halves [lo, mid] and [mid+1, hi] are processed in that order (pre-order).
//
// When the two coordinates are equal the candidate lies on a point. It is still
// emitted so both axes keep n−1 candidates; it can never separate anything.
func Generate(set *Set, views *core.Views, axis core.Axis) int {
	before := set.Len()
	generate(set, views, axis, 0, views.Len()-1)

	return set.Len() - before
}

func generate(set *Set, views *core.Views, axis core.Axis, lo, hi int) {
	if hi-lo < 1 {
		return
	}
	mid := (lo + hi) / 2
	set.Add(axis, Midpoint(views.Coord(axis, mid), views.Coord(axis, mid+1)))

	generate(set, views, axis, lo, mid)
	generate(set, views, axis, mid+1, hi)
}

// Midpoint returns the average of a and b. For integer inputs the result is
// always exact: an integer or an integer plus one half.
func Midpoint(a, b int) float64 {
	return float64(a) + (float64(b)-float64(a))/2
}
