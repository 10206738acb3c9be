package separate

import (
	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

// Split returns the highest rank p, on l's axis, whose point lies strictly
// below l. ok is false when the split is degenerate: no point below, no point
// above, or the point at rank p+1 lies exactly on l.
func Split(views *core.Views, l lines.Line) (p int, ok bool) {
	n := views.Len()
	p = views.NearestBefore(l.Axis, l.Coord)
	if p < 0 || p+1 >= n {
		return p, false
	}
	if float64(views.Coord(l.Axis, p+1)) == l.Coord {
		return p, false
	}

	return p, true
}

// Crosses reports whether some point at ranks [0..p] is still connected to
// some point at ranks [p+1..n−1], where p is l's split. A degenerate split
// crosses nothing.
func Crosses(store *core.Store, views *core.Views, l lines.Line) bool {
	p, ok := Split(views, l)
	if !ok {
		return false
	}

	return store.AnyConnected(views.Ranks(l.Axis, 0, p+1), views.Ranks(l.Axis, p+1, views.Len()))
}

// commitLockstep tests X candidate k then Y candidate k for k = 0, 1, ...
// until either list runs out or no connection remains. A crossing candidate is
// committed and every pair it crosses is disconnected; a candidate that
// crosses nothing stays uncommitted.
func commitLockstep(store *core.Store, views *core.Views, set *lines.Set) (CommitStats, error) {
	var (
		stats CommitStats
		cands = [2][]int{set.Candidates(core.X), set.Candidates(core.Y)}
		steps = min(len(cands[core.X]), len(cands[core.Y]))
	)

	for k := 0; k < steps && store.RemainingConnections() > 0; k++ {
		for _, axis := range core.Axes {
			if store.RemainingConnections() == 0 {
				break
			}
			l, err := set.Line(cands[axis][k])
			if err != nil {
				return stats, err
			}
			p, ok := Split(views, l)
			if !ok {
				stats.Skipped++
				continue
			}
			stats.Tested++

			below := views.Ranks(axis, 0, p+1)
			above := views.Ranks(axis, p+1, views.Len())
			if !store.AnyConnected(below, above) {
				continue
			}
			if err = set.Commit(l.ID); err != nil {
				return stats, err
			}
			store.DisconnectAll(below, above)
			stats.Committed++
		}
	}

	return stats, nil
}
