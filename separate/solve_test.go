package separate_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
	"github.com/katalvlaran/sepline/separate"
)

// mk builds points from coordinate pairs; IDs follow input order.
func mk(xy ...[2]int) []core.Point {
	out := make([]core.Point, len(xy))
	for i, p := range xy {
		out[i] = core.Point{ID: i, X: p[0], Y: p[1]}
	}

	return out
}

// tags renders lines as "v 1.5" / "h 2.0" in the order given.
func tags(ls []lines.Line) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		tag := "v"
		if l.Axis == core.Y {
			tag = "h"
		}
		out[i] = fmt.Sprintf("%s %.1f", tag, l.Coord)
	}

	return out
}

func TestSolve_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		points  []core.Point
		want    []string
		removed []string
	}{
		{"Single", mk([2]int{5, 5}), []string{}, nil},
		{"Empty", nil, []string{}, nil},
		{"Pair", mk([2]int{0, 0}, [2]int{1, 1}), []string{"v 0.5"}, nil},
		{"Square", mk([2]int{0, 0}, [2]int{0, 2}, [2]int{2, 0}, [2]int{2, 2}), []string{"v 1.0", "h 1.0"}, nil},
		{"Row", mk([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), []string{"v 1.5", "v 0.5"}, nil},
		{"Diagonal", mk([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}), []string{"v 1.5", "v 0.5", "v 2.5"}, nil},
		{"Column", mk([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}),
			[]string{"h 2.5", "h 1.5", "h 0.5", "h 3.5"}, nil},
		{"Scattered", mk([2]int{1, 5}, [2]int{3, 1}, [2]int{4, 4}, [2]int{7, 2}, [2]int{2, 8}),
			[]string{"v 3.5", "h 3.0", "v 1.5"}, []string{"h 4.5"}},
		{"Negative", mk([2]int{-3, 2}, [2]int{-1, -4}, [2]int{2, 0}, [2]int{5, 5}), []string{"v 0.5", "h 1.0"}, nil},
		{"NegativeOnly", mk([2]int{-7, -4}, [2]int{-2, 5}), []string{"v -4.5"}, nil},
		{"Eight", mk([2]int{5, 5}, [2]int{0, 4}, [2]int{0, 6}, [2]int{6, 2}, [2]int{4, 0}, [2]int{6, 5}, [2]int{7, 6}, [2]int{1, 3}),
			[]string{"h 4.5", "v 0.5", "h 2.5", "h 5.5", "v 5.5"}, []string{"v 4.5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := separate.Solve(context.Background(), tc.points)
			require.NoError(t, err)

			assert.Equal(t, tc.want, tags(res.Lines))
			assert.Equal(t, len(tc.removed), res.Removed)
			if tc.removed != nil {
				assert.Equal(t, tc.removed, tags(res.RemovedLines))
			}
			assert.Equal(t, len(res.Lines)+res.Removed, res.Committed)
			require.NoError(t, separate.Verify(tc.points, res.Lines))
		})
	}
}

func TestSolve_CommitStats(t *testing.T) {
	cases := []struct {
		name   string
		points []core.Point
		want   separate.CommitStats
	}{
		{"Pair", mk([2]int{0, 0}, [2]int{1, 1}), separate.CommitStats{Tested: 1, Committed: 1}},
		{"Square", mk([2]int{0, 0}, [2]int{0, 2}, [2]int{2, 0}, [2]int{2, 2}), separate.CommitStats{Tested: 2, Committed: 2}},
		{"Row", mk([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), separate.CommitStats{Tested: 2, Committed: 2, Skipped: 1}},
		{"Column", mk([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}),
			separate.CommitStats{Tested: 4, Committed: 4, Skipped: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := separate.Solve(context.Background(), tc.points)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Commit)
			assert.Equal(t, 2*(len(tc.points)-1), res.Candidates)
		})
	}
}

func TestSolve_OptimizeStats(t *testing.T) {
	pts := mk([2]int{1, 5}, [2]int{3, 1}, [2]int{4, 4}, [2]int{7, 2}, [2]int{2, 8})

	res, err := separate.Solve(context.Background(), pts)
	require.NoError(t, err)
	assert.Equal(t, separate.OptimizeStats{Examined: 4, Removed: 1, Rounds: 1}, res.Optimize)

	res, err = separate.Solve(context.Background(), pts, separate.WithoutOptimization())
	require.NoError(t, err)
	assert.Equal(t, []string{"v 3.5", "h 4.5", "h 3.0", "v 1.5"}, tags(res.Lines))
	assert.Equal(t, separate.OptimizeStats{}, res.Optimize)
	assert.Zero(t, res.Removed)
}

// TestSolve_FixedPointMatchesSinglePass checks that a second round never
// finds more to remove: the X pass already saw every Y line that could go,
// and the Y pass saw the final X lines.
func TestSolve_FixedPointMatchesSinglePass(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		pts := randomUnique(t, seed, 30, 20)
		single, err := separate.Solve(context.Background(), pts)
		require.NoError(t, err)
		fixed, err := separate.Solve(context.Background(), pts, separate.WithOptimizeMode(separate.FixedPoint))
		require.NoError(t, err)

		assert.Equal(t, tags(single.Lines), tags(fixed.Lines), "seed %d", seed)
		wantRounds := 1
		if fixed.Removed > 0 {
			wantRounds = 2
		}
		assert.Equal(t, wantRounds, fixed.Optimize.Rounds, "seed %d", seed)
	}
}

func TestNewSolver_Errors(t *testing.T) {
	_, err := separate.NewSolver(mk([2]int{1, 1}, [2]int{2, 2}, [2]int{1, 1}))
	require.ErrorIs(t, err, separate.ErrDuplicatePoint)

	many := make([][2]int, core.DefaultCapacity+1)
	for i := range many {
		many[i] = [2]int{i, i}
	}
	_, err = separate.NewSolver(mk(many...))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	s, err := separate.NewSolver(mk(many...), separate.WithCapacity(0))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	require.ErrorIs(t, err, separate.ErrAlreadySolved)
}

func TestParseOptimizeMode(t *testing.T) {
	cases := []struct {
		in   string
		want separate.OptimizeMode
	}{
		{"", separate.SinglePass},
		{"single", separate.SinglePass},
		{"fixed", separate.FixedPoint},
		{"off", separate.Off},
	}
	for _, tc := range cases {
		got, err := separate.ParseOptimizeMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		if tc.in != "" {
			assert.Equal(t, tc.in, got.String())
		}
	}
	_, err := separate.ParseOptimizeMode("twice")
	require.ErrorIs(t, err, separate.ErrUnknownOptimizeMode)
}

// TestSolve_CandidateOnPointIsSkipped uses two points sharing x = 1. The first
// X candidate falls exactly on them: it is skipped, never committed, and the
// remaining lines still separate every pair.
func TestSolve_CandidateOnPointIsSkipped(t *testing.T) {
	pts := mk([2]int{0, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 3})

	res, err := separate.Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.Equal(t, []string{"h 1.5", "v 0.5", "v 1.5"}, tags(res.Lines))
	assert.Equal(t, separate.CommitStats{Tested: 4, Committed: 3, Skipped: 1}, res.Commit)
	assert.Zero(t, res.Removed)
	for _, l := range res.Lines {
		assert.False(t, l.Axis == core.X && l.Coord == 1, "line on the tied points committed")
	}
	require.NoError(t, separate.Verify(pts, res.Lines))

	views := core.NewViews(pts)
	_, ok := separate.Split(views, lines.Line{Axis: core.X, Coord: 1})
	assert.False(t, ok)
	p, ok := separate.Split(views, lines.Line{Axis: core.X, Coord: 1.5})
	assert.True(t, ok)
	assert.Equal(t, 2, p)
}
