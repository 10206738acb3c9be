package separate_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/separate"
)

// ExampleSolve separates five scattered points. The optimizer drops the
// horizontal line at 4.5 because the lines around it already split its strip.
func ExampleSolve() {
	points := []core.Point{{X: 1, Y: 5}, {X: 3, Y: 1}, {X: 4, Y: 4}, {X: 7, Y: 2}, {X: 2, Y: 8}}

	res, err := separate.Solve(context.Background(), points)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("candidates:", res.Candidates, "committed:", res.Committed, "removed:", res.Removed)
	for _, l := range res.Lines {
		fmt.Printf("%s %.1f\n", l.Axis, l.Coord)
	}

	// Output:
	// candidates: 8 committed: 4 removed: 1
	// x 3.5
	// y 3.0
	// x 1.5
}
