// File: core/example_test.go
package core_test

import (
	"fmt"

	"github.com/katalvlaran/sepline/core"
)

// ExampleStore shows the complete relation shrinking as a vertical split at
// x = 1 disconnects the left column from the right column.
//
//	(0,2) ─ (2,2)
//	  │  ╲ ╱  │
//	  │  ╱ ╲  │
//	(0,0) ─ (2,0)
func ExampleStore() {
	st, _ := core.NewStore([]core.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2}})
	fmt.Println("start:", st.RemainingConnections())

	v := core.NewViews(st.Points())
	p := v.NearestBefore(core.X, 1.0)
	removed := st.DisconnectAll(v.Ranks(core.X, 0, p+1), v.Ranks(core.X, p+1, v.Len()))
	fmt.Println("pairs cut:", removed)
	fmt.Println("left:", st.RemainingConnections())

	ids, _ := st.NeighborIDs(0)
	fmt.Println("neighbors of 0:", ids)

	// Output:
	// start: 12
	// pairs cut: 4
	// left: 4
	// neighbors of 0: [1]
}
