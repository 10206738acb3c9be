package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sepline/core"
)

// BenchmarkNewStore measures building K_n for n = 1000.
// Complexity: O(n²)
func BenchmarkNewStore(b *testing.B) {
	pts := randomPoints(1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.NewStore(pts, core.WithCapacity(0)); err != nil {
			b.Fatalf("NewStore: %v", err)
		}
	}
}

// BenchmarkNearestBefore measures the binary search on a 10k-point view.
func BenchmarkNearestBefore(b *testing.B) {
	v := core.NewViews(randomPoints(10000, 7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.NearestBefore(core.X, float64(i%20000)+0.5)
	}
}

func randomPoints(n int, seed int64) []core.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.Point{ID: i, X: rng.Intn(20000), Y: rng.Intn(20000)}
	}

	return pts
}
