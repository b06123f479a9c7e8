package kmedoids_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/katalvlaran/lvcluster/kmedoids"
)

// benchmarkKMedoids clusters n random planar points into k clusters over a
// precomputed matrix, so only the assign/update loop is timed.
func benchmarkKMedoids(b *testing.B, n, k int) {
	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{rng.Float64(), rng.Float64()}
	}
	ds, _ := dataset.FromVectors(rows)
	dm, err := distance.NewMatrix(ds, distance.Euclidean{}, distance.WithAllCores())
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmedoids.Cluster(dm, k); err != nil {
			b.Fatalf("Cluster failed: %v", err)
		}
	}
}

// BenchmarkKMedoids_500 benchmarks 500 points, k=5.
func BenchmarkKMedoids_500(b *testing.B) { benchmarkKMedoids(b, 500, 5) }

// BenchmarkKMedoids_2000 benchmarks 2000 points, k=10.
func BenchmarkKMedoids_2000(b *testing.B) { benchmarkKMedoids(b, 2_000, 10) }
