package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/katalvlaran/lvcluster/kmeans"
)

func points(t *testing.T, xs ...float64) *dataset.Dataset {
	t.Helper()
	rows := make([][]float64, len(xs))
	for i, x := range xs {
		rows[i] = []float64{x}
	}
	ds, err := dataset.FromVectors(rows)
	require.NoError(t, err)

	return ds
}

// TestCluster_SingleInstance: one instance, k=1.
func TestCluster_SingleInstance(t *testing.T) {
	res, err := kmeans.Cluster(points(t, 4.2), distance.Euclidean{}, 1)
	require.NoError(t, err)
	assert.Equal(t, clustering.Assignment{0}, res.Labels)
	assert.Equal(t, clustering.Converged, res.Status)
}

// TestCluster_TwoInstances covers k=1 and k=2.
func TestCluster_TwoInstances(t *testing.T) {
	ds := points(t, 0, 3)
	for _, init := range []int{0, 1} {
		res, err := kmeans.Cluster(ds, distance.Euclidean{}, 1, kmeans.WithInitialCentroids(init))
		require.NoError(t, err)
		assert.Equal(t, clustering.Assignment{0, 0}, res.Labels)
	}

	res, err := kmeans.Cluster(ds, distance.Manhattan{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Distinct())
	assert.NotEqual(t, res.Labels[0], res.Labels[1])
}

// TestCluster_ThreeInstances_CloseTogether: every initial pair ends with the
// two close instances together.
func TestCluster_ThreeInstances_CloseTogether(t *testing.T) {
	ds := points(t, 0, 1, 10)
	for _, init := range [][]int{{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 2}, {2, 1}} {
		res, err := kmeans.Cluster(ds, distance.Euclidean{}, 2, kmeans.WithInitialCentroids(init...))
		require.NoError(t, err)
		assert.Equal(t, res.Labels[0], res.Labels[1], "init %v", init)
		assert.NotEqual(t, res.Labels[0], res.Labels[2], "init %v", init)
		assert.Equal(t, clustering.Converged, res.Status)
	}
}

// TestCluster_ThreeInstances_KEqualsN yields singletons.
func TestCluster_ThreeInstances_KEqualsN(t *testing.T) {
	res, err := kmeans.Cluster(points(t, 0, 1, 10), distance.Euclidean{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Distinct())
}

// TestCluster_Centroids are member means after convergence.
func TestCluster_Centroids(t *testing.T) {
	m, err := kmeans.New(points(t, 0, 2, 10, 12), distance.Euclidean{}, 2, kmeans.WithInitialCentroids(0, 3))
	require.NoError(t, err)
	res, err := m.Cluster()
	require.NoError(t, err)
	assert.Equal(t, clustering.Assignment{0, 0, 1, 1}, res.Labels)
	assert.Equal(t, [][]float64{{1}, {11}}, m.Centroids())
}

// TestCluster_EmptyClusterKeepsCentroid reports a cardinality mismatch.
func TestCluster_EmptyClusterKeepsCentroid(t *testing.T) {
	m, err := kmeans.New(points(t, 0, 0, 0), distance.Euclidean{}, 2, kmeans.WithInitialCentroids(0, 1))
	require.NoError(t, err)
	res, err := m.Cluster()
	require.NoError(t, err)

	assert.Equal(t, clustering.Assignment{0, 0, 0}, res.Labels)
	assert.True(t, res.Mismatch())
	assert.Equal(t, clustering.Converged, res.Status)
	assert.Equal(t, []float64{0}, m.Centroids()[1])
}

// TestCluster_IterationLimit still returns a complete assignment.
func TestCluster_IterationLimit(t *testing.T) {
	res, err := kmeans.Cluster(points(t, 0, 1, 10), distance.Euclidean{}, 2,
		kmeans.WithInitialCentroids(0, 1), kmeans.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, clustering.IterationLimitReached, res.Status)
	assert.Equal(t, 1, res.Iterations)
	require.Len(t, res.Labels, 3)
	assert.NoError(t, res.Labels.Validate(2))
}

// TestCluster_AssignmentTieGoesToLowestCluster: instance 2 is 5 away from
// both initial centroids and joins cluster 0.
func TestCluster_AssignmentTieGoesToLowestCluster(t *testing.T) {
	ds := points(t, 0, 10, 5)
	first, err := kmeans.Cluster(ds, distance.Euclidean{}, 2,
		kmeans.WithInitialCentroids(1, 0), kmeans.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, clustering.Assignment{1, 0, 0}, first.Labels)

	m, err := kmeans.New(ds, distance.Euclidean{}, 2, kmeans.WithInitialCentroids(1, 0))
	require.NoError(t, err)
	res, err := m.Cluster()
	require.NoError(t, err)
	assert.Equal(t, clustering.Assignment{1, 0, 0}, res.Labels)
	assert.Equal(t, clustering.Converged, res.Status)
	assert.Equal(t, [][]float64{{7.5}, {0}}, m.Centroids())
}

// TestCluster_SeedDeterminism: same seed, same partition.
func TestCluster_SeedDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rows := make([][]float64, 60)
	for i := range rows {
		rows[i] = []float64{rng.Float64() * 10, rng.Float64() * 10}
	}
	ds, err := dataset.FromVectors(rows)
	require.NoError(t, err)

	a, err := kmeans.Cluster(ds, distance.Euclidean{}, 4, kmeans.WithSeed(42))
	require.NoError(t, err)
	b, err := kmeans.Cluster(ds, distance.Euclidean{}, 4, kmeans.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestCluster_Coverage: every instance gets exactly one label in [0, k).
func TestCluster_Coverage(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	rows := make([][]float64, 25)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	ds, err := dataset.FromVectors(rows)
	require.NoError(t, err)

	for k := 1; k <= len(rows); k++ {
		res, err := kmeans.Cluster(ds, distance.Manhattan{}, k, kmeans.WithSeed(int64(k)))
		require.NoError(t, err)
		require.Len(t, res.Labels, len(rows))
		assert.NoError(t, res.Labels.Validate(k), "k=%d", k)
	}
}

// TestNew_ConfigurationErrors covers every rejected configuration.
func TestNew_ConfigurationErrors(t *testing.T) {
	ds := points(t, 0, 1, 2)
	text, err := dataset.FromStrings("ab", "cd")
	require.NoError(t, err)
	edit, err := distance.NewEdit(distance.UnitCosts())
	require.NoError(t, err)

	cases := []struct {
		name string
		ds   *dataset.Dataset
		fn   distance.Func
		k    int
		opts []kmeans.Option
		want error
	}{
		{"nil dataset", nil, distance.Euclidean{}, 1, nil, clustering.ErrEmptyDataset},
		{"nil distance", ds, nil, 1, nil, clustering.ErrNilDistance},
		{"k zero", ds, distance.Euclidean{}, 0, nil, clustering.ErrInvalidK},
		{"k above n", ds, distance.Euclidean{}, 4, nil, clustering.ErrInvalidK},
		{"symbolic distance", ds, edit, 1, nil, clustering.ErrIncompatibleDistance},
		{"symbolic data", text, distance.Euclidean{}, 1, nil, clustering.ErrIncompatibleDistance},
		{"iterations", ds, distance.Euclidean{}, 1, []kmeans.Option{kmeans.WithMaxIterations(0)}, clustering.ErrInvalidIterations},
		{"duplicate init", ds, distance.Euclidean{}, 2, []kmeans.Option{kmeans.WithInitialCentroids(1, 1)}, clustering.ErrInvalidMedoids},
		{"short init", ds, distance.Euclidean{}, 2, []kmeans.Option{kmeans.WithInitialCentroids(1)}, clustering.ErrInvalidMedoids},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kmeans.New(tc.ds, tc.fn, tc.k, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, clustering.ErrConfiguration)
		})
	}
}
