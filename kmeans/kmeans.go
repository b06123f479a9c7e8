package kmeans

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
)

// DefaultMaxIterations caps the assign/update loop.
const DefaultMaxIterations = 100

// Options configures K-Means.
//
// Fields:
//   - MaxIterations — assign/update rounds before giving up (>= 1).
//   - Seed          — seeds the random initial centroids (0 ⇒ clustering.DefaultSeed).
//   - Initial       — explicit initial centroid instances; overrides Seed.
type Options struct {
	MaxIterations int
	Seed          int64
	Initial       []int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithSeed sets the initialisation seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithInitialCentroids seeds the centroids with the given instances.
func WithInitialCentroids(idx ...int) Option {
	return func(o *Options) { o.Initial = append([]int(nil), idx...) }
}

// DefaultOptions returns MaxIterations=100 and the default seed.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations, Seed: clustering.DefaultSeed}
}

// KMeans is a configured K-Means run. Cluster may be called repeatedly and
// returns the same result each time.
type KMeans struct {
	fn   distance.Vector
	k    int
	opts Options

	points    [][]float64
	centroids [][]float64
}

// New validates the configuration.
//
// Stage 1 (Validate): dataset, distance capability, numeric schema, k,
// iteration cap and the explicit initial set.
// Stage 2 (Prepare): materialise the numeric vectors once.
func New(ds *dataset.Dataset, fn distance.Func, k int, opts ...Option) (*KMeans, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, clustering.ErrEmptyDataset
	}
	if fn == nil {
		return nil, clustering.ErrNilDistance
	}
	vfn, ok := fn.(distance.Vector)
	if !ok {
		return nil, fmt.Errorf("kmeans: %s distance cannot measure centroids: %w",
			fn.Name(), clustering.ErrIncompatibleDistance)
	}
	if !ds.Numeric() {
		return nil, fmt.Errorf("kmeans: centroids need numeric attributes: %w", distance.ErrNonNumeric)
	}
	n := ds.Len()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("kmeans: k=%d with n=%d: %w", k, n, clustering.ErrInvalidK)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIterations < 1 {
		return nil, clustering.ErrInvalidIterations
	}
	if o.Initial != nil {
		if err := clustering.ValidateIndexSet(o.Initial, n, k); err != nil {
			return nil, fmt.Errorf("kmeans: initial centroids %v: %w", o.Initial, err)
		}
	}

	points := make([][]float64, n)
	for i := range points {
		points[i] = ds.At(i).Vector()
	}

	return &KMeans{fn: vfn, k: k, opts: o, points: points}, nil
}

// Cluster runs the assign/update loop.
func (m *KMeans) Cluster() (clustering.Result, error) {
	seeds := m.opts.Initial
	if seeds == nil {
		var err error
		if seeds, err = clustering.SampleDistinct(len(m.points), m.k, clustering.NewRNG(m.opts.Seed)); err != nil {
			return clustering.Result{}, err
		}
	}
	m.centroids = make([][]float64, m.k)
	for c, idx := range seeds {
		m.centroids[c] = append([]float64(nil), m.points[idx]...)
	}

	labels := make(clustering.Assignment, len(m.points))
	for i := range labels {
		labels[i] = -1
	}
	res := clustering.Result{Labels: labels, K: m.k, Status: clustering.IterationLimitReached}
	for it := 1; it <= m.opts.MaxIterations; it++ {
		res.Iterations = it
		if !m.assign(labels) {
			res.Status = clustering.Converged
			break
		}
		m.update(labels)
	}

	return res, nil
}

// Centroids returns a copy of the centroids of the last Cluster call.
func (m *KMeans) Centroids() [][]float64 {
	out := make([][]float64, len(m.centroids))
	for c := range m.centroids {
		out[c] = append([]float64(nil), m.centroids[c]...)
	}

	return out
}

// assign moves every point to its nearest centroid and reports whether any
// label changed. Strict < keeps ties on the lowest cluster.
func (m *KMeans) assign(labels clustering.Assignment) bool {
	changed := false
	for i, p := range m.points {
		best, bestD := 0, m.fn.Between(p, m.centroids[0])
		for c := 1; c < m.k; c++ {
			if d := m.fn.Between(p, m.centroids[c]); d < bestD {
				best, bestD = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}

	return changed
}

// update recomputes each non-empty cluster's centroid as its member mean.
func (m *KMeans) update(labels clustering.Assignment) {
	dim := len(m.points[0])
	sums := make([][]float64, m.k)
	counts := make([]int, m.k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, c := range labels {
		floats.Add(sums[c], m.points[i])
		counts[c]++
	}
	for c := range sums {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		m.centroids[c] = sums[c]
	}
}

// Cluster is a one-shot New + Cluster.
func Cluster(ds *dataset.Dataset, fn distance.Func, k int, opts ...Option) (clustering.Result, error) {
	m, err := New(ds, fn, k, opts...)
	if err != nil {
		return clustering.Result{}, err
	}

	return m.Cluster()
}
