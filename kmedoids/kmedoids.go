package kmedoids

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
)

// DefaultMaxIterations caps the assign/update loop.
const DefaultMaxIterations = 100

// improvementEpsilon is the relative cost decrease a swap must exceed.
const improvementEpsilon = 1e-12

// Distances is read-only access to a precomputed symmetric distance table.
type Distances interface {
	Len() int
	At(i, j int) float64
}

// Options configures K-Medoids.
//
// Fields:
//   - MaxIterations — assign/update rounds before giving up (>= 1).
//   - Seed          — seeds the random initial medoids (0 ⇒ clustering.DefaultSeed).
//   - Initial       — explicit initial medoid set; order is irrelevant.
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

// WithInitialMedoids fixes the initial medoid set.
func WithInitialMedoids(idx ...int) Option {
	return func(o *Options) { o.Initial = append([]int(nil), idx...) }
}

// DefaultOptions returns MaxIterations=100 and the default seed.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations, Seed: clustering.DefaultSeed}
}

// KMedoids is a configured run over a distance table.
type KMedoids struct {
	d    Distances
	k    int
	opts Options

	medoids []int
	cost    float64
}

// New validates the configuration.
// Errors: clustering.ErrNilDistance, ErrEmptyDataset, ErrInvalidK,
// ErrInvalidIterations, ErrInvalidMedoids.
func New(d Distances, k int, opts ...Option) (*KMedoids, error) {
	if d == nil {
		return nil, clustering.ErrNilDistance
	}
	n := d.Len()
	if n == 0 {
		return nil, clustering.ErrEmptyDataset
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("kmedoids: k=%d with n=%d: %w", k, n, clustering.ErrInvalidK)
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
			return nil, fmt.Errorf("kmedoids: initial medoids %v: %w", o.Initial, err)
		}
	}

	return &KMedoids{d: d, k: k, opts: o}, nil
}

// Cluster runs PAM from the initial medoids.
//
// Stage 1 (Refine): alternate assignment and in-cluster medoid search until
// no medoid moves.
// Stage 2 (Swap): try replacing each medoid (ascending) by each non-medoid
// (ascending) and apply the swap with the lowest total cost, if it is
// strictly lower than the current one. Then go back to Stage 1.
//
// Slots are kept in ascending medoid order, so label c always belongs to
// the c-th smallest medoid and assignment ties go to the lowest medoid index.
// Iterations counts Stage 1 rounds and is bounded by MaxIterations across
// all swaps.
//
// Complexity: O(Σ|C|²) per round, O(k·(n−k)·n·k) per swap pass.
func (m *KMedoids) Cluster() (clustering.Result, error) {
	n := m.d.Len()
	medoids := m.opts.Initial
	if medoids == nil {
		var err error
		if medoids, err = clustering.SampleDistinct(n, m.k, clustering.NewRNG(m.opts.Seed)); err != nil {
			return clustering.Result{}, err
		}
	}
	m.medoids = append([]int(nil), medoids...)
	sort.Ints(m.medoids)

	labels := make(clustering.Assignment, n)
	res := clustering.Result{Labels: labels, K: m.k, Status: clustering.Converged}
	for {
		settled := false
		for res.Iterations < m.opts.MaxIterations {
			res.Iterations++
			m.assign(labels)
			if !m.update(labels) {
				settled = true
				break
			}
		}
		if !settled {
			// Labels must describe the final medoids even when the cap cut the
			// loop right after an update or a swap.
			res.Status = clustering.IterationLimitReached
			m.assign(labels)
			break
		}
		if !m.swap() {
			break
		}
	}

	return res, nil
}

// Medoids returns the medoids of the last Cluster call in ascending order;
// Medoids()[c] is the medoid of label c.
func (m *KMedoids) Medoids() []int { return append([]int(nil), m.medoids...) }

// Cost returns the total distance of every instance to its medoid after the
// last Cluster call.
func (m *KMedoids) Cost() float64 { return m.cost }

// assign labels every instance with its nearest medoid's slot. Slots are
// sorted by medoid index, so the strict < sends ties to the lowest medoid.
func (m *KMedoids) assign(labels clustering.Assignment) {
	m.cost = 0
	for i := range labels {
		best, bestD := 0, m.d.At(i, m.medoids[0])
		for c := 1; c < m.k; c++ {
			if d := m.d.At(i, m.medoids[c]); d < bestD {
				best, bestD = c, d
			}
		}
		labels[i] = best
		m.cost += bestD
	}
}

// update replaces each medoid by the member of its cluster minimising the
// total intra-cluster distance and reports whether any medoid moved.
// Complexity: O(Σ|C|²).
func (m *KMedoids) update(labels clustering.Assignment) bool {
	members := make([][]int, m.k)
	for i, c := range labels {
		members[c] = append(members[c], i)
	}

	moved := false
	for c, group := range members {
		if len(group) < 2 {
			continue
		}
		best := m.medoids[c]
		bestSum := m.total(best, group)
		for _, cand := range group {
			if cand == best {
				continue
			}
			if s := m.total(cand, group); s < bestSum {
				best, bestSum = cand, s
			}
		}
		if best != m.medoids[c] {
			m.medoids[c] = best
			moved = true
		}
	}
	if moved {
		sort.Ints(m.medoids)
	}

	return moved
}

// swap applies the best cost-reducing (medoid, non-medoid) exchange and
// reports whether one was found. Among equal improvements the first one in
// (medoid, candidate) index order wins.
func (m *KMedoids) swap() bool {
	n := m.d.Len()
	isMedoid := make([]bool, n)
	for _, md := range m.medoids {
		isMedoid[md] = true
	}

	current := m.costOf(m.medoids)
	best, bestSlot, bestCand := current, -1, -1
	trial := append([]int(nil), m.medoids...)
	for c := range m.medoids {
		for h := 0; h < n; h++ {
			if isMedoid[h] {
				continue
			}
			trial[c] = h
			if s := m.costOf(trial); s < best {
				best, bestSlot, bestCand = s, c, h
			}
		}
		trial[c] = m.medoids[c]
	}
	// Rounding noise between equal-cost configurations is not an improvement.
	if bestSlot < 0 || current-best <= improvementEpsilon*math.Max(1, current) {
		return false
	}
	m.medoids[bestSlot] = bestCand
	sort.Ints(m.medoids)

	return true
}

// costOf is the total distance of every instance to its nearest medoid.
func (m *KMedoids) costOf(medoids []int) float64 {
	var total float64
	for i, n := 0, m.d.Len(); i < n; i++ {
		bestD := m.d.At(i, medoids[0])
		for _, md := range medoids[1:] {
			if d := m.d.At(i, md); d < bestD {
				bestD = d
			}
		}
		total += bestD
	}

	return total
}



// total sums the distances from cand to every member of group.
func (m *KMedoids) total(cand int, group []int) float64 {
	var s float64
	for _, j := range group {
		s += m.d.At(cand, j)
	}

	return s
}

// Cluster is a one-shot New + Cluster.
func Cluster(d Distances, k int, opts ...Option) (clustering.Result, error) {
	m, err := New(d, k, opts...)
	if err != nil {
		return clustering.Result{}, err
	}

	return m.Cluster()
}

// ClusterDataset computes the distance matrix of ds under fn and clusters it.
func ClusterDataset(ds *dataset.Dataset, fn distance.Func, k int, opts ...Option) (clustering.Result, error) {
	dm, err := distance.NewMatrix(ds, fn)
	if err != nil {
		return clustering.Result{}, fmt.Errorf("kmedoids: %w", err)
	}

	return Cluster(dm, k, opts...)
}
