package hierarchical

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
)

// Distances is read-only access to a precomputed symmetric distance table.
type Distances interface {
	Len() int
	At(i, j int) float64
}

// Merge is one internal node of the dendrogram.
//
// Nodes are numbered like this: leaves 0..n-1 are the instances, and the
// s-th merge creates node n+s. Left is the child that held the lower
// instance index.
type Merge struct {
	Left, Right int
	Height      float64
	Size        int
}

// Dendrogram is the complete binary merge tree over n instances. It is
// immutable once built; Cut and the accessors never modify it and are safe
// for concurrent use.
type Dendrogram struct {
	n       int
	linkage Linkage
	merges  []Merge
}

// Build agglomerates the n instances of d under linkage l.
//
// Stage 1 (Validate): n >= 1, l known.
// Stage 2 (Prepare): copy d into a working matrix (squared for Centroid,
// Median and Ward). Active clusters live in slots; slot s initially holds
// instance s and a merged cluster reuses its lower slot, so a slot number
// is always the smallest instance index of its cluster.
// Stage 3 (Execute): n−1 times, pick the active pair (i, j), i < j, with
// the smallest distance, scanning i then j ascending with a strict <, so
// ties go to the lexicographically lowest pair. Record the merge, then
// rewrite row i by the Lance–Williams update and retire slot j.
//
// Complexity: O(n³) time, O(n²) memory.
func Build(d Distances, l Linkage) (*Dendrogram, error) {
	if d == nil {
		return nil, clustering.ErrNilDistance
	}
	n := d.Len()
	if n == 0 {
		return nil, clustering.ErrEmptyDataset
	}
	if l < Single || l > Ward {
		return nil, fmt.Errorf("hierarchical.Build(%v): %w", l, ErrUnknownLinkage)
	}

	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			v := d.At(i, j)
			if l.Squared() {
				v *= v
			}
			w[i][j] = v
		}
	}
	active := make([]bool, n)
	size := make([]int, n)
	node := make([]int, n)
	for i := range active {
		active[i], size[i], node[i] = true, 1, i
	}

	dg := &Dendrogram{n: n, linkage: l, merges: make([]Merge, 0, n-1)}
	for step := 0; step < n-1; step++ {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && (bi < 0 || w[i][j] < best) {
					bi, bj, best = i, j, w[i][j]
				}
			}
		}

		h := best
		if l.Squared() {
			h = math.Sqrt(math.Max(best, 0))
		}
		dg.merges = append(dg.merges, Merge{Left: node[bi], Right: node[bj], Height: h, Size: size[bi] + size[bj]})

		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			v := l.Update(w[bi][k], w[bj][k], best, size[bi], size[bj], size[k])
			w[bi][k], w[k][bi] = v, v
		}
		active[bj] = false
		size[bi] += size[bj]
		node[bi] = n + step
	}

	return dg, nil
}

// BuildDataset computes the distance matrix of ds under fn and builds the
// dendrogram from it.
func BuildDataset(ds *dataset.Dataset, fn distance.Func, l Linkage, opts ...distance.MatrixOption) (*Dendrogram, error) {
	dm, err := distance.NewMatrix(ds, fn, opts...)
	if err != nil {
		return nil, fmt.Errorf("hierarchical: %w", err)
	}

	return Build(dm, l)
}

// Len returns the number of instances (leaves).
func (dg *Dendrogram) Len() int { return dg.n }

// Linkage returns the rule the tree was built with.
func (dg *Dendrogram) Linkage() Linkage { return dg.linkage }

// Merges returns a copy of the n−1 merges in the order they happened.
func (dg *Dendrogram) Merges() []Merge { return append([]Merge(nil), dg.merges...) }

// Root returns the node id of the whole tree.
func (dg *Dendrogram) Root() int { return dg.n + len(dg.merges) - 1 }

// Height returns the height of the last merge applied when cutting at k
// clusters; 0 for k == n.
// Errors: clustering.ErrCutOutOfRange.
func (dg *Dendrogram) Height(k int) (float64, error) {
	if k < 1 || k > dg.n {
		return 0, fmt.Errorf("hierarchical: height at k=%d with n=%d: %w", k, dg.n, clustering.ErrCutOutOfRange)
	}
	if k == dg.n {
		return 0, nil
	}

	return dg.merges[dg.n-k-1].Height, nil
}

// Members returns the instances under node in ascending order.
// Errors: clustering.ErrCutOutOfRange for an unknown node id.
func (dg *Dendrogram) Members(node int) ([]int, error) {
	if node < 0 || node > dg.Root() {
		return nil, fmt.Errorf("hierarchical: node %d: %w", node, clustering.ErrCutOutOfRange)
	}
	var out []int
	stack := []int{node}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v < dg.n {
			out = append(out, v)
			continue
		}
		m := dg.merges[v-dg.n]
		stack = append(stack, m.Left, m.Right)
	}
	sort.Ints(out)

	return out, nil
}

// Cut returns the flat partition with exactly k clusters: the state after
// the first n−k merges. Labels are numbered by first appearance in index
// order, so instance 0 is always in cluster 0.
//
// Cut only reads the tree: repeated and interleaved cuts return identical
// partitions.
//
// Errors: clustering.ErrCutOutOfRange for k ∉ [1, n].
// Complexity: O(n·α(n)).
func (dg *Dendrogram) Cut(k int) (clustering.Assignment, error) {
	n := dg.n
	if k < 1 || k > n {
		return nil, fmt.Errorf("hierarchical: cut at k=%d with n=%d: %w", k, n, clustering.ErrCutOutOfRange)
	}

	// Disjoint sets over tree nodes, local to this call.
	parent := make([]int, n+len(dg.merges))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	for s := 0; s < n-k; s++ {
		m := dg.merges[s]
		parent[find(m.Left)] = n + s
		parent[find(m.Right)] = n + s
	}

	labels := make(clustering.Assignment, n)
	seen := make(map[int]int, k)
	for i := 0; i < n; i++ {
		root := find(i)
		c, ok := seen[root]
		if !ok {
			c = len(seen)
			seen[root] = c
		}
		labels[i] = c
	}

	return labels, nil
}

// Result wraps Cut(k) as a clustering.Result.
func (dg *Dendrogram) Result(k int) (clustering.Result, error) {
	labels, err := dg.Cut(k)
	if err != nil {
		return clustering.Result{}, err
	}

	return clustering.Result{Labels: labels, K: k, Status: clustering.Converged}, nil
}
