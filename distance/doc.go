// Package distance provides the pluggable dissimilarity used by every
// clustering algorithm in lvcluster, plus a precomputed pairwise matrix.
//
// 🚀 The capability
//
//	type Func interface {
//	    Name() string
//	    Distance(a, b dataset.Instance) (float64, error)
//	}
//
//	Every Func is symmetric, non-negative and zero on self-comparison.
//	Functions over numeric vectors also implement Vector, which K-Means needs
//	to measure instances against computed centroids.
//
// ✨ Variants (resolved once via New(kind, opts...)):
//
//   - euclidean — sqrt(Σ (a_i − b_i)²); all attributes numeric.
//   - manhattan — Σ |a_i − b_i|; all attributes numeric.
//   - edit      — Levenshtein over Instance.Tokens (string attributes expand
//     to runes); unit costs by default, weighted via EditCosts.
//   - hmm       — model-based: per-instance Baum–Welch models with a
//     configured state count, compared by symmetrised per-symbol
//     log-likelihood loss. Unconfigured use fails with ErrUnconfigured.
//   - dtw       — dynamic time warping over the numeric vector, optional
//     Sakoe–Chiba window.
//
// ⚙️ Pairwise matrix:
//
//	fn, _ := distance.New(distance.KindEuclidean)
//	m, err := distance.NewMatrix(ds, fn, distance.WithWorkers(8))
//	d := m.At(i, j)
//
//	The matrix is the dominant O(n²) cost of medoid search and agglomeration;
//	WithWorkers spreads rows over an ants goroutine pool. Results do not
//	depend on the worker count.
package distance
