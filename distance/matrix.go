package distance

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
)

// Matrix is the full symmetric matrix of pairwise instance distances,
// computed once and then read by medoid search and agglomeration.
// It is immutable after NewMatrix and safe for concurrent reads.
type Matrix struct {
	name string
	n    int
	sym  *mat.SymDense
}

// MatrixOptions configures NewMatrix.
//
//   - Workers — number of goroutines filling rows; <=1 computes sequentially.
type MatrixOptions struct {
	Workers int
}

// MatrixOption mutates MatrixOptions.
type MatrixOption func(*MatrixOptions)

// WithWorkers sets the worker count. Use runtime.NumCPU() for all cores.
func WithWorkers(n int) MatrixOption { return func(o *MatrixOptions) { o.Workers = n } }

// WithAllCores sets the worker count to runtime.NumCPU().
func WithAllCores() MatrixOption { return WithWorkers(runtime.NumCPU()) }

// NewMatrix evaluates fn on every unordered instance pair of ds.
//
// Stage 1 (Validate): ds non-empty, fn non-nil.
// Stage 2 (Prepare): allocate an n×n symmetric matrix with a zero diagonal.
// Stage 3 (Execute): fill row i with d(i, j) for j > i, sequentially or one
// task per row on an ants pool.
// Stage 4 (Finalize): the first error (fn error, NaN, negative) aborts the
// whole matrix; no partial matrix is returned.
//
// Complexity: O(n²) evaluations of fn, O(n²) memory.
func NewMatrix(ds *dataset.Dataset, fn Func, opts ...MatrixOption) (*Matrix, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, clustering.ErrEmptyDataset
	}
	if fn == nil {
		return nil, clustering.ErrNilDistance
	}
	o := MatrixOptions{Workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	n := ds.Len()
	m := &Matrix{name: fn.Name(), n: n, sym: mat.NewSymDense(n, nil)}

	var (
		mu       sync.Mutex
		firstErr error
	)
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	// Rows write disjoint cells, so no lock is needed around SetSym.
	fill := func(i int) {
		a := ds.At(i)
		for j := i + 1; j < n; j++ {
			d, err := fn.Distance(a, ds.At(j))
			if err != nil {
				record(fmt.Errorf("distance.NewMatrix(%d,%d): %w", i, j, err))
				return
			}
			if math.IsNaN(d) || d < 0 {
				record(fmt.Errorf("distance.NewMatrix(%d,%d) = %v: %w", i, j, d, ErrInvalidDistance))
				return
			}
			m.sym.SetSym(i, j, d)
		}
	}

	if o.Workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fill(i)
			if firstErr != nil {
				return nil, firstErr
			}
		}

		return m, nil
	}

	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("could not create distance worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n-1; i++ {
		row := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fill(row)
		}); err != nil {
			wg.Done()
			record(fmt.Errorf("could not submit distance row %d: %w", row, err))
			break
		}
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	return m, nil
}

// FromDense wraps a caller-supplied square matrix of distances (used for
// precomputed dissimilarities). Only the upper triangle is read; the
// diagonal is forced to zero.
//
// Errors: clustering.ErrEmptyDataset for n==0, ErrArity for ragged rows,
// ErrInvalidDistance for NaN/negative entries.
func FromDense(name string, rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, clustering.ErrEmptyDataset
	}
	sym := mat.NewSymDense(n, nil)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, ErrArity
		}
		for j := i + 1; j < n; j++ {
			d := rows[i][j]
			if math.IsNaN(d) || d < 0 {
				return nil, ErrInvalidDistance
			}
			sym.SetSym(i, j, d)
		}
	}

	return &Matrix{name: name, n: n, sym: sym}, nil
}

// Name returns the name of the distance function that produced m.
func (m *Matrix) Name() string { return m.name }

// Len returns the number of instances; a nil Matrix has none.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns d(i, j). It panics on out-of-range indices like a slice.
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Row copies the distances from instance i to every instance.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.n)
	for j := range out {
		out[j] = m.sym.At(i, j)
	}

	return out
}
