package distance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcluster/dataset"
)

// Euclidean is the L2 distance over all-numeric instances.
type Euclidean struct{}

// Name implements Func.
func (Euclidean) Name() string { return string(KindEuclidean) }

// Distance implements Func.
func (e Euclidean) Distance(a, b dataset.Instance) (float64, error) {
	x, y, err := vectors(a, b)
	if err != nil {
		return 0, err
	}

	return e.Between(x, y), nil
}

// Between implements Vector: sqrt(Σ (a_i − b_i)²).
func (Euclidean) Between(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// Manhattan is the L1 distance over all-numeric instances.
type Manhattan struct{}

// Name implements Func.
func (Manhattan) Name() string { return string(KindManhattan) }

// Distance implements Func.
func (m Manhattan) Distance(a, b dataset.Instance) (float64, error) {
	x, y, err := vectors(a, b)
	if err != nil {
		return 0, err
	}

	return m.Between(x, y), nil
}

// Between implements Vector: Σ |a_i − b_i|.
func (Manhattan) Between(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// vectors extracts aligned numeric vectors from two instances.
func vectors(a, b dataset.Instance) ([]float64, []float64, error) {
	if !a.Numeric() || !b.Numeric() {
		return nil, nil, ErrNonNumeric
	}
	if a.Len() != b.Len() {
		return nil, nil, ErrArity
	}

	return a.Vector(), b.Vector(), nil
}
