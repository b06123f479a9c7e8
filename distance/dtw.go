package distance

import (
	"math"

	"github.com/katalvlaran/lvcluster/dataset"
)

// DTW — Dynamic Time Warping over an instance's numeric vector.
//
// Description:
//
//	Each all-numeric instance is read as a time series (attribute order is
//	time order). DTW aligns the two series by warping the time axis and
//	sums the absolute differences along the cheapest alignment, so series of
//	similar shape but shifted phase are close.
//
// Algorithm Outline (two rolling rows):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For i = 1..n, j = 1..m with |i−j| ≤ Window (when constrained):
//     D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//  3. distance = D[n][m].
//
// The step pattern is symmetric, so d(a,b) == d(b,a) and d(a,a) == 0.
// A window too narrow for the length difference yields +Inf.
//
// Complexity: O(n·m) time, O(m) memory.
type DTW struct {
	window int
}

// NewDTW returns a DTW distance. window == -1 or 0 means unconstrained.
// Errors: ErrBadWindow for window < -1.
func NewDTW(window int) (*DTW, error) {
	if window < -1 {
		return nil, ErrBadWindow
	}

	return &DTW{window: window}, nil
}

// Name implements Func.
func (*DTW) Name() string { return string(KindDTW) }

// Distance implements Func. Instances may differ in arity.
func (d *DTW) Distance(a, b dataset.Instance) (float64, error) {
	if !a.Numeric() || !b.Numeric() {
		return 0, ErrNonNumeric
	}

	return d.Between(a.Vector(), b.Vector()), nil
}

// Between implements Vector. Two empty series are at distance 0; an empty
// series is infinitely far from a non-empty one.
func (d *DTW) Between(a, b []float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		if n == m {
			return 0
		}
		return math.Inf(1)
	}

	window := math.MaxInt32
	if d.window > 0 {
		window = d.window
	}
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
