package evaluation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcluster/clustering"
)

// ErrIncompatibleInput indicates predicted and ground-truth assignments
// over different index sets.
var ErrIncompatibleInput = errors.New("evaluation: assignments cover different index sets")

// Pairs holds the four pair counts of two partitions over n instances.
type Pairs struct {
	N int

	// SameSame counts pairs together in both partitions (n11).
	SameSame float64
	// SameDiff counts pairs together in the prediction only (n10).
	SameDiff float64
	// DiffSame counts pairs together in the ground truth only (n01).
	DiffSame float64
	// DiffDiff counts pairs apart in both partitions (n00).
	DiffDiff float64
}

// Total returns C(N, 2).
func (p Pairs) Total() float64 { return choose2(p.N) }

// Contingency is the cross-tabulation of two labelings: Cells[r][c] is the
// number of instances with the r-th distinct predicted label and the c-th
// distinct ground-truth label (both in order of first occurrence).
type Contingency struct {
	Cells [][]int
	Rows  []int
	Cols  []int
	N     int
}

// NewContingency tabulates predicted against truth.
//
// Errors: ErrIncompatibleInput if the lengths differ.
// Complexity: O(n + r·c).
func NewContingency(predicted, truth clustering.Assignment) (*Contingency, error) {
	if len(predicted) != len(truth) {
		return nil, fmt.Errorf("evaluation: %d predicted vs %d ground-truth labels: %w",
			len(predicted), len(truth), ErrIncompatibleInput)
	}
	p, t := predicted.Canonical(), truth.Canonical()
	r, c := 0, 0
	for i := range p {
		r = max(r, p[i]+1)
		c = max(c, t[i]+1)
	}

	ct := &Contingency{Cells: make([][]int, r), Rows: make([]int, r), Cols: make([]int, c), N: len(p)}
	for i := range ct.Cells {
		ct.Cells[i] = make([]int, c)
	}
	for i := range p {
		ct.Cells[p[i]][t[i]]++
		ct.Rows[p[i]]++
		ct.Cols[t[i]]++
	}

	return ct, nil
}

// Pairs derives the pair counts from the table.
func (ct *Contingency) Pairs() Pairs {
	var cells, rows, cols float64
	for i := range ct.Cells {
		for _, v := range ct.Cells[i] {
			cells += choose2(v)
		}
	}
	for _, v := range ct.Rows {
		rows += choose2(v)
	}
	for _, v := range ct.Cols {
		cols += choose2(v)
	}
	total := choose2(ct.N)

	return Pairs{
		N:        ct.N,
		SameSame: cells,
		SameDiff: rows - cells,
		DiffSame: cols - cells,
		DiffDiff: total - rows - cols + cells,
	}
}

// choose2 returns n·(n−1)/2 as float64 to keep large n exact enough.
func choose2(n int) float64 {
	if n < 2 {
		return 0
	}

	return float64(n) * float64(n-1) / 2
}
