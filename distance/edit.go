package distance

import "github.com/katalvlaran/lvcluster/dataset"

// EditCosts are the per-operation costs of the edit distance.
// Insert must equal Delete: otherwise d(a,b) != d(b,a).
type EditCosts struct {
	Insert     float64
	Delete     float64
	Substitute float64
}

// UnitCosts returns the classic Levenshtein costs (1, 1, 1).
func UnitCosts() EditCosts { return EditCosts{Insert: 1, Delete: 1, Substitute: 1} }

// Edit is the minimum-cost sequence of single-token insert/delete/substitute
// operations turning one instance's Tokens into the other's.
type Edit struct {
	costs EditCosts
}

// NewEdit validates costs and returns an Edit distance.
// Errors: ErrAsymmetricCost.
func NewEdit(costs EditCosts) (*Edit, error) {
	if costs.Insert <= 0 || costs.Delete <= 0 || costs.Substitute <= 0 || costs.Insert != costs.Delete {
		return nil, ErrAsymmetricCost
	}

	return &Edit{costs: costs}, nil
}

// Name implements Func.
func (*Edit) Name() string { return string(KindEdit) }

// Costs returns the configured operation costs.
func (e *Edit) Costs() EditCosts { return e.costs }

// Distance implements Func over Instance.Tokens.
func (e *Edit) Distance(a, b dataset.Instance) (float64, error) {
	return e.Tokens(a.Tokens(), b.Tokens()), nil
}

// Tokens computes the edit distance between two token sequences.
//
// Algorithm Outline (two rolling rows):
//
//	D[0][j] = j·Insert, D[i][0] = i·Delete
//	D[i][j] = min(D[i-1][j] + Delete,
//	              D[i][j-1] + Insert,
//	              D[i-1][j-1] + (x[i-1]==y[j-1] ? 0 : Substitute))
//
// The shorter sequence indexes the columns.
// Complexity: O(n·m) time, O(min(n,m)) memory.
func (e *Edit) Tokens(x, y []string) float64 {
	if len(y) > len(x) {
		x, y = y, x
	}
	m := len(y)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = float64(j) * e.costs.Insert
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = float64(i) * e.costs.Delete
		for j := 1; j <= m; j++ {
			sub := prev[j-1]
			if x[i-1] != y[j-1] {
				sub += e.costs.Substitute
			}
			curr[j] = min3(prev[j]+e.costs.Delete, curr[j-1]+e.costs.Insert, sub)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
