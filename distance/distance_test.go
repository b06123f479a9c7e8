package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(xs ...float64) dataset.Instance {
	vals := make([]dataset.Value, len(xs))
	for i, x := range xs {
		vals[i] = dataset.Num(x)
	}

	return dataset.NewInstance(vals...)
}

func text(s string) dataset.Instance { return dataset.NewInstance(dataset.Text(s)) }

// TestEuclideanManhattan_Known checks textbook values.
func TestEuclideanManhattan_Known(t *testing.T) {
	a, b := vec(0, 0), vec(3, 4)

	d, err := distance.Euclidean{}.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d, err = distance.Manhattan{}.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, d, 1e-12)
}

// TestNumeric_Rejections checks non-numeric and arity errors.
func TestNumeric_Rejections(t *testing.T) {
	_, err := distance.Euclidean{}.Distance(vec(1), text("a"))
	assert.ErrorIs(t, err, distance.ErrNonNumeric)
	assert.ErrorIs(t, err, clustering.ErrIncompatibleDistance)

	_, err = distance.Manhattan{}.Distance(vec(1), vec(1, 2))
	assert.ErrorIs(t, err, distance.ErrArity)
}

// TestEdit_Levenshtein checks classic pairs and weighted substitution.
func TestEdit_Levenshtein(t *testing.T) {
	e, err := distance.NewEdit(distance.UnitCosts())
	require.NoError(t, err)

	cases := []struct {
		a, b string
		want float64
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tc := range cases {
		d, err := e.Distance(text(tc.a), text(tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.want, d, "%s/%s", tc.a, tc.b)
	}

	// Substitution dearer than delete+insert falls back to the pair.
	w, err := distance.NewEdit(distance.EditCosts{Insert: 1, Delete: 1, Substitute: 5})
	require.NoError(t, err)
	d, _ := w.Distance(text("a"), text("b"))
	assert.Equal(t, 2.0, d)
}

// TestEdit_AsymmetricCostsRejected keeps the function symmetric.
func TestEdit_AsymmetricCostsRejected(t *testing.T) {
	_, err := distance.NewEdit(distance.EditCosts{Insert: 1, Delete: 2, Substitute: 1})
	assert.ErrorIs(t, err, distance.ErrAsymmetricCost)
	_, err = distance.NewEdit(distance.EditCosts{})
	assert.ErrorIs(t, err, distance.ErrAsymmetricCost)
}

// TestDTW_Warping checks shifted series align at zero cost and windows bind.
func TestDTW_Warping(t *testing.T) {
	d, err := distance.NewDTW(-1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Between([]float64{1, 2, 3}, []float64{1, 2, 2, 3}))
	assert.Equal(t, 0.0, d.Between(nil, nil))
	assert.True(t, math.IsInf(d.Between(nil, []float64{1}), 1))

	narrow, err := distance.NewDTW(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(narrow.Between([]float64{1}, []float64{1, 1, 1}), 1))

	_, err = distance.NewDTW(-2)
	assert.ErrorIs(t, err, distance.ErrBadWindow)
}

// TestHMM_Unconfigured is a fatal precondition violation.
func TestHMM_Unconfigured(t *testing.T) {
	h := &distance.HMM{}
	_, err := h.Distance(text("ab"), text("ba"))
	assert.ErrorIs(t, err, distance.ErrUnconfigured)
	assert.ErrorIs(t, err, clustering.ErrConfiguration)

	fn, err := distance.New(distance.KindHMM)
	require.NoError(t, err)
	_, err = fn.Distance(text("ab"), text("ab"))
	assert.ErrorIs(t, err, distance.ErrUnconfigured)
}

// TestHMM_ConfigureOnce makes the state count immutable.
func TestHMM_ConfigureOnce(t *testing.T) {
	h, err := distance.NewHMM(2)
	require.NoError(t, err)
	assert.Equal(t, 2, h.States())
	assert.ErrorIs(t, h.SetStates(3), distance.ErrAlreadyConfigured)
	assert.Equal(t, 2, h.States())
}

// TestHMM_SeparatesRegimes checks alternating sequences sit closer to each
// other than to a constant one.
func TestHMM_SeparatesRegimes(t *testing.T) {
	h, err := distance.NewHMM(2)
	require.NoError(t, err)

	near, err := h.Distance(text("abababababab"), text("babababababa"))
	require.NoError(t, err)
	far, err := h.Distance(text("abababababab"), text("cccccccccccc"))
	require.NoError(t, err)
	assert.Less(t, near, far)
}

// TestHMM_TokenBoundaries: a single token holding a separator byte is not the
// same sequence as the two tokens around it.
func TestHMM_TokenBoundaries(t *testing.T) {
	h, err := distance.NewHMM(2)
	require.NoError(t, err)

	joined := dataset.NewInstance(dataset.Sym("a\x1fb", 0))
	split := dataset.NewInstance(dataset.Sym("a", 0), dataset.Sym("b", 1))
	d, err := h.Distance(joined, split)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)

	self, err := h.Distance(split, dataset.NewInstance(dataset.Sym("a", 0), dataset.Sym("b", 1)))
	require.NoError(t, err)
	assert.Zero(t, self)
}

// TestProperties_SelfZeroAndSymmetry holds for every variant.
func TestProperties_SelfZeroAndSymmetry(t *testing.T) {
	numeric := []dataset.Instance{vec(0, 1, 2), vec(3, -1, 4), vec(0.5, 0.5, 0.5), vec(10, 0, -3)}
	symbolic := []dataset.Instance{text("abcab"), text("bca"), text("zzzz"), text("abab")}

	for _, kind := range distance.Kinds() {
		fn, err := distance.New(kind, distance.WithStates(2))
		require.NoError(t, err, kind)

		data := numeric
		if kind == distance.KindEdit || kind == distance.KindHMM {
			data = symbolic
		}
		for i := range data {
			self, err := fn.Distance(data[i], data[i])
			require.NoError(t, err)
			assert.Equal(t, 0.0, self, "%s: d(x,x)", kind)
			for j := range data {
				dij, err := fn.Distance(data[i], data[j])
				require.NoError(t, err)
				dji, err := fn.Distance(data[j], data[i])
				require.NoError(t, err)
				assert.InDelta(t, dij, dji, 1e-12, "%s: symmetry %d/%d", kind, i, j)
				assert.GreaterOrEqual(t, dij, 0.0)
			}
		}
	}
}

// TestParseKind accepts any case and rejects unknown names.
func TestParseKind(t *testing.T) {
	k, err := distance.ParseKind(" Euclidean ")
	require.NoError(t, err)
	assert.Equal(t, distance.KindEuclidean, k)

	_, err = distance.ParseKind("cosine")
	assert.ErrorIs(t, err, distance.ErrUnknownKind)

	_, err = distance.New("cosine")
	assert.ErrorIs(t, err, distance.ErrUnknownKind)
}

// TestMatrix_SequentialEqualsParallel checks worker count does not change values.
func TestMatrix_SequentialEqualsParallel(t *testing.T) {
	rows := make([][]float64, 40)
	for i := range rows {
		rows[i] = []float64{float64(i % 7), float64(i*i%11) / 3, float64(i) / 5}
	}
	ds, err := dataset.FromVectors(rows)
	require.NoError(t, err)

	seq, err := distance.NewMatrix(ds, distance.Euclidean{})
	require.NoError(t, err)
	par, err := distance.NewMatrix(ds, distance.Euclidean{}, distance.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, 40, par.Len())
	assert.Equal(t, "euclidean", par.Name())
	for i := 0; i < 40; i++ {
		assert.Equal(t, 0.0, par.At(i, i))
		assert.Equal(t, seq.Row(i), par.Row(i))
	}
}

// TestMatrix_Errors checks validation and propagation of Func errors.
func TestMatrix_Errors(t *testing.T) {
	_, err := distance.NewMatrix(nil, distance.Euclidean{})
	assert.ErrorIs(t, err, clustering.ErrEmptyDataset)

	ds, err := dataset.FromStrings("ab", "ba")
	require.NoError(t, err)
	_, err = distance.NewMatrix(ds, nil)
	assert.ErrorIs(t, err, clustering.ErrNilDistance)

	_, err = distance.NewMatrix(ds, distance.Euclidean{}, distance.WithWorkers(2))
	assert.ErrorIs(t, err, distance.ErrNonNumeric)

	_, err = distance.NewMatrix(ds, &distance.HMM{})
	assert.ErrorIs(t, err, distance.ErrUnconfigured)
}

// TestFromDense validates and mirrors the upper triangle.
func TestFromDense(t *testing.T) {
	m, err := distance.FromDense("given", [][]float64{{0, 2, 3}, {9, 0, 4}, {9, 9, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 4.0, m.At(2, 1))

	_, err = distance.FromDense("bad", [][]float64{{0, -1}, {0, 0}})
	assert.ErrorIs(t, err, distance.ErrInvalidDistance)
	_, err = distance.FromDense("ragged", [][]float64{{0, 1}, {0}})
	assert.ErrorIs(t, err, distance.ErrArity)
}
