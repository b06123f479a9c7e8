package evaluation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/evaluation"
)

// TestRandIndex_SelfAgreement: any partition agrees with itself perfectly.
func TestRandIndex_SelfAgreement(t *testing.T) {
	parts := []clustering.Assignment{
		{0},
		{0, 0, 0, 0},
		{0, 1, 2, 3},
		{3, 3, 1, 1, 7, 3},
	}
	for _, p := range parts {
		ri, err := evaluation.RandIndex(p, p)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ri, "%v", p)

		ari, err := evaluation.AdjustedRandIndex(p, p)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, ari, 1e-12, "%v", p)

		cp, err := evaluation.CollapsedPairs(p, p)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cp, "%v", p)
	}
}

// TestRandIndex_LabelPermutation: only the partition matters, not the label values.
func TestRandIndex_LabelPermutation(t *testing.T) {
	a := clustering.Assignment{0, 0, 1, 1, 2}
	b := clustering.Assignment{5, 5, 9, 9, 0}
	scores, err := evaluation.All(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[evaluation.KindRand])
	assert.InDelta(t, 1.0, scores[evaluation.KindAdjustedRand], 1e-12)
	assert.Equal(t, 0.0, scores[evaluation.KindCollapsedPairs])
}

// TestMetrics_KnownValues checks a hand-counted example.
//
//	predicted {0,1,2}{3,4}     truth {0,1}{2,3,4}
//	pairs: 10; n11 = 2 ({0,1},{3,4}); n10 = 2 ({0,2},{1,2});
//	n01 = 2 ({2,3},{2,4}); n00 = 4.
func TestMetrics_KnownValues(t *testing.T) {
	pred := clustering.Assignment{0, 0, 0, 1, 1}
	truth := clustering.Assignment{0, 0, 1, 1, 1}

	ct, err := evaluation.NewContingency(pred, truth)
	require.NoError(t, err)
	p := ct.Pairs()
	assert.Equal(t, evaluation.Pairs{N: 5, SameSame: 2, SameDiff: 2, DiffSame: 2, DiffDiff: 4}, p)
	assert.Equal(t, 10.0, p.Total())

	ri, _ := evaluation.RandIndex(pred, truth)
	assert.InDelta(t, 0.6, ri, 1e-12)

	// a = b = 4, E = 1.6, max = 4: (2-1.6)/(4-1.6) = 1/6.
	ari, _ := evaluation.AdjustedRandIndex(pred, truth)
	assert.InDelta(t, 1.0/6.0, ari, 1e-12)

	// 2 of the 6 pairs the truth separates are collapsed.
	cp, _ := evaluation.CollapsedPairs(pred, truth)
	assert.InDelta(t, 1.0/3.0, cp, 1e-12)
}

// TestCollapsedPairs_Extremes covers the all-in-one prediction.
func TestCollapsedPairs_Extremes(t *testing.T) {
	truth := clustering.Assignment{0, 1, 2, 3}

	cp, err := evaluation.CollapsedPairs(clustering.Assignment{0, 0, 0, 0}, truth)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cp)

	ari, err := evaluation.AdjustedRandIndex(clustering.Assignment{0, 0, 0, 0}, truth)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ari)

	// Ground truth separating nothing: nothing to collapse.
	cp, err = evaluation.CollapsedPairs(truth, clustering.Assignment{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cp)
}

// TestMetrics_Mismatch is fatal to the call only.
func TestMetrics_Mismatch(t *testing.T) {
	for _, kind := range evaluation.Kinds() {
		m, err := evaluation.New(kind)
		require.NoError(t, err)
		_, err = m(clustering.Assignment{0, 1}, clustering.Assignment{0, 1, 1})
		assert.ErrorIs(t, err, evaluation.ErrIncompatibleInput, kind)
	}
	_, err := evaluation.All(nil, clustering.Assignment{0})
	assert.ErrorIs(t, err, evaluation.ErrIncompatibleInput)

	_, err = evaluation.New("purity")
	assert.ErrorIs(t, err, evaluation.ErrUnknownKind)
	assert.ErrorIs(t, err, clustering.ErrConfiguration)
}

// TestMetrics_Degenerate covers fewer than two instances.
func TestMetrics_Degenerate(t *testing.T) {
	scores, err := evaluation.All(clustering.Assignment{}, clustering.Assignment{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[evaluation.KindRand])
	assert.Equal(t, 1.0, scores[evaluation.KindAdjustedRand])
	assert.Equal(t, 0.0, scores[evaluation.KindCollapsedPairs])
}

// TestAdjustedRandIndex_RandomPartitionsNearZero: the chance correction
// centres independent random labelings on 0.
func TestAdjustedRandIndex_RandomPartitionsNearZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const (
		trials = 300
		n      = 200
		k      = 4
	)
	ari := make([]float64, trials)
	ri := make([]float64, trials)
	for tr := 0; tr < trials; tr++ {
		a := make(clustering.Assignment, n)
		b := make(clustering.Assignment, n)
		for i := 0; i < n; i++ {
			a[i] = rng.Intn(k)
			b[i] = rng.Intn(k)
		}
		scores, err := evaluation.All(a, b)
		require.NoError(t, err)
		ari[tr] = scores[evaluation.KindAdjustedRand]
		ri[tr] = scores[evaluation.KindRand]
	}

	assert.InDelta(t, 0.0, stat.Mean(ari, nil), 0.01)
	// The raw index is far from 0 for the same labelings: about 1 − 2·(1/k)(1 − 1/k).
	assert.InDelta(t, 0.625, stat.Mean(ri, nil), 0.02)
}
