package evaluation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcluster/clustering"
)

// Metric scores predicted against truth.
type Metric func(predicted, truth clustering.Assignment) (float64, error)

// Kind names a metric.
type Kind string

const (
	// KindRand is the Rand Index ("distinguishing pairs").
	KindRand Kind = "rand"
	// KindAdjustedRand is the Adjusted Rand Index.
	KindAdjustedRand Kind = "adjusted_rand"
	// KindCollapsedPairs is the collapsed-pairs rate.
	KindCollapsedPairs Kind = "collapsed_pairs"
)

// ErrUnknownKind indicates an unrecognised metric name.
var ErrUnknownKind = fmt.Errorf("%w: evaluation: unknown metric", clustering.ErrConfiguration)

// Kinds lists every metric in reporting order.
func Kinds() []Kind { return []Kind{KindRand, KindAdjustedRand, KindCollapsedPairs} }

// New resolves a metric by name (case-insensitive).
func New(kind Kind) (Metric, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindRand:
		return RandIndex, nil
	case KindAdjustedRand:
		return AdjustedRandIndex, nil
	case KindCollapsedPairs:
		return CollapsedPairs, nil
	default:
		return nil, fmt.Errorf("evaluation.New(%q): %w", kind, ErrUnknownKind)
	}
}

// RandIndex returns the fraction of instance pairs on which predicted and
// truth agree about being in the same cluster or not. Fewer than two
// instances score 1.
func RandIndex(predicted, truth clustering.Assignment) (float64, error) {
	ct, err := NewContingency(predicted, truth)
	if err != nil {
		return 0, err
	}

	return rand(ct.Pairs()), nil
}

// AdjustedRandIndex returns the Rand Index adjusted for chance:
//
//	ARI = (n11 − E) / (½(a + b) − E),  E = a·b / C(n,2)
//
// where a and b are the same-cluster pair counts of predicted and truth.
// When both partitions are trivial (the denominator vanishes) the
// labelings are identical in pair terms and ARI is 1.
func AdjustedRandIndex(predicted, truth clustering.Assignment) (float64, error) {
	ct, err := NewContingency(predicted, truth)
	if err != nil {
		return 0, err
	}

	return adjusted(ct.Pairs()), nil
}

// CollapsedPairs returns n10 / (n10 + n00): among the pairs the ground
// truth keeps apart, the fraction that the prediction puts together.
// When the ground truth separates no pair the score is 0.
func CollapsedPairs(predicted, truth clustering.Assignment) (float64, error) {
	ct, err := NewContingency(predicted, truth)
	if err != nil {
		return 0, err
	}

	return collapsed(ct.Pairs()), nil
}

// All computes every metric from one contingency table.
func All(predicted, truth clustering.Assignment) (map[Kind]float64, error) {
	ct, err := NewContingency(predicted, truth)
	if err != nil {
		return nil, err
	}
	p := ct.Pairs()

	return map[Kind]float64{
		KindRand:           rand(p),
		KindAdjustedRand:   adjusted(p),
		KindCollapsedPairs: collapsed(p),
	}, nil
}

func rand(p Pairs) float64 {
	total := p.Total()
	if total == 0 {
		return 1
	}

	return (p.SameSame + p.DiffDiff) / total
}

func adjusted(p Pairs) float64 {
	total := p.Total()
	if total == 0 {
		return 1
	}
	a := p.SameSame + p.SameDiff
	b := p.SameSame + p.DiffSame
	expected := a * b / total
	maximum := (a + b) / 2
	if maximum == expected {
		return 1
	}

	return (p.SameSame - expected) / (maximum - expected)
}

func collapsed(p Pairs) float64 {
	apart := p.SameDiff + p.DiffDiff
	if apart == 0 {
		return 0
	}

	return p.SameDiff / apart
}
