package sweep

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/katalvlaran/lvcluster/hierarchical"
)

// Algorithm selects the clustering family run at every k.
type Algorithm string

const (
	// KMeans runs kmeans.Cluster per k.
	KMeans Algorithm = "kmeans"
	// KMedoids runs kmedoids.Cluster per k over a cached distance matrix.
	KMedoids Algorithm = "kmedoids"
	// Hierarchical builds one dendrogram and cuts it per k.
	Hierarchical Algorithm = "hierarchical"
)

// ErrUnknownAlgorithm indicates an unrecognised algorithm selector.
var ErrUnknownAlgorithm = fmt.Errorf("%w: sweep: unknown clustering algorithm", clustering.ErrConfiguration)

// ErrInvalidRange indicates min_k > max_k, min_k < 1 or max_k > n.
var ErrInvalidRange = fmt.Errorf("%w: sweep: invalid cluster count range", clustering.ErrConfiguration)

// ParseAlgorithm resolves a case-insensitive selector.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case KMeans, KMedoids, Hierarchical:
		return a, nil
	default:
		return "", fmt.Errorf("sweep.ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}

// EvaluationThreshold is the smallest Beta that enables scoring.
const EvaluationThreshold = 1.0

// Plan is a fully resolved sweep: every selector is already typed, so Run
// never dispatches on strings.
type Plan struct {
	MinK, MaxK int

	Algorithm Algorithm
	Distance  distance.Kind
	// Linkage is used only by Hierarchical.
	Linkage hierarchical.Linkage

	// Beta gates evaluation: scores are computed only when
	// Beta >= EvaluationThreshold and ground truth is supplied.
	Beta float64

	MaxIterations int
	Seed          int64
	// Workers parallelises pairwise distance computation (<= 1: sequential).
	Workers int

	// DistanceOptions are passed to distance.New; the HMM state count is
	// set by Run.
	DistanceOptions []distance.Option
}

// Evaluates reports whether the plan scores partitions.
func (p Plan) Evaluates() bool { return p.Beta >= EvaluationThreshold }

// Validate checks the plan against a dataset of n instances.
func (p Plan) Validate(n int) error {
	if n == 0 {
		return clustering.ErrEmptyDataset
	}
	if p.MinK < 1 || p.MinK > p.MaxK || p.MaxK > n {
		return fmt.Errorf("sweep: k in [%d, %d] with n=%d: %w", p.MinK, p.MaxK, n, ErrInvalidRange)
	}
	if _, err := ParseAlgorithm(string(p.Algorithm)); err != nil {
		return err
	}
	if _, err := distance.ParseKind(string(p.Distance)); err != nil {
		return err
	}
	if p.Algorithm == Hierarchical && (p.Linkage < hierarchical.Single || p.Linkage > hierarchical.Ward) {
		return hierarchical.ErrUnknownLinkage
	}
	if p.Algorithm != Hierarchical && p.MaxIterations < 1 {
		return clustering.ErrInvalidIterations
	}

	return nil
}
