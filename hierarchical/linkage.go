package hierarchical

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcluster/clustering"
)

// ErrUnknownLinkage indicates an unrecognised linkage name.
var ErrUnknownLinkage = fmt.Errorf("%w: hierarchical: unknown linkage", clustering.ErrConfiguration)

// Linkage selects the rule for the distance between two clusters.
//
// Every rule is expressed as a Lance–Williams update: after merging i and
// j, the distance from the merged cluster to any other cluster k is a
// function of d(i,k), d(j,k), d(i,j) and the three cluster sizes, so the
// agglomeration never revisits individual points.
type Linkage int

const (
	// Single: min over point pairs.
	Single Linkage = iota
	// Complete: max over point pairs.
	Complete
	// Average (UPGMA): size-weighted mean over point pairs.
	Average
	// Weighted (WPGMA): unweighted mean of the two children's distances.
	Weighted
	// Centroid (UPGMC): distance between cluster centroids.
	Centroid
	// Median (WPGMC): centroid rule with the merged centre taken as the
	// midpoint of the children, ignoring their sizes.
	Median
	// Ward: increase of the within-cluster sum of squares.
	Ward
)

var linkageNames = [...]string{
	Single:   "single",
	Complete: "complete",
	Average:  "average",
	Weighted: "weighted average",
	Centroid: "centroid",
	Median:   "median",
	Ward:     "ward",
}

// Linkages lists every linkage in declaration order.
func Linkages() []Linkage {
	return []Linkage{Single, Complete, Average, Weighted, Centroid, Median, Ward}
}

// String returns the configuration name of l.
func (l Linkage) String() string {
	if l < 0 || int(l) >= len(linkageNames) {
		return fmt.Sprintf("Linkage(%d)", int(l))
	}

	return linkageNames[l]
}

// ParseLinkage resolves a case-insensitive name. "weighted", "wpgma" and
// "weighted_average" are accepted for Weighted, "upgma" for Average,
// "upgmc" for Centroid, "wpgmc" for Median.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	case "average", "upgma":
		return Average, nil
	case "weighted average", "weighted_average", "weighted", "wpgma":
		return Weighted, nil
	case "centroid", "upgmc":
		return Centroid, nil
	case "median", "wpgmc":
		return Median, nil
	case "ward":
		return Ward, nil
	default:
		return 0, fmt.Errorf("hierarchical.ParseLinkage(%q): %w", s, ErrUnknownLinkage)
	}
}

// Squared reports whether l operates on squared distances. Centroid,
// Median and Ward are geometric rules whose Lance–Williams form is exact
// only for squared Euclidean input; merge heights are reported back on
// the original scale.
func (l Linkage) Squared() bool { return l == Centroid || l == Median || l == Ward }

// Update returns d(i∪j, k) from the pre-merge distances and sizes.
func (l Linkage) Update(dik, djk, dij float64, ni, nj, nk int) float64 {
	fi, fj, fk := float64(ni), float64(nj), float64(nk)
	switch l {
	case Single:
		return min(dik, djk)
	case Complete:
		return max(dik, djk)
	case Average:
		return (fi*dik + fj*djk) / (fi + fj)
	case Weighted:
		return 0.5*dik + 0.5*djk
	case Centroid:
		s := fi + fj
		return fi/s*dik + fj/s*djk - fi*fj/(s*s)*dij
	case Median:
		return 0.5*dik + 0.5*djk - 0.25*dij
	case Ward:
		return ((fi+fk)*dik + (fj+fk)*djk - fk*dij) / (fi + fj + fk)
	default:
		return max(dik, djk)
	}
}
