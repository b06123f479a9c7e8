package clustering

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella sentinel for configuration failures.
// It is fatal to the call that returned it and never leaves a partial result.
var ErrConfiguration = errors.New("clustering: configuration error")

var (
	// ErrEmptyDataset indicates that there are no instances to cluster.
	ErrEmptyDataset = fmt.Errorf("%w: empty dataset", ErrConfiguration)

	// ErrInvalidK indicates k <= 0 or k > n.
	ErrInvalidK = fmt.Errorf("%w: number of clusters must be in [1, n]", ErrConfiguration)

	// ErrInvalidIterations indicates a maximum iteration count below 1.
	ErrInvalidIterations = fmt.Errorf("%w: maximum iterations must be >= 1", ErrConfiguration)

	// ErrInvalidMedoids indicates an initial medoid (or centroid) set that is
	// not exactly k distinct indices in [0, n).
	ErrInvalidMedoids = fmt.Errorf("%w: initial set must hold k distinct valid indices", ErrConfiguration)

	// ErrIncompatibleDistance indicates a distance function that cannot serve
	// the requested algorithm (e.g. a symbolic distance for K-Means).
	ErrIncompatibleDistance = fmt.Errorf("%w: distance function incompatible with algorithm", ErrConfiguration)

	// ErrNilDistance indicates that no distance function or matrix was supplied.
	ErrNilDistance = fmt.Errorf("%w: nil distance", ErrConfiguration)

	// ErrCutOutOfRange indicates a dendrogram cut at k outside [1, n].
	ErrCutOutOfRange = fmt.Errorf("%w: cut must be in [1, n]", ErrConfiguration)
)
