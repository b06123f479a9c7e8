// Package clustering - RNG utilities shared by randomly initialised algorithms.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial centroids/medoids.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every run owns its own *rand.Rand.
package clustering

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// SampleDistinct draws k distinct indices from [0, n) uniformly without
// replacement using a partial Fisher–Yates shuffle. If rng==nil the
// default deterministic stream is used.
//
// Errors: ErrInvalidK if k<=0 or k>n.
// Complexity: O(n) time, O(n) space.
func SampleDistinct(n, k int, rng *rand.Rand) ([]int, error) {
	if k <= 0 || k > n {
		return nil, ErrInvalidK
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	// Only the first k slots need to be settled.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k:k], nil
}

// ValidateIndexSet checks that idx holds exactly k distinct indices in [0, n).
//
// Errors: ErrInvalidMedoids on any violation.
// Complexity: O(k).
func ValidateIndexSet(idx []int, n, k int) error {
	if len(idx) != k {
		return ErrInvalidMedoids
	}
	seen := make(map[int]struct{}, k)
	for _, i := range idx {
		if i < 0 || i >= n {
			return ErrInvalidMedoids
		}
		if _, dup := seen[i]; dup {
			return ErrInvalidMedoids
		}
		seen[i] = struct{}{}
	}

	return nil
}
