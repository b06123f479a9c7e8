package clustering

import "sort"

// Status reports how an iterative refinement loop terminated.
type Status int

const (
	// Converged: the loop stopped because nothing changed between iterations.
	Converged Status = iota

	// IterationLimitReached: the loop hit its iteration cap. The assignment
	// is the last one computed and is still complete.
	IterationLimitReached
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration_limit_reached"
	default:
		return "unknown"
	}
}

// Assignment maps instance index i to the cluster label Assignment[i].
// A valid assignment produced by lvcluster covers every index exactly once.
type Assignment []int

// Len returns the number of labelled instances.
func (a Assignment) Len() int { return len(a) }

// Distinct returns the number of distinct labels in a.
// Complexity: O(n).
func (a Assignment) Distinct() int {
	seen := make(map[int]struct{}, len(a))
	for _, l := range a {
		seen[l] = struct{}{}
	}

	return len(seen)
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Clusters groups instance indices by label. Groups are ordered by
// ascending label and members by ascending index; empty labels are absent.
// Complexity: O(n log n).
func (a Assignment) Clusters() [][]int {
	byLabel := make(map[int][]int)
	labels := make([]int, 0)
	for i, l := range a {
		if _, ok := byLabel[l]; !ok {
			labels = append(labels, l)
		}
		byLabel[l] = append(byLabel[l], i)
	}
	sort.Ints(labels)

	out := make([][]int, 0, len(labels))
	for _, l := range labels {
		out = append(out, byLabel[l])
	}

	return out
}

// Canonical relabels a so that labels appear in order of first occurrence
// (instance 0 gets label 0, the next new cluster gets 1, ...). Two
// assignments describe the same partition iff their canonical forms are equal.
func (a Assignment) Canonical() Assignment {
	out := make(Assignment, len(a))
	remap := make(map[int]int, len(a))
	for i, l := range a {
		c, ok := remap[l]
		if !ok {
			c = len(remap)
			remap[l] = c
		}
		out[i] = c
	}

	return out
}

// Validate checks that every label lies in [0, k).
func (a Assignment) Validate(k int) error {
	if k <= 0 {
		return ErrInvalidK
	}
	for _, l := range a {
		if l < 0 || l >= k {
			return ErrInvalidK
		}
	}

	return nil
}

// Result is the outcome of one clustering run at a fixed k.
type Result struct {
	// Labels is the complete assignment, one label in [0, K) per instance.
	Labels Assignment

	// K is the requested number of clusters.
	K int

	// Iterations is the number of assign/update rounds performed.
	// Non-iterative algorithms (dendrogram cuts) report 0.
	Iterations int

	// Status tells whether the run converged or hit its cap.
	Status Status
}

// Distinct returns the number of non-empty clusters in the result.
func (r Result) Distinct() int { return r.Labels.Distinct() }

// Mismatch reports a cardinality mismatch: fewer non-empty clusters than K.
// It is a diagnostic, the assignment remains valid.
func (r Result) Mismatch() bool { return r.Distinct() < r.K }
