// Package sweep drives clustering over a range of cluster counts and
// collects a k → assignment report.
//
// A Plan names the algorithm, distance, linkage and the range
// [MinK, MaxK]. Runner.Run resolves every selector once, then for each k:
//
//   - K-Means runs against the dataset;
//   - K-Medoids runs against a pairwise distance matrix computed once for
//     the whole sweep;
//   - hierarchical clustering builds one dendrogram on the first k and
//     only cuts it afterwards.
//
// The model-based HMM distance is configured with k hidden states, so for
// that distance the matrix is rebuilt per k (the dendrogram uses MinK).
//
// Evaluation runs only when Plan.Beta >= 1 and a ground truth is given;
// it adds Rand, Adjusted Rand and Collapsed Pairs scores to each Outcome.
// Fewer non-empty clusters than k and runs that hit the iteration cap are
// reported on the Outcome and logged at warn level; they do not fail the
// sweep.
//
// Logging uses zerolog (WithLogger); Prometheus collectors are optional
// (WithMetrics).
package sweep
