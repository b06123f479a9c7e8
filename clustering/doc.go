// Package clustering holds the vocabulary shared by every clustering
// algorithm in lvcluster: label assignments, run results and their
// diagnostics, the configuration error taxonomy, and deterministic RNG
// helpers used for random initialisation.
//
// What lives here
//
//   - Assignment — a dense label slice, index i is instance i, value is
//     the cluster label in [0, k).
//   - Result — an Assignment plus the requested k, the number of
//     refinement iterations performed and a Status.
//   - Status — Converged or IterationLimitReached. Hitting the iteration
//     cap is a diagnostic, never an error: the assignment is still valid.
//   - Cardinality — Result.Mismatch reports when fewer than k distinct
//     labels were produced. Nothing is silently relabelled or repaired.
//
// Errors
//
//	Every configuration failure wraps ErrConfiguration, so callers can match
//	either the broad class or the precise cause:
//
//	  errors.Is(err, clustering.ErrConfiguration) // any bad configuration
//	  errors.Is(err, clustering.ErrInvalidK)      // k outside [1, n]
//
// Randomness
//
//	Algorithms never touch the global math/rand source. NewRNG turns a seed
//	into an independent *rand.Rand (seed==0 maps to a fixed default), and
//	SampleDistinct draws k distinct indices from [0, n) reproducibly.
package clustering
