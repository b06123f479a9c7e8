// Package hmm implements a small discrete hidden Markov model: scaled forward
// scoring and single-sequence Baum–Welch training.
//
// It backs the model-based distance in package distance, where every
// instance's token sequence is summarised by its own fitted model and two
// instances are compared by how well each model explains the other's data.
//
// Usage:
//
//	m, err := hmm.Fit([]string{"a", "b", "a", "b"}, 2)
//	ll := m.LogLikelihood([]string{"a", "b"})
//
// Determinism: Fit perturbs its starting point with a seeded RNG (WithSeed);
// the same sequence, state count and options always yield the same model.
//
// Complexity:
//
//   - Fit:           O(Iterations · T · S²) time, O(T · S) memory
//   - LogLikelihood: O(T · S²) time, O(S) memory
package hmm
