// Package hmm defines the discrete hidden Markov model, its options and sentinel errors.
package hmm

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcluster/clustering"
)

var (
	// ErrInvalidStates indicates a state count below 1.
	ErrInvalidStates = errors.New("hmm: number of states must be >= 1")

	// ErrInvalidIterations indicates a Baum–Welch iteration cap below 1.
	ErrInvalidIterations = errors.New("hmm: iterations must be >= 1")
)

// Options configures Fit.
//
// Fields:
//   - Iterations — maximum Baum–Welch re-estimation rounds.
//   - Tolerance  — stop when the log-likelihood gains less than this.
//   - Floor      — probability assigned to symbols never emitted in training;
//     also mixed into every trained emission so no likelihood collapses to -Inf.
//   - Seed       — seeds the perturbation of the initial parameters (0 ⇒ default).
type Options struct {
	Iterations int
	Tolerance  float64
	Floor      float64
	Seed       int64
}

// Option mutates Options.
type Option func(*Options)

// WithIterations sets the Baum–Welch iteration cap.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithTolerance sets the convergence tolerance on the log-likelihood.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithFloor sets the emission floor probability.
func WithFloor(p float64) Option { return func(o *Options) { o.Floor = p } }

// WithSeed sets the initialisation seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// DefaultOptions returns 25 iterations, tolerance 1e-6, floor 1e-6, default seed.
func DefaultOptions() Options {
	return Options{
		Iterations: 25,
		Tolerance:  1e-6,
		Floor:      1e-6,
		Seed:       clustering.DefaultSeed,
	}
}

// Model is a discrete HMM over string symbols.
//
//	Pi[i]      — initial probability of state i
//	A[i][j]    — transition probability i → j
//	B[i][v]    — emission probability of Alphabet[v] from state i
//
// Symbols outside Alphabet are emitted with probability Floor from any state.
// A Model is read-only after Fit and safe for concurrent scoring.
type Model struct {
	States   int
	Alphabet []string
	Pi       []float64
	A        [][]float64
	B        [][]float64
	Floor    float64

	index map[string]int
}

// symbol returns the alphabet position of s, or -1.
func (m *Model) symbol(s string) int {
	if v, ok := m.index[s]; ok {
		return v
	}

	return -1
}

// emission returns P(s | state i).
func (m *Model) emission(i int, s string) float64 {
	v := m.symbol(s)
	if v < 0 {
		return m.Floor
	}

	return m.B[i][v]
}

// LogLikelihood returns log P(seq | m) via the scaled forward algorithm.
// The empty sequence has log-likelihood 0.
//
// Complexity: O(T·S²).
func (m *Model) LogLikelihood(seq []string) float64 {
	if len(seq) == 0 {
		return 0
	}
	S := m.States
	alpha := make([]float64, S)
	next := make([]float64, S)

	var ll float64
	for i := 0; i < S; i++ {
		alpha[i] = m.Pi[i] * m.emission(i, seq[0])
	}
	ll += math.Log(normalize(alpha))

	for t := 1; t < len(seq); t++ {
		for j := 0; j < S; j++ {
			var acc float64
			for i := 0; i < S; i++ {
				acc += alpha[i] * m.A[i][j]
			}
			next[j] = acc * m.emission(j, seq[t])
		}
		alpha, next = next, alpha
		ll += math.Log(normalize(alpha))
	}

	return ll
}

// normalize scales p to sum 1 and returns the original sum.
// A zero sum returns 0 and leaves p uniform.
func normalize(p []float64) float64 {
	sum := floats.Sum(p)
	if sum <= 0 {
		for i := range p {
			p[i] = 1 / float64(len(p))
		}

		return 0
	}
	floats.Scale(1/sum, p)

	return sum
}

// alphabetOf returns the sorted distinct symbols of seq and their index.
func alphabetOf(seq []string) ([]string, map[string]int) {
	seen := make(map[string]struct{}, len(seq))
	for _, s := range seq {
		seen[s] = struct{}{}
	}
	alpha := make([]string, 0, len(seen))
	for s := range seen {
		alpha = append(alpha, s)
	}
	sort.Strings(alpha)
	index := make(map[string]int, len(alpha))
	for i, s := range alpha {
		index[s] = i
	}

	return alpha, index
}
