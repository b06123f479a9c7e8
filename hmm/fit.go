package hmm

import (
	"math"

	"github.com/katalvlaran/lvcluster/clustering"
)

// Fit trains a states-state model on a single symbol sequence with Baum–Welch.
//
// Algorithm Outline:
//  1. Alphabet = sorted distinct symbols of seq.
//  2. Initialise Pi, A uniformly and B from symbol frequencies, each perturbed
//     by a seeded factor in [1, 1.25) so that states can specialise.
//  3. Repeat up to Iterations: scaled forward-backward (E-step), then
//     re-estimate Pi, A, B (M-step); stop once the log-likelihood gains less
//     than Tolerance.
//  4. Emissions are smoothed with Floor after every M-step.
//
// Determinism: identical (seq, states, options) ⇒ identical model.
// Errors: ErrInvalidStates, ErrInvalidIterations.
// Complexity: O(Iterations · T · S²) time, O(T·S) memory.
func Fit(seq []string, states int, opts ...Option) (*Model, error) {
	if states < 1 {
		return nil, ErrInvalidStates
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Iterations < 1 {
		return nil, ErrInvalidIterations
	}

	alphabet, index := alphabetOf(seq)
	m := &Model{
		States:   states,
		Alphabet: alphabet,
		Floor:    o.Floor,
		index:    index,
	}
	m.initialise(seq, o.Seed)
	if len(seq) == 0 {
		return m, nil
	}

	obs := make([]int, len(seq))
	for t, s := range seq {
		obs[t] = index[s]
	}
	prev := math.Inf(-1)
	for it := 0; it < o.Iterations; it++ {
		ll := m.reestimate(obs)
		if ll-prev < o.Tolerance {
			break
		}
		prev = ll
	}

	return m, nil
}

// initialise fills Pi, A and B with seeded, perturbed starting values.
func (m *Model) initialise(seq []string, seed int64) {
	rng := clustering.NewRNG(seed)
	S, V := m.States, len(m.Alphabet)
	jitter := func() float64 { return 1 + 0.25*rng.Float64() }

	m.Pi = make([]float64, S)
	for i := range m.Pi {
		m.Pi[i] = jitter()
	}
	normalize(m.Pi)

	m.A = make([][]float64, S)
	for i := range m.A {
		m.A[i] = make([]float64, S)
		for j := range m.A[i] {
			m.A[i][j] = jitter()
		}
		normalize(m.A[i])
	}

	counts := make([]float64, V)
	for _, s := range seq {
		counts[m.index[s]]++
	}
	m.B = make([][]float64, S)
	for i := range m.B {
		m.B[i] = make([]float64, V)
		for v := range m.B[i] {
			m.B[i][v] = counts[v] * jitter()
		}
		if V > 0 {
			normalize(m.B[i])
			m.smooth(i)
		}
	}
}

// smooth mixes the floor into the emission row of state i.
func (m *Model) smooth(i int) {
	V := float64(len(m.Alphabet))
	for v := range m.B[i] {
		m.B[i][v] = (m.B[i][v] + m.Floor) / (1 + V*m.Floor)
	}
}

// reestimate runs one Baum–Welch round in place and returns the
// log-likelihood of obs under the parameters it started from.
func (m *Model) reestimate(obs []int) float64 {
	T, S, V := len(obs), m.States, len(m.Alphabet)

	// Stage 1: scaled forward pass. sums[t] is the forward normaliser at t.
	alpha := grid(T, S)
	sums := make([]float64, T)
	var ll float64
	for i := 0; i < S; i++ {
		alpha[0][i] = m.Pi[i] * m.B[i][obs[0]]
	}
	sums[0] = normalize(alpha[0])
	ll += math.Log(sums[0])
	for t := 1; t < T; t++ {
		for j := 0; j < S; j++ {
			var acc float64
			for i := 0; i < S; i++ {
				acc += alpha[t-1][i] * m.A[i][j]
			}
			alpha[t][j] = acc * m.B[j][obs[t]]
		}
		sums[t] = normalize(alpha[t])
		ll += math.Log(sums[t])
	}

	// Stage 2: backward pass scaled by the same normalisers.
	beta := grid(T, S)
	for i := 0; i < S; i++ {
		beta[T-1][i] = 1
	}
	for t := T - 2; t >= 0; t-- {
		for i := 0; i < S; i++ {
			var acc float64
			for j := 0; j < S; j++ {
				acc += m.A[i][j] * m.B[j][obs[t+1]] * beta[t+1][j]
			}
			if sums[t+1] > 0 {
				acc /= sums[t+1]
			}
			beta[t][i] = acc
		}
	}

	// Stage 3: accumulate state occupancy (gamma) and transitions (xi).
	gamma := make([]float64, S)
	xi := make([]float64, S*S)
	startGamma := make([]float64, S)
	transFrom := grid(S, S)
	emit := grid(S, V)
	occupancy := make([]float64, S)
	for t := 0; t < T; t++ {
		for i := 0; i < S; i++ {
			gamma[i] = alpha[t][i] * beta[t][i]
		}
		normalize(gamma)
		if t == 0 {
			copy(startGamma, gamma)
		}
		for i := 0; i < S; i++ {
			emit[i][obs[t]] += gamma[i]
			occupancy[i] += gamma[i]
		}
		if t == T-1 {
			continue
		}
		for i := 0; i < S; i++ {
			for j := 0; j < S; j++ {
				xi[i*S+j] = alpha[t][i] * m.A[i][j] * m.B[j][obs[t+1]] * beta[t+1][j]
			}
		}
		normalize(xi)
		for i := 0; i < S; i++ {
			for j := 0; j < S; j++ {
				transFrom[i][j] += xi[i*S+j]
			}
		}
	}

	// Stage 4: M-step. Rows without evidence keep their previous values.
	copy(m.Pi, startGamma)
	for i := 0; i < S; i++ {
		var row float64
		for j := 0; j < S; j++ {
			row += transFrom[i][j]
		}
		if row > 0 {
			for j := 0; j < S; j++ {
				m.A[i][j] = transFrom[i][j] / row
			}
		}
		if occupancy[i] > 0 {
			for v := 0; v < V; v++ {
				m.B[i][v] = emit[i][v] / occupancy[i]
			}
			m.smooth(i)
		}
	}

	return ll
}

// grid allocates an r×c zero matrix as a slice of rows.
func grid(r, c int) [][]float64 {
	buf := make([]float64, r*c)
	out := make([][]float64, r)
	for i := range out {
		out[i] = buf[i*c : (i+1)*c : (i+1)*c]
	}

	return out
}
