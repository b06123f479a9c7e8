package distance

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/hmm"
)

// HMM is the model-based distance over discrete hidden-state models.
//
// Every instance's token sequence x is summarised by its own model λx,
// fitted with Baum–Welch using the configured number of hidden states.
// Two instances are compared by how much worse each is explained by the
// other's model, per symbol:
//
//	gap(x, y) = max(0, (log P(x|λx) − log P(x|λy)) / |x|)
//	d(x, y)   = ½ · (gap(x, y) + gap(y, x))
//
// d is symmetric by construction, non-negative by the clamp, and exactly 0
// for identical token sequences (they share one cached model). The state
// count is the model complexity: it must be set once before the first call
// and is immutable thereafter.
//
// Fitted models are cached per distinct token sequence; HMM is safe for
// concurrent use.
type HMM struct {
	states int
	seed   int64

	mu     sync.Mutex
	models map[string]*hmm.Model
}

// NewHMM returns a configured HMM distance.
func NewHMM(states int) (*HMM, error) {
	h := &HMM{}
	if err := h.SetStates(states); err != nil {
		return nil, err
	}

	return h, nil
}

// SetStates configures the hidden state count. It may be called once.
// Errors: ErrAlreadyConfigured, hmm.ErrInvalidStates.
func (h *HMM) SetStates(n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.states != 0 {
		return ErrAlreadyConfigured
	}
	if n < 1 {
		return hmm.ErrInvalidStates
	}
	h.states = n

	return nil
}

// States returns the configured state count (0 while unconfigured).
func (h *HMM) States() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.states
}

// Name implements Func.
func (*HMM) Name() string { return string(KindHMM) }

// Distance implements Func.
// Errors: ErrUnconfigured when SetStates was never called.
func (h *HMM) Distance(a, b dataset.Instance) (float64, error) {
	x, y := a.Tokens(), b.Tokens()
	kx, ky := key(x), key(y)

	mx, err := h.model(kx, x)
	if err != nil {
		return 0, err
	}
	if kx == ky {
		return 0, nil
	}
	my, err := h.model(ky, y)
	if err != nil {
		return 0, err
	}

	return 0.5 * (gap(x, mx, my) + gap(y, my, mx)), nil
}

// model returns the cached model for seq, fitting it on first use.
func (h *HMM) model(k string, seq []string) (*hmm.Model, error) {
	h.mu.Lock()
	states := h.states
	cached, ok := h.models[k]
	h.mu.Unlock()
	if states == 0 {
		return nil, ErrUnconfigured
	}
	if ok {
		return cached, nil
	}

	// Fit outside the lock so concurrent callers fit distinct sequences in
	// parallel; the first stored model wins.
	m, err := hmm.Fit(seq, states, hmm.WithSeed(h.seed))
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if cached, ok := h.models[k]; ok {
		return cached, nil
	}
	if h.models == nil {
		h.models = make(map[string]*hmm.Model)
	}
	h.models[k] = m

	return m, nil
}

// gap is the clamped per-symbol log-likelihood loss of explaining seq with
// other instead of own.
func gap(seq []string, own, other *hmm.Model) float64 {
	if len(seq) == 0 {
		return 0
	}
	g := (own.LogLikelihood(seq) - other.LogLikelihood(seq)) / float64(len(seq))
	if g < 0 || math.IsNaN(g) {
		return 0
	}

	return g
}

// key encodes tokens as length-prefixed fields, so distinct token
// sequences never share a key whatever bytes the tokens hold.
func key(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}

	return b.String()
}
