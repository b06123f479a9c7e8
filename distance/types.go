// Package distance defines the distance capability, selectors, options and sentinel errors.
package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
)

var (
	// ErrNonNumeric indicates a numeric-only distance applied to non-numeric values.
	ErrNonNumeric = fmt.Errorf("%w: distance: numeric attributes required", clustering.ErrIncompatibleDistance)

	// ErrArity indicates two instances (or vectors) of different length where
	// the distance needs aligned attributes.
	ErrArity = errors.New("distance: instances differ in arity")

	// ErrUnconfigured indicates a model-based distance used before SetStates.
	ErrUnconfigured = fmt.Errorf("%w: distance: hmm state count not configured", clustering.ErrConfiguration)

	// ErrAlreadyConfigured indicates a second SetStates on a configured HMM.
	ErrAlreadyConfigured = fmt.Errorf("%w: distance: hmm state count is immutable once set", clustering.ErrConfiguration)

	// ErrUnknownKind indicates an unrecognised distance selector.
	ErrUnknownKind = fmt.Errorf("%w: distance: unknown distance measure", clustering.ErrConfiguration)

	// ErrAsymmetricCost indicates edit costs with Insert != Delete, or any cost <= 0.
	ErrAsymmetricCost = fmt.Errorf("%w: distance: edit costs must be positive with insert == delete", clustering.ErrConfiguration)

	// ErrInvalidDistance indicates a NaN or negative distance returned by a Func.
	ErrInvalidDistance = errors.New("distance: distance must be a non-negative number")

	// ErrBadWindow indicates a DTW window below -1.
	ErrBadWindow = fmt.Errorf("%w: distance: dtw window must be >= -1", clustering.ErrConfiguration)
)

// Func is the distance capability: a symmetric, non-negative dissimilarity
// with Distance(x, x) == 0. Implementations must be safe for concurrent use.
type Func interface {
	// Name returns the selector name of the function (e.g. "euclidean").
	Name() string

	// Distance returns d(a, b) >= 0.
	Distance(a, b dataset.Instance) (float64, error)
}

// Vector is implemented by functions defined over numeric attribute vectors.
// Centroid-based algorithms need it because centroids are not instances.
type Vector interface {
	Func

	// Between returns d(a, b) for equal-length vectors.
	Between(a, b []float64) float64
}

// Kind selects a distance function by name.
type Kind string

const (
	// KindEuclidean selects Euclidean.
	KindEuclidean Kind = "euclidean"
	// KindManhattan selects Manhattan.
	KindManhattan Kind = "manhattan"
	// KindEdit selects Edit (Levenshtein over instance tokens).
	KindEdit Kind = "edit"
	// KindHMM selects the model-based HMM distance.
	KindHMM Kind = "hmm"
	// KindDTW selects dynamic time warping over the numeric vector.
	KindDTW Kind = "dtw"
)

// Kinds lists every selector in a stable order.
func Kinds() []Kind {
	return []Kind{KindEuclidean, KindManhattan, KindEdit, KindHMM, KindDTW}
}

// ParseKind resolves a case-insensitive selector name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("distance.ParseKind(%q): %w", s, ErrUnknownKind)
}

// Options configures New.
//
// Fields:
//   - States    — hidden state count for KindHMM (0 leaves it unconfigured).
//   - Edit      — operation costs for KindEdit.
//   - Window    — Sakoe–Chiba band for KindDTW (-1 or 0: unconstrained).
//   - HMMSeed   — seed for the HMM fitting initialisation.
type Options struct {
	States  int
	Edit    EditCosts
	Window  int
	HMMSeed int64
}

// Option mutates Options.
type Option func(*Options)

// WithStates sets the HMM state count.
func WithStates(n int) Option { return func(o *Options) { o.States = n } }

// WithEditCosts sets the edit operation costs.
func WithEditCosts(c EditCosts) Option { return func(o *Options) { o.Edit = c } }

// WithWindow sets the DTW window.
func WithWindow(w int) Option { return func(o *Options) { o.Window = w } }

// WithHMMSeed sets the seed used when fitting per-instance HMMs.
func WithHMMSeed(seed int64) Option { return func(o *Options) { o.HMMSeed = seed } }

// DefaultOptions returns unit edit costs, an unconstrained DTW window and an
// unconfigured HMM.
func DefaultOptions() Options {
	return Options{
		Edit:    UnitCosts(),
		Window:  -1,
		HMMSeed: clustering.DefaultSeed,
	}
}

// New resolves kind into a Func once, so callers never dispatch on strings
// per distance call.
//
// Errors: ErrUnknownKind, ErrAsymmetricCost, ErrBadWindow, or hmm state errors.
func New(kind Kind, opts ...Option) (Func, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindEuclidean:
		return Euclidean{}, nil
	case KindManhattan:
		return Manhattan{}, nil
	case KindEdit:
		return NewEdit(o.Edit)
	case KindDTW:
		return NewDTW(o.Window)
	case KindHMM:
		h := &HMM{seed: o.HMMSeed}
		if o.States != 0 {
			if err := h.SetStates(o.States); err != nil {
				return nil, err
			}
		}

		return h, nil
	default:
		return nil, fmt.Errorf("distance.New(%q): %w", kind, ErrUnknownKind)
	}
}
