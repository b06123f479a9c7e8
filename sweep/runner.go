package sweep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/katalvlaran/lvcluster/evaluation"
	"github.com/katalvlaran/lvcluster/hierarchical"
	"github.com/katalvlaran/lvcluster/kmeans"
	"github.com/katalvlaran/lvcluster/kmedoids"
)

// Outcome is the result of one k.
type Outcome struct {
	clustering.Result

	// Clusters is the number of non-empty clusters.
	Clusters int
	// Scores is nil when evaluation did not run.
	Scores  map[evaluation.Kind]float64
	Elapsed time.Duration
}

// Report accumulates the outcomes of a sweep, keyed by k.
type Report struct {
	ID        uuid.UUID
	Plan      Plan
	Instances int
	Outcomes  map[int]*Outcome
}

// Ks returns the swept cluster counts in ascending order.
func (r *Report) Ks() []int {
	ks := make([]int, 0, len(r.Outcomes))
	for k := range r.Outcomes {
		ks = append(ks, k)
	}
	sort.Ints(ks)

	return ks
}

// Assignments returns the k → labels mapping handed to a result sink.
func (r *Report) Assignments() map[int]clustering.Assignment {
	out := make(map[int]clustering.Assignment, len(r.Outcomes))
	for k, o := range r.Outcomes {
		out[k] = o.Labels
	}

	return out
}

// Runner executes plans. A zero Runner is not usable; call NewRunner.
type Runner struct {
	log     zerolog.Logger
	metrics *Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger (default: the global zerolog logger).
func WithLogger(l zerolog.Logger) Option { return func(r *Runner) { r.log = l } }

// WithMetrics makes the runner update m.
func WithMetrics(m *Metrics) Option { return func(r *Runner) { r.metrics = m } }

// NewRunner returns a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: log.Logger}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run sweeps k over [plan.MinK, plan.MaxK].
//
// Stage 1 (Validate): the plan against ds; truth length against ds when
// evaluation is enabled.
// Stage 2 (Execute): per k, resolve the distance (the HMM variant gets k
// hidden states), cluster, and score. Distance matrices are computed once
// and reused across k unless the distance depends on k; hierarchical
// clustering builds a single dendrogram (HMM states = MinK) and cuts it.
// Stage 3 (Report): a failing k aborts the sweep and no report is
// returned.
//
// ctx is checked between cluster counts.
func (r *Runner) Run(ctx context.Context, ds *dataset.Dataset, truth clustering.Assignment, plan Plan) (*Report, error) {
	if ds == nil {
		return nil, clustering.ErrEmptyDataset
	}
	if err := plan.Validate(ds.Len()); err != nil {
		return nil, err
	}
	evaluate := plan.Evaluates() && truth != nil
	if evaluate && truth.Len() != ds.Len() {
		return nil, fmt.Errorf("sweep: %d ground-truth labels for %d instances: %w",
			truth.Len(), ds.Len(), evaluation.ErrIncompatibleInput)
	}

	rep := &Report{ID: uuid.New(), Plan: plan, Instances: ds.Len(), Outcomes: make(map[int]*Outcome)}
	logger := r.log.With().
		Str("run", rep.ID.String()).
		Str("algorithm", string(plan.Algorithm)).
		Str("distance", string(plan.Distance)).
		Logger()
	logger.Info().
		Int("instances", ds.Len()).
		Int("min_k", plan.MinK).
		Int("max_k", plan.MaxK).
		Bool("evaluate", evaluate).
		Msg("sweep started")

	st := &state{plan: plan, ds: ds}
	for k := plan.MinK; k <= plan.MaxK; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		res, err := st.cluster(k)
		if err != nil {
			logger.Error().Err(err).Int("k", k).Msg("clustering failed")
			return nil, fmt.Errorf("sweep: k=%d: %w", k, err)
		}
		out := &Outcome{Result: res, Clusters: res.Distinct()}
		if evaluate {
			if out.Scores, err = evaluation.All(res.Labels, truth); err != nil {
				return nil, fmt.Errorf("sweep: k=%d: %w", k, err)
			}
		}
		out.Elapsed = time.Since(start)
		rep.Outcomes[k] = out

		r.observe(logger, plan.Algorithm, out)
	}
	logger.Info().Int("outcomes", len(rep.Outcomes)).Msg("sweep finished")

	return rep, nil
}

// observe logs and records metrics for one outcome.
func (r *Runner) observe(logger zerolog.Logger, alg Algorithm, out *Outcome) {
	ev := logger.Info().
		Int("k", out.K).
		Int("clusters", out.Clusters).
		Str("status", out.Status.String()).
		Int("iterations", out.Iterations).
		Dur("elapsed", out.Elapsed)
	for _, kind := range evaluation.Kinds() {
		if v, ok := out.Scores[kind]; ok {
			ev = ev.Float64(string(kind), v)
		}
	}
	ev.Msg("clustered")

	if out.Mismatch() {
		logger.Warn().Int("k", out.K).Int("clusters", out.Clusters).
			Msgf("Number of clusters: %d < k", out.Clusters)
	}
	if out.Status == clustering.IterationLimitReached {
		logger.Warn().Int("k", out.K).Int("iterations", out.Iterations).Msg("iteration limit reached")
	}

	if r.metrics == nil {
		return
	}
	a := string(alg)
	r.metrics.Runs.WithLabelValues(a, out.Status.String()).Inc()
	r.metrics.Duration.WithLabelValues(a).Observe(out.Elapsed.Seconds())
	if alg != Hierarchical {
		r.metrics.Iterations.WithLabelValues(a).Observe(float64(out.Iterations))
	}
	if out.Mismatch() {
		r.metrics.Mismatches.WithLabelValues(a).Inc()
	}
}

// state holds what a sweep reuses across k.
type state struct {
	plan Plan
	ds   *dataset.Dataset

	fn     distance.Func
	matrix *distance.Matrix
	tree   *hierarchical.Dendrogram
}

// resolve returns the distance function for k. Only the HMM variant
// depends on k.
func (s *state) resolve(k int) (distance.Func, error) {
	if s.plan.Distance == distance.KindHMM {
		opts := make([]distance.Option, 0, len(s.plan.DistanceOptions)+2)
		opts = append(opts, s.plan.DistanceOptions...)
		opts = append(opts, distance.WithStates(k), distance.WithHMMSeed(s.plan.Seed))

		return distance.New(distance.KindHMM, opts...)
	}
	if s.fn == nil {
		fn, err := distance.New(s.plan.Distance, s.plan.DistanceOptions...)
		if err != nil {
			return nil, err
		}
		s.fn = fn
	}

	return s.fn, nil
}

// matrixFor returns the pairwise matrix for k, cached when k-independent.
func (s *state) matrixFor(k int) (*distance.Matrix, error) {
	if s.matrix != nil {
		return s.matrix, nil
	}
	fn, err := s.resolve(k)
	if err != nil {
		return nil, err
	}
	m, err := distance.NewMatrix(s.ds, fn, distance.WithWorkers(s.plan.Workers))
	if err != nil {
		return nil, err
	}
	if s.plan.Distance != distance.KindHMM {
		s.matrix = m
	}

	return m, nil
}

// cluster runs the planned algorithm at k.
func (s *state) cluster(k int) (clustering.Result, error) {
	switch s.plan.Algorithm {
	case KMeans:
		fn, err := s.resolve(k)
		if err != nil {
			return clustering.Result{}, err
		}
		return kmeans.Cluster(s.ds, fn, k,
			kmeans.WithMaxIterations(s.plan.MaxIterations), kmeans.WithSeed(s.plan.Seed))

	case KMedoids:
		m, err := s.matrixFor(k)
		if err != nil {
			return clustering.Result{}, err
		}
		return kmedoids.Cluster(m, k,
			kmedoids.WithMaxIterations(s.plan.MaxIterations), kmedoids.WithSeed(s.plan.Seed))

	case Hierarchical:
		if s.tree == nil {
			m, err := s.matrixFor(s.plan.MinK)
			if err != nil {
				return clustering.Result{}, err
			}
			if s.tree, err = hierarchical.Build(m, s.plan.Linkage); err != nil {
				return clustering.Result{}, err
			}
		}
		return s.tree.Result(k)

	default:
		return clustering.Result{}, ErrUnknownAlgorithm
	}
}
