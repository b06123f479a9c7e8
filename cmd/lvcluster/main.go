// Command lvcluster clusters an ARFF dataset over a range of cluster
// counts and writes the k → labels mapping.
//
// Usage:
//
//	lvcluster [-v] [-quiet] config.{json,yaml,toml}
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/config"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/evaluation"
	"github.com/katalvlaran/lvcluster/results"
	"github.com/katalvlaran/lvcluster/sweep"
)

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	quiet := flag.Bool("quiet", false, "log warnings and errors only")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-v] [-quiet] configFile\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	switch {
	case *verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case *quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0)); err != nil {
		log.Error().Err(err).Msg("lvcluster failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	format, err := cfg.Format()
	if err != nil {
		return err
	}

	ds, err := dataset.ReadARFFFile(cfg.ARFFPath)
	if err != nil {
		return err
	}
	log.Info().
		Str("relation", ds.Name()).
		Int("instances", ds.Len()).
		Int("attributes", len(ds.Attributes())).
		Msg("dataset loaded")

	var truth clustering.Assignment
	if plan.Evaluates() && cfg.GroundTruth != "" {
		// A missing or unreadable ground truth disables evaluation only.
		if truth, err = dataset.ReadGroundTruthFile(cfg.GroundTruth); err != nil {
			log.Warn().Err(err).Str("path", cfg.GroundTruth).Msg("evaluation skipped")
			truth = nil
		}
	}

	reg := prometheus.NewRegistry()
	metrics := sweep.NewMetrics()
	if err := metrics.Register(reg); err != nil {
		return err
	}
	rep, err := sweep.NewRunner(sweep.WithMetrics(metrics)).Run(ctx, ds, truth, plan)
	if err != nil {
		return err
	}

	for _, k := range rep.Ks() {
		o := rep.Outcomes[k]
		ev := log.Debug().Int("k", k).Interface("labels", o.Labels)
		for _, kind := range evaluation.Kinds() {
			if v, ok := o.Scores[kind]; ok {
				ev = ev.Float64(string(kind), v)
			}
		}
		ev.Msg("cluster")
	}

	if err := results.Save(cfg.ClusterOutPath, rep.Assignments(), format); err != nil {
		return err
	}
	log.Info().
		Str("run", rep.ID.String()).
		Str("path", cfg.ClusterOutPath).
		Str("format", string(format)).
		Float64("runs", countRuns(reg)).
		Msg("results written")

	return nil
}

// countRuns sums the runs counter gathered from reg.
func countRuns(reg *prometheus.Registry) float64 {
	mfs, err := reg.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range mfs {
		if mf.GetName() != "lvcluster_sweep_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total
}
