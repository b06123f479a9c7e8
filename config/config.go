package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/distance"
	"github.com/katalvlaran/lvcluster/hierarchical"
	"github.com/katalvlaran/lvcluster/results"
	"github.com/katalvlaran/lvcluster/sweep"
)

var (
	// ErrUnsupportedFile indicates a configuration file extension with no decoder.
	ErrUnsupportedFile = errors.New("config: unsupported configuration file type")

	// ErrMissingPath indicates a required path key left empty.
	ErrMissingPath = fmt.Errorf("%w: config: missing path", clustering.ErrConfiguration)
)

// EditCosts mirrors distance.EditCosts with file tags.
type EditCosts struct {
	Insert     float64 `yaml:"insert" toml:"insert"`
	Delete     float64 `yaml:"delete" toml:"delete"`
	Substitute float64 `yaml:"substitute" toml:"substitute"`
}

// Config is the run configuration file. min_k, max_k and beta accept
// numbers written as strings ("2", "1.0").
type Config struct {
	MinK        Int    `yaml:"min_k" toml:"min_k"`
	MaxK        Int    `yaml:"max_k" toml:"max_k"`
	Beta        Float  `yaml:"beta" toml:"beta"`
	ClusterAlg  string `yaml:"cluster_alg" toml:"cluster_alg"`
	DistMeasure string `yaml:"dist_measure" toml:"dist_measure"`
	AggloMethod string `yaml:"agglo_method" toml:"agglo_method"`

	ARFFPath       string `yaml:"arffpath" toml:"arffpath"`
	ClusterOutPath string `yaml:"cluster_outpath" toml:"cluster_outpath"`
	GroundTruth    string `yaml:"gt_outpath" toml:"gt_outpath"`

	MaxIterations int        `yaml:"max_iterations" toml:"max_iterations"`
	Seed          int64      `yaml:"seed" toml:"seed"`
	Workers       int        `yaml:"workers" toml:"workers"`
	OutputFormat  string     `yaml:"output_format" toml:"output_format"`
	DTWWindow     *int       `yaml:"dtw_window" toml:"dtw_window"`
	EditCosts     *EditCosts `yaml:"edit_costs" toml:"edit_costs"`
}

// Default returns a Config with every optional key at its default.
func Default() Config {
	return Config{
		MaxIterations: 100,
		Seed:          clustering.DefaultSeed,
		Workers:       1,
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode config '%s': %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read config '%s': %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode config '%s': %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks selectors, ranges and required paths. The k range is
// checked against the dataset size later, by the sweep.
func (c Config) Validate() error {
	if c.ARFFPath == "" {
		return fmt.Errorf("arffpath: %w", ErrMissingPath)
	}
	if c.ClusterOutPath == "" {
		return fmt.Errorf("cluster_outpath: %w", ErrMissingPath)
	}
	if c.MinK < 1 || c.MinK > c.MaxK {
		return fmt.Errorf("min_k=%d max_k=%d: %w", c.MinK, c.MaxK, sweep.ErrInvalidRange)
	}
	if c.MaxIterations < 1 {
		return clustering.ErrInvalidIterations
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	_, err := c.Plan()

	return err
}

// Plan resolves the selectors into a sweep.Plan.
func (c Config) Plan() (sweep.Plan, error) {
	alg, err := sweep.ParseAlgorithm(c.ClusterAlg)
	if err != nil {
		return sweep.Plan{}, err
	}
	kind, err := distance.ParseKind(c.DistMeasure)
	if err != nil {
		return sweep.Plan{}, err
	}
	p := sweep.Plan{
		MinK:          int(c.MinK),
		MaxK:          int(c.MaxK),
		Algorithm:     alg,
		Distance:      kind,
		Beta:          float64(c.Beta),
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Workers:       c.Workers,
	}
	if alg == sweep.Hierarchical {
		if p.Linkage, err = hierarchical.ParseLinkage(c.AggloMethod); err != nil {
			return sweep.Plan{}, err
		}
	}
	if c.DTWWindow != nil {
		p.DistanceOptions = append(p.DistanceOptions, distance.WithWindow(*c.DTWWindow))
	}
	if c.EditCosts != nil {
		p.DistanceOptions = append(p.DistanceOptions, distance.WithEditCosts(distance.EditCosts(*c.EditCosts)))
	}
	// Resolve once here so bad distance options fail before any data is read.
	if kind != distance.KindHMM {
		if _, err := distance.New(kind, p.DistanceOptions...); err != nil {
			return sweep.Plan{}, err
		}
	}

	return p, nil
}

// Format returns the output format: output_format when set, otherwise
// derived from the cluster_outpath extension.
func (c Config) Format() (results.Format, error) {
	if c.OutputFormat == "" {
		return results.FormatFor(c.ClusterOutPath), nil
	}

	return results.ParseFormat(c.OutputFormat)
}
