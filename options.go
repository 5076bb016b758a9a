package tessellate

import (
	"math"

	"github.com/osuushi/tessellate/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the engine. The zero value is not useful; start
// from DefaultConfig (or use the With* options, which do).
type Config struct {
	// Tolerance for treating two y values as equal when ordering vertices, and
	// for rejecting zero area rings.
	Epsilon float64 `yaml:"epsilon"`
	// Merge output vertices with equal coordinates. When false, the mesh is a
	// triangle soup with three vertices per triangle.
	DedupeVertices bool `yaml:"dedupe_vertices"`
	// When positive, vertices closer than this are merged instead of requiring
	// exact equality. Only used when DedupeVertices is set.
	DedupeTolerance float64 `yaml:"dedupe_tolerance"`
	// Check that no edges touch or cross before tessellating.
	Validate bool `yaml:"validate"`
	// Number of goroutines used by TessellateAll. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

type Option func(*Config)

func DefaultConfig() Config {
	return Config{
		Epsilon:        internal.DefaultEpsilon,
		DedupeVertices: true,
	}
}

// NewConfig applies options on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// ParseConfig reads a YAML document. Fields that are missing keep their
// default values.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := config.Check(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Check() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return errors.Errorf("invalid epsilon: %v", c.Epsilon)
	}
	if math.IsNaN(c.DedupeTolerance) || math.IsInf(c.DedupeTolerance, 0) || c.DedupeTolerance < 0 {
		return errors.Errorf("invalid dedupe tolerance: %v", c.DedupeTolerance)
	}
	if c.Workers < 0 {
		return errors.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

func (c Config) engineOptions() internal.Options {
	return internal.Options{
		Epsilon: c.Epsilon,
		Mesh: internal.MeshOptions{
			Dedupe:    c.DedupeVertices,
			Tolerance: c.DedupeTolerance,
		},
		Validate: c.Validate,
	}
}

// Replace the whole configuration, e.g. with one from ParseConfig. Options
// given after this one still apply on top.
func WithConfig(config Config) Option {
	return func(c *Config) {
		*c = config
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(c *Config) {
		c.Epsilon = epsilon
	}
}

func WithDedupe(dedupe bool) Option {
	return func(c *Config) {
		c.DedupeVertices = dedupe
	}
}

// Merge vertices within the tolerance. Implies WithDedupe(true).
func WithDedupeTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.DedupeVertices = true
		c.DedupeTolerance = tolerance
	}
}

func WithValidation(validate bool) Option {
	return func(c *Config) {
		c.Validate = validate
	}
}

func WithWorkers(workers int) Option {
	return func(c *Config) {
		c.Workers = workers
	}
}
