// Package config holds the limits and paths the generator runs with.
//
// Values come from built-in defaults, optionally overlaid by a YAML file.
// Command-line flags are applied on top by the caller, after which Validate
// must be called again.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNumNodes        = 500
	DefaultMaxEdgesPerNode = 3
	DefaultMaxTotalEdges   = DefaultNumNodes * 3 / 2

	DefaultInnerRingSize  = 10
	DefaultMediumRingSize = 50
	DefaultSkipDistance   = 3
)

type Config struct {
	Limits Limits `yaml:"limits"`
	Layout Layout `yaml:"layout"`
	Paths  Paths  `yaml:"paths"`
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

// Limits bound the generated graph. Both the builder and the validator
// treat them as fixed inputs.
type Limits struct {
	NumNodes        int `yaml:"num_nodes" validate:"min=1"`
	MaxEdgesPerNode int `yaml:"max_edges_per_node" validate:"min=1"`
	MaxTotalEdges   int `yaml:"max_total_edges" validate:"min=1"`
}

// Layout sets the ring boundaries. Nodes [0, InnerRingSize) form the inner
// ring, [InnerRingSize, MediumRingSize) the medium ring, the rest overflow.
type Layout struct {
	InnerRingSize  int `yaml:"inner_ring_size" validate:"min=1"`
	MediumRingSize int `yaml:"medium_ring_size" validate:"gtfield=InnerRingSize"`
	SkipDistance   int `yaml:"skip_distance" validate:"min=1"`
}

type Paths struct {
	Graph   string `yaml:"graph" validate:"required"`
	Results string `yaml:"results" validate:"required"`
	Output  string `yaml:"output" validate:"required"`
}

type Server struct {
	Addr string `yaml:"addr" validate:"required"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func DefaultLimits() Limits {
	return Limits{
		NumNodes:        DefaultNumNodes,
		MaxEdgesPerNode: DefaultMaxEdgesPerNode,
		MaxTotalEdges:   DefaultMaxTotalEdges,
	}
}

func DefaultLayout() Layout {
	return Layout{
		InnerRingSize:  DefaultInnerRingSize,
		MediumRingSize: DefaultMediumRingSize,
		SkipDistance:   DefaultSkipDistance,
	}
}

func Default() *Config {
	return &Config{
		Limits: DefaultLimits(),
		Layout: DefaultLayout(),
		Paths: Paths{
			Graph:   "data/initial_graph.json",
			Results: "data/initial_results.json",
			Output:  "candidate_submission/optimized_graph.json",
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info", Format: "console"},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
