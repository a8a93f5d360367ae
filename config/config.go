// SPDX-License-Identifier: MIT

// Package config loads the minfill command configuration from YAML and
// MINFILL_* environment variables and turns it into package options.
//
// Precedence, lowest first: DefaultConfig, the YAML file, the environment.
//
//	solver:
//	  growth: additive        # or doubling
//	  max_cycle_length: 8
//	  upper_bound: -1         # -1: no bound
//	  triangulation_bound: false
//	logging:
//	  level: warn
//	  format: text            # or json
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minfill/decomposer"
	"github.com/katalvlaran/minfill/logging"
	"github.com/katalvlaran/minfill/solver"
)

// Environment variables read by LoadFromEnvOrFile.
const (
	EnvGrowth         = "MINFILL_GROWTH"
	EnvMaxCycleLength = "MINFILL_MAX_CYCLE_LENGTH"
	EnvUpperBound     = "MINFILL_UPPER_BOUND"
	EnvLogLevel       = "MINFILL_LOG_LEVEL"
	EnvLogFormat      = "MINFILL_LOG_FORMAT"
)

// ErrInvalidConfig reports a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete command configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig selects the search strategy.
type SolverConfig struct {
	Growth             string `yaml:"growth"`
	MaxCycleLength     int    `yaml:"max_cycle_length"`
	UpperBound         int    `yaml:"upper_bound"`
	TriangulationBound bool   `yaml:"triangulation_bound"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns additive growth, cycles up to length 8, no upper
// bound and warn-level text logs.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Growth:         decomposer.GrowthAdditive.String(),
			MaxCycleLength: 8,
			UpperBound:     -1,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults and validates
// the result. The file must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnvOrFile starts from the defaults, reads path when it is
// non-empty and exists, applies MINFILL_* overrides and validates.
func LoadFromEnvOrFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.loadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvGrowth); v != "" {
		c.Solver.Growth = v
	}
	if v := os.Getenv(EnvMaxCycleLength); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvMaxCycleLength, v, ErrInvalidConfig)
		}
		c.Solver.MaxCycleLength = i
	}
	if v := os.Getenv(EnvUpperBound); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvUpperBound, v, ErrInvalidConfig)
		}
		c.Solver.UpperBound = i
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.GrowthPolicy(); err != nil {
		return err
	}
	if c.Solver.MaxCycleLength < 4 {
		return fmt.Errorf("config: max_cycle_length %d < 4: %w", c.Solver.MaxCycleLength, ErrInvalidConfig)
	}
	if c.Solver.UpperBound < -1 {
		return fmt.Errorf("config: upper_bound %d < -1: %w", c.Solver.UpperBound, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}

	return nil
}

// GrowthPolicy parses Solver.Growth.
func (c *Config) GrowthPolicy() (decomposer.Growth, error) {
	switch strings.ToLower(c.Solver.Growth) {
	case decomposer.GrowthAdditive.String():
		return decomposer.GrowthAdditive, nil
	case decomposer.GrowthDoubling.String():
		return decomposer.GrowthDoubling, nil
	default:
		return 0, fmt.Errorf("config: growth %q: %w", c.Solver.Growth, ErrInvalidConfig)
	}
}

// Logger builds the configured logger writing to w.
func (c *Config) Logger(w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", ErrInvalidConfig)
	}

	return logging.New(w, c.Logging.Format, level)
}

// SolverOptions translates the configuration into solver options. c must
// be valid.
func (c *Config) SolverOptions(log *logging.Logger) []solver.Option {
	growth, _ := c.GrowthPolicy()
	opts := []solver.Option{
		solver.WithLogger(log),
		solver.WithDecomposerOptions(
			decomposer.WithGrowth(growth),
			decomposer.WithMaxCycleLength(c.Solver.MaxCycleLength),
		),
	}
	if c.Solver.UpperBound >= 0 {
		opts = append(opts, solver.WithUpperBound(c.Solver.UpperBound))
	}
	if c.Solver.TriangulationBound {
		opts = append(opts, solver.WithTriangulationBound())
	}

	return opts
}
