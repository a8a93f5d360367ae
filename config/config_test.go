// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minfill/config"
	"github.com/katalvlaran/minfill/decomposer"
	"github.com/katalvlaran/minfill/logging"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minfill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	g, err := cfg.GrowthPolicy()
	require.NoError(t, err)
	assert.Equal(t, decomposer.GrowthAdditive, g)
	assert.Equal(t, 8, cfg.Solver.MaxCycleLength)
	assert.Equal(t, -1, cfg.Solver.UpperBound)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
solver:
  growth: doubling
  max_cycle_length: 6
  triangulation_bound: true
logging:
  format: json
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "doubling", cfg.Solver.Growth)
	assert.Equal(t, 6, cfg.Solver.MaxCycleLength)
	assert.True(t, cfg.Solver.TriangulationBound)
	assert.Equal(t, -1, cfg.Solver.UpperBound, "unset keys keep defaults")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Len(t, cfg.SolverOptions(logging.NoopLogger()), 3)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadConfig(writeFile(t, "solver: [unclosed"))
	require.Error(t, err)

	_, err = config.LoadConfig(writeFile(t, "solver:\n  growth: tripling\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadFromEnvOrFile(t *testing.T) {
	path := writeFile(t, "solver:\n  max_cycle_length: 6\n")
	t.Setenv(config.EnvGrowth, "doubling")
	t.Setenv(config.EnvMaxCycleLength, "10")
	t.Setenv(config.EnvUpperBound, "7")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")

	cfg, err := config.LoadFromEnvOrFile(path)
	require.NoError(t, err)
	assert.Equal(t, "doubling", cfg.Solver.Growth)
	assert.Equal(t, 10, cfg.Solver.MaxCycleLength, "environment wins over file")
	assert.Equal(t, 7, cfg.Solver.UpperBound)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Len(t, cfg.SolverOptions(logging.NoopLogger()), 3)
}

func TestLoadFromEnvOrFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFromEnvOrFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg, err = config.LoadFromEnvOrFile("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFromEnvOrFile_BadEnv(t *testing.T) {
	t.Setenv(config.EnvMaxCycleLength, "eight")
	_, err := config.LoadFromEnvOrFile("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*config.Config){
		"growth":      func(c *config.Config) { c.Solver.Growth = "linear" },
		"cycle":       func(c *config.Config) { c.Solver.MaxCycleLength = 3 },
		"upper bound": func(c *config.Config) { c.Solver.UpperBound = -2 },
		"level":       func(c *config.Config) { c.Logging.Level = "loud" },
		"format":      func(c *config.Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "info"
	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	require.NoError(t, err)
	log.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
