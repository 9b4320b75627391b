package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ringopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 500, cfg.Limits.NumNodes)
	assert.Equal(t, 3, cfg.Limits.MaxEdgesPerNode)
	assert.Equal(t, 750, cfg.Limits.MaxTotalEdges)
	assert.Equal(t, Layout{InnerRingSize: 10, MediumRingSize: 50, SkipDistance: 3}, cfg.Layout)
	assert.Equal(t, "candidate_submission/optimized_graph.json", cfg.Paths.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := writeConfig(t, `
limits:
  num_nodes: 1000
  max_total_edges: 2000
paths:
  output: out/graph.json
log:
  level: debug
  format: json
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.Limits.NumNodes)
		assert.Equal(t, 2000, cfg.Limits.MaxTotalEdges)
		assert.Equal(t, DefaultMaxEdgesPerNode, cfg.Limits.MaxEdgesPerNode)
		assert.Equal(t, "out/graph.json", cfg.Paths.Output)
		assert.Equal(t, "data/initial_graph.json", cfg.Paths.Graph)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "limits: [unclosed")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, `
limits:
  num_nodes: 0
layout:
  inner_ring_size: 10
  medium_ring_size: 5
log:
  level: loud
`)

		_, err := Load(path)

		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "configuration validation failed")
		assert.Contains(t, msg, "limits.num_nodes must be at least 1")
		assert.Contains(t, msg, "layout.medium_ring_size must be greater than InnerRingSize")
		assert.Contains(t, msg, "log.level must be one of: debug info warn error")
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing output path", func(t *testing.T) {
		cfg := Default()
		cfg.Paths.Output = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paths.output is required")
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := Default()
		cfg.Log.Format = "xml"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format must be one of: json console")
	})
}
