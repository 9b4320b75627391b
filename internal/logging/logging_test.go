package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("info", "json", &buf)
		require.NoError(t, err)

		logger.Info("graph loaded", zap.Int("nodes", 500))
		require.NoError(t, logger.Sync())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "graph loaded", entry["msg"])
		assert.EqualValues(t, 500, entry["nodes"])
		assert.Contains(t, entry, "time")
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("debug", "console", &buf)
		require.NoError(t, err)

		logger.Warn("graph does not meet constraints")

		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "graph does not meet constraints")
	})

	t.Run("level filters lower entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("warn", "json", &buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Debug("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("loud", "json", &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New("info", "xml", &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})
}
