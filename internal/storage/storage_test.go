package storage

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bogodb/ringopt/internal/models"
	"github.com/bogodb/ringopt/internal/parser"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGraph(t *testing.T) {
	t.Run("loads valid file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "graph.json", `{"0": {"1": 5}, "1": {}}`)

		graph, err := LoadGraph(zap.NewNop(), path)

		require.NoError(t, err)
		assert.Len(t, graph, 2)
		assert.Equal(t, 5.0, graph["0"]["1"])
	})

	t.Run("missing file is a not-found error and is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		path := filepath.Join(t.TempDir(), "nope.json")

		_, err := LoadGraph(zap.New(core), path)

		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, 1, logs.FilterMessage("graph file not found").Len())
	})

	t.Run("malformed file keeps the syntax error", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		path := writeFile(t, t.TempDir(), "graph.json", `{"0": {`)

		_, err := LoadGraph(zap.New(core), path)

		require.Error(t, err)
		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, 1, logs.FilterMessage("could not parse graph file").Len())
	})
}

func TestLoadResults(t *testing.T) {
	t.Run("loads valid file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "results.json", `{"detailed_results": [{"target": 4}, {"target": 2}]}`)

		results, err := LoadResults(zap.NewNop(), path)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 2}, results.Targets())
	})

	t.Run("missing file", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)

		_, err := LoadResults(zap.New(core), filepath.Join(t.TempDir(), "missing.json"))

		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, 1, logs.FilterMessage("results file not found").Len())
	})

	t.Run("missing detailed_results", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "results.json", `{}`)

		_, err := LoadResults(zap.NewNop(), path)

		assert.ErrorIs(t, err, parser.ErrMissingDetailedResults)
	})
}

func TestSaveGraph(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "candidate_submission", "nested", "optimized_graph.json")
		graph := models.Graph{"0": {"1": 10}, "1": {"0": 1}}

		require.NoError(t, SaveGraph(zap.NewNop(), graph, path))

		loaded, err := LoadGraph(zap.NewNop(), path)
		require.NoError(t, err)
		assert.Equal(t, graph, loaded)
	})

	t.Run("writes indented json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, SaveGraph(zap.NewNop(), models.Graph{"0": {"1": 10}}, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"0\": {\n    \"1\": 10\n  }\n}\n", string(data))
	})

	t.Run("unwritable destination", func(t *testing.T) {
		dir := t.TempDir()
		blocker := writeFile(t, dir, "file", "x")
		core, logs := observer.New(zapcore.ErrorLevel)

		err := SaveGraph(zap.New(core), models.Graph{}, filepath.Join(blocker, "out.json"))

		require.Error(t, err)
		assert.Equal(t, 1, logs.Len())
	})
}

func TestEncode(t *testing.T) {
	t.Run("identical graphs give identical bytes", func(t *testing.T) {
		a := models.NewGraph(30)
		b := models.NewGraph(30)
		for i := 0; i < 30; i++ {
			a.SetEdge(i, (i+1)%30, 10)
			b.SetEdge(i, (i+1)%30, 10)
		}

		da, err := Encode(a)
		require.NoError(t, err)
		db, err := Encode(b)
		require.NoError(t, err)

		assert.Equal(t, da, db)
	})

	t.Run("nil graph encodes as empty object", func(t *testing.T) {
		data, err := Encode(nil)

		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})
}
