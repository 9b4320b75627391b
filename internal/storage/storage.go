// Package storage reads the pipeline's input artifacts from disk and writes
// the optimized graph back out.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/models"
	"github.com/bogodb/ringopt/internal/parser"
)

// LoadGraph reads and decodes the graph file at path. Not-found and decode
// errors are logged and returned to the caller.
func LoadGraph(logger *zap.Logger, path string) (models.Graph, error) {
	data, err := readFile(logger, "graph", path)
	if err != nil {
		return nil, err
	}

	graph, err := parser.ParseGraph(data)
	if err != nil {
		logger.Error("could not parse graph file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}

	logger.Debug("graph loaded",
		zap.String("path", path),
		zap.Int("nodes", len(graph)),
		zap.Int("edges", graph.EdgeCount()),
	)
	return graph, nil
}

// LoadResults reads and decodes the query results file at path.
func LoadResults(logger *zap.Logger, path string) (*models.Results, error) {
	data, err := readFile(logger, "results", path)
	if err != nil {
		return nil, err
	}

	results, err := parser.ParseResults(data)
	if err != nil {
		logger.Error("could not parse results file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("load results %s: %w", path, err)
	}

	logger.Debug("results loaded", zap.String("path", path), zap.Int("queries", len(results.DetailedResults)))
	return results, nil
}

// SaveGraph writes graph to path as indented JSON, creating the parent
// directory when needed. Object keys are emitted in sorted order so equal
// graphs always produce identical bytes.
func SaveGraph(logger *zap.Logger, graph models.Graph, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("could not create output directory", zap.String("dir", dir), zap.Error(err))
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	data, err := Encode(graph)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("could not save graph", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("save graph %s: %w", path, err)
	}
	return nil
}

// Encode renders graph in the on-disk format.
func Encode(graph models.Graph) ([]byte, error) {
	if graph == nil {
		graph = models.Graph{}
	}
	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph: %w", err)
	}
	return append(data, '\n'), nil
}

func readFile(logger *zap.Logger, kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error(kind+" file not found", zap.String("path", path))
		} else {
			logger.Error("could not read "+kind+" file", zap.String("path", path), zap.Error(err))
		}
		return nil, fmt.Errorf("load %s %s: %w", kind, path, err)
	}
	return data, nil
}
