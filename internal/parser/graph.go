// Package parser provides utilities for decoding the pipeline's JSON inputs.
// It handles shape validation and conversion into the models types.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/bogodb/ringopt/internal/models"
)

var (
	ErrEmptyInput             = errors.New("empty input")
	ErrInvalidNodeID          = errors.New("invalid node id")
	ErrMissingDetailedResults = errors.New("missing detailed_results field")
	ErrMissingTarget          = errors.New("missing target field")
)

func ParseGraph(data []byte) (models.Graph, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("graph data: %w", ErrEmptyInput)
	}

	var graph models.Graph
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph: %w", err)
	}
	if graph == nil {
		return nil, fmt.Errorf("invalid graph: top-level value must be an object")
	}

	for node, edges := range graph {
		if !isNodeID(node) {
			return nil, fmt.Errorf("invalid graph: node %q: %w", node, ErrInvalidNodeID)
		}
		if edges == nil {
			graph[node] = models.Edges{}
			continue
		}
		for target := range edges {
			if !isNodeID(target) {
				return nil, fmt.Errorf("invalid graph: edge %s -> %q: %w", node, target, ErrInvalidNodeID)
			}
		}
	}

	return graph, nil
}

func isNodeID(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && strconv.Itoa(n) == s
}
