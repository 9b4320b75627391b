// Package parser provides utilities for decoding the pipeline's JSON inputs.
// It handles shape validation and conversion into the models types.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/bogodb/ringopt/internal/models"
)

func ParseResults(data []byte) (*models.Results, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("results data: %w", ErrEmptyInput)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	if _, ok := raw["detailed_results"]; !ok {
		return nil, fmt.Errorf("invalid results: %w", ErrMissingDetailedResults)
	}

	var results models.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}

	for i, q := range results.DetailedResults {
		if q.Target == nil {
			return nil, fmt.Errorf("invalid results: entry %d: %w", i, ErrMissingTarget)
		}
	}

	return &results, nil
}
