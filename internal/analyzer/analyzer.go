// Package analyzer derives query frequency statistics from a results log.
//
// The analysis is diagnostic: the builder logs it but does not use it to
// size the rings.
package analyzer

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/models"
)

// HighValueThreshold is the minimum query count for a high-value target.
const HighValueThreshold = 2

// topN is how many ranking entries are logged.
const topN = 5

var ErrNoQueries = errors.New("results contain no queries")

type Analysis struct {
	TotalQueries int
	Frequencies  map[int]int
	// Ranking is ordered by count descending; equal counts keep the order
	// in which the target first appeared in the log.
	Ranking    []models.Frequency
	HighValue  []int
	MaxQueried int
}

// AnalyzeQueryPatterns counts how often each target was queried.
func AnalyzeQueryPatterns(logger *zap.Logger, results *models.Results) (*Analysis, error) {
	logger.Info("analyzing query patterns")

	targets := results.Targets()
	if len(targets) == 0 {
		return nil, ErrNoQueries
	}

	freq := make(map[int]int)
	var order []int
	maxQueried := targets[0]
	for _, t := range targets {
		if _, seen := freq[t]; !seen {
			order = append(order, t)
		}
		freq[t]++
		if t > maxQueried {
			maxQueried = t
		}
	}

	ranking := make([]models.Frequency, len(order))
	for i, t := range order {
		ranking[i] = models.Frequency{Target: t, Count: freq[t]}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	var highValue []int
	for _, f := range ranking {
		if f.Count >= HighValueThreshold {
			highValue = append(highValue, f.Target)
		}
	}

	a := &Analysis{
		TotalQueries: len(targets),
		Frequencies:  freq,
		Ranking:      ranking,
		HighValue:    highValue,
		MaxQueried:   maxQueried,
	}

	logger.Info("query analysis",
		zap.Int("total_queries", a.TotalQueries),
		zap.Int("unique_targets", len(a.Frequencies)),
		zap.Any("top", a.Ranking[:min(len(a.Ranking), topN)]),
		zap.Int("high_value_targets", len(a.HighValue)),
		zap.Int("max_queried_node", a.MaxQueried),
	)

	return a, nil
}
