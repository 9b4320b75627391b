// Package validator checks a graph against the edge budgets, node count and
// weight range. Violations are reported as values, never as errors.
package validator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/models"
)

const (
	MinWeightExclusive = 0.0
	MaxWeight          = 10.0
)

type Rule string

const (
	RuleTotalEdges  Rule = "total_edges"
	RuleNodeEdges   Rule = "node_edges"
	RuleNodeCount   Rule = "node_count"
	RuleWeightRange Rule = "weight_range"
)

// Violation describes the first failed check.
type Violation struct {
	Rule    Rule    `json:"rule"`
	Message string  `json:"message"`
	Node    string  `json:"node,omitempty"`
	Target  string  `json:"target,omitempty"`
	Actual  float64 `json:"actual"`
	Limit   float64 `json:"limit"`
}

// Check runs the checks in order (total edges, per-node edges, node count,
// weights) and returns the first violation, or nil when the graph passes.
func Check(graph models.Graph, limits config.Limits) *Violation {
	total := graph.EdgeCount()
	if total > limits.MaxTotalEdges {
		return &Violation{
			Rule:    RuleTotalEdges,
			Message: fmt.Sprintf("graph has %d edges, exceeding limit of %d", total, limits.MaxTotalEdges),
			Actual:  float64(total),
			Limit:   float64(limits.MaxTotalEdges),
		}
	}

	nodes := graph.SortedNodes()

	for _, node := range nodes {
		if n := len(graph[node]); n > limits.MaxEdgesPerNode {
			return &Violation{
				Rule:    RuleNodeEdges,
				Message: fmt.Sprintf("node %s has %d edges, exceeding limit of %d", node, n, limits.MaxEdgesPerNode),
				Node:    node,
				Actual:  float64(n),
				Limit:   float64(limits.MaxEdgesPerNode),
			}
		}
	}

	if len(graph) != limits.NumNodes {
		return &Violation{
			Rule:    RuleNodeCount,
			Message: fmt.Sprintf("graph has %d nodes, should have %d", len(graph), limits.NumNodes),
			Actual:  float64(len(graph)),
			Limit:   float64(limits.NumNodes),
		}
	}

	for _, node := range nodes {
		edges := graph[node]
		for _, target := range edges.SortedTargets() {
			w := edges[target]
			if w <= MinWeightExclusive || w > MaxWeight {
				return &Violation{
					Rule:    RuleWeightRange,
					Message: fmt.Sprintf("edge %s -> %s has invalid weight %g", node, target, w),
					Node:    node,
					Target:  target,
					Actual:  w,
					Limit:   MaxWeight,
				}
			}
		}
	}

	return nil
}

// VerifyConstraints reports whether graph meets every constraint, logging
// the first violation as a warning.
func VerifyConstraints(logger *zap.Logger, graph models.Graph, limits config.Limits) bool {
	v := Check(graph, limits)
	if v == nil {
		return true
	}
	logger.Warn(v.Message,
		zap.String("rule", string(v.Rule)),
		zap.Float64("actual", v.Actual),
		zap.Float64("limit", v.Limit),
	)
	return false
}
