// Package builder generates the ring-architecture graph.
//
// The layout has three tiers over node indices:
//
//	inner ring   [0, inner)       chain i -> i+1, last node -> first medium node
//	medium ring  [inner, medium)  next node, skip ahead, backup to node 0
//	overflow     [medium, n)      single edge to node 0
//
// Ring boundaries come from config.Layout and do not depend on the query
// analysis; the analysis is only logged.
package builder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/analyzer"
	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/models"
	"github.com/bogodb/ringopt/internal/validator"
)

const (
	PrimaryWeight            = 10.0
	SecondaryWeight          = 8.0
	BackupWeight             = 1.0
	MediumRingLoopbackWeight = 9.0
)

// HubNode is the target of overflow redirects and medium-ring backups.
const HubNode = 0

var ErrGraphTooSmall = errors.New("node count is smaller than the medium ring boundary")

// OptimizeGraph builds a new graph for limits.NumNodes nodes. The initial
// graph is only inspected for logging; none of its edges are reused.
//
// A graph that fails validation is still returned with a nil error; the
// violation is logged as a warning.
func OptimizeGraph(logger *zap.Logger, initial models.Graph, results *models.Results, limits config.Limits, layout config.Layout) (models.Graph, error) {
	logger.Info("starting graph optimization with ring architecture",
		zap.Int("initial_nodes", len(initial)),
		zap.Int("initial_edges", initial.EdgeCount()),
	)

	if limits.NumNodes < layout.MediumRingSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrGraphTooSmall, limits.NumNodes, layout.MediumRingSize)
	}

	if _, err := analyzer.AnalyzeQueryPatterns(logger, results); err != nil {
		return nil, fmt.Errorf("analyze query patterns: %w", err)
	}

	graph := Build(logger, limits, layout)

	stats := graph.Stats(limits.MaxTotalEdges, limits.MaxEdgesPerNode)
	logger.Info("optimization complete",
		zap.Int("final_edges", stats.TotalEdges),
		zap.Int("edge_limit", limits.MaxTotalEdges),
		zap.String("budget_utilization", fmt.Sprintf("%.1f%%", stats.BudgetUsed)),
	)

	if !validator.VerifyConstraints(logger, graph, limits) {
		logger.Warn("graph does not meet constraints; it will be rejected on evaluation")
	}

	return graph, nil
}

// Build lays out the three tiers. It performs no validation.
func Build(logger *zap.Logger, limits config.Limits, layout config.Layout) models.Graph {
	inner, medium, n := layout.InnerRingSize, layout.MediumRingSize, limits.NumNodes
	graph := models.NewGraph(n)

	logger.Debug("building tiers",
		zap.String("inner_ring", fmt.Sprintf("0-%d", inner-1)),
		zap.String("medium_ring", fmt.Sprintf("%d-%d", inner, medium-1)),
		zap.String("overflow", fmt.Sprintf("%d-%d", medium, n-1)),
	)

	buildInnerRing(graph, inner)
	buildMediumRing(graph, inner, medium, layout.SkipDistance, limits.MaxEdgesPerNode)
	redirected := buildOverflow(graph, medium, n)

	logger.Info("redirected unused nodes", zap.Int("count", redirected), zap.Int("target", HubNode))
	return graph
}

func buildInnerRing(graph models.Graph, inner int) {
	for i := 0; i < inner; i++ {
		if i < inner-1 {
			graph.SetEdge(i, i+1, PrimaryWeight)
		} else {
			graph.SetEdge(i, inner, SecondaryWeight)
		}
	}
}

// buildMediumRing gives each medium node up to three edges while the per-node
// budget allows. The last node's loopback and its backup both target the hub,
// so the backup weight replaces the loopback weight when both are added.
func buildMediumRing(graph models.Graph, inner, medium, skip, maxEdgesPerNode int) {
	span := medium - inner
	for i := inner; i < medium; i++ {
		added := 0

		if i < medium-1 {
			graph.SetEdge(i, i+1, PrimaryWeight)
		} else {
			graph.SetEdge(i, HubNode, MediumRingLoopbackWeight)
		}
		added++

		if added < maxEdgesPerNode {
			target := inner + (i-inner+skip)%span
			if target != i {
				graph.SetEdge(i, target, SecondaryWeight)
				added++
			}
		}

		if added < maxEdgesPerNode {
			graph.SetEdge(i, HubNode, BackupWeight)
			added++
		}
	}
}

func buildOverflow(graph models.Graph, medium, n int) int {
	for i := medium; i < n; i++ {
		graph.SetEdge(i, HubNode, PrimaryWeight)
	}
	return n - medium
}
