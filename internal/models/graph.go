// Package models defines the core data structures shared by the pipeline.
// It includes the adjacency graph, the query result log and derived stats.
package models

import (
	"sort"
	"strconv"
)

// Edges maps a stringified target node index to the edge weight.
type Edges map[string]float64

// Graph maps a stringified node index to its outgoing edges.
type Graph map[string]Edges

type Stats struct {
	TotalNodes      int     `json:"total_nodes"`
	TotalEdges      int     `json:"total_edges"`
	MaxNodeEdges    int     `json:"max_node_edges"`
	EmptyNodes      int     `json:"empty_nodes"`
	MaxTotalEdges   int     `json:"max_total_edges,omitempty"`
	MaxEdgesPerNode int     `json:"max_edges_per_node,omitempty"`
	BudgetUsed      float64 `json:"budget_used_pct,omitempty"`
}

// NewGraph returns a graph with an empty edge set for every node in [0, n).
func NewGraph(n int) Graph {
	g := make(Graph, n)
	for i := 0; i < n; i++ {
		g[NodeID(i)] = Edges{}
	}
	return g
}

func NodeID(i int) string {
	return strconv.Itoa(i)
}

// SetEdge assigns the weight of from->to. A second call for the same pair
// replaces the earlier weight.
func (g Graph) SetEdge(from, to int, weight float64) {
	src := NodeID(from)
	if g[src] == nil {
		g[src] = Edges{}
	}
	g[src][NodeID(to)] = weight
}

func (g Graph) Weight(from, to int) (float64, bool) {
	w, ok := g[NodeID(from)][NodeID(to)]
	return w, ok
}

func (g Graph) EdgeCount() int {
	total := 0
	for _, edges := range g {
		total += len(edges)
	}
	return total
}

func (g Graph) MaxOutDegree() int {
	maxEdges := 0
	for _, edges := range g {
		if len(edges) > maxEdges {
			maxEdges = len(edges)
		}
	}
	return maxEdges
}

// SortedNodes returns the node keys in numeric order.
func (g Graph) SortedNodes() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sortIDs(keys)
	return keys
}

// SortedTargets returns the target keys in numeric order.
func (e Edges) SortedTargets() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sortIDs(keys)
	return keys
}

// sortIDs orders numeric ids by value. Non-numeric ids sort after them,
// lexically.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

// Stats summarises the graph against the given edge budgets. Zero budgets
// leave the corresponding fields unset.
func (g Graph) Stats(maxTotalEdges, maxEdgesPerNode int) *Stats {
	stats := &Stats{
		TotalNodes:      len(g),
		TotalEdges:      g.EdgeCount(),
		MaxNodeEdges:    g.MaxOutDegree(),
		MaxTotalEdges:   maxTotalEdges,
		MaxEdgesPerNode: maxEdgesPerNode,
	}
	for _, edges := range g {
		if len(edges) == 0 {
			stats.EmptyNodes++
		}
	}
	if maxTotalEdges > 0 {
		stats.BudgetUsed = float64(stats.TotalEdges) / float64(maxTotalEdges) * 100
	}
	return stats
}
