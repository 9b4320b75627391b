// Package models defines the core data structures shared by the pipeline.
// It includes the adjacency graph, the query result log and derived stats.
package models

// QueryResult is one entry of the historical workload log. Only the target
// is consumed; other fields in the log are ignored on decode.
type QueryResult struct {
	Target *int `json:"target"`
}

type Results struct {
	DetailedResults []QueryResult `json:"detailed_results"`
}

// Targets returns the target of every query in log order. Entries without
// a target are skipped; ParseResults rejects them up front.
func (r *Results) Targets() []int {
	if r == nil {
		return nil
	}
	targets := make([]int, 0, len(r.DetailedResults))
	for _, q := range r.DetailedResults {
		if q.Target != nil {
			targets = append(targets, *q.Target)
		}
	}
	return targets
}

// Frequency is a (target, count) pair of the query ranking.
type Frequency struct {
	Target int `json:"target"`
	Count  int `json:"count"`
}
