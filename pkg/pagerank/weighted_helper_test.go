package pagerank_test

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// uniformWeightedGraph adapts any graphapi.Graph into a WeightedGraph whose
// EdgeAttr always returns 1, for exercising RunWeighted against a plain
// graph as a control case.
type uniformWeightedGraph struct {
	graphapi.Graph
}

func (uniformWeightedGraph) EdgeAttr(_, _ int64, _ string) (float64, error) {
	return 1, nil
}
