package pagerank

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// WeightFromAttr builds a Weight callback that looks up the named edge
// attribute on wg. A missing edge or attribute surfaces as an error from
// the callback, which RunWeighted propagates to its caller rather than
// silently treating it as a zero weight.
func WeightFromAttr(wg graphapi.WeightedGraph, name string) Weight {
	return func(u, v int64) (float64, error) {
		return wg.EdgeAttr(u, v, name)
	}
}

// RunWeighted computes weighted PageRank: outMass(u) is the sum of weight
// over every out-edge of u, rather than a plain out-degree count. A nil or
// empty graph is rejected (unlike plain Run, which returns an empty
// result), per the weighted variant's stricter input contract.
func RunWeighted(g graphapi.WeightedGraph, weight Weight, cfg Config) (Result, error) {
	if g == nil || g.NodeCount() == 0 {
		return Result{}, graphapi.ErrEmptyGraph
	}
	return run(g, cfg, weight)
}
