package pagerank

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// MultiTypeResult shards the flat rank vector back into one
// graphapi.NodeScores per node type, matching the reference's two-level
// ranks[typeId][localId] presentation.
type MultiTypeResult struct {
	ScoresByType []graphapi.NodeScores
	Iterations   int
	Converged    bool
}

// RunMultiType computes PageRank over a TypedGraph: internally it flattens
// the (typeId, localId) cells a node occupies into the same dense index
// pagerank.Run uses, runs the identical pull/redistribute iteration, and
// unflattens the result into one NodeScores map per type on return. The
// dangling check (outMass(u) == 0) is performed on the flattened outMass
// vector, which is equivalent to checking it per (typeId, localId) cell
// since the flattening is a bijection.
func RunMultiType(g graphapi.TypedGraph, cfg Config) MultiTypeResult {
	result := Run(g, cfg)

	byType := make([]graphapi.NodeScores, g.MaxTypeID()+1)
	for i := range byType {
		byType[i] = make(graphapi.NodeScores)
	}
	for id, score := range result.Scores {
		t := g.TypeOf(id)
		byType[t][id] = score
	}

	return MultiTypeResult{
		ScoresByType: byType,
		Iterations:   result.Iterations,
		Converged:    result.Converged,
	}
}
