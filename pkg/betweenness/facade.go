package betweenness

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// allSources returns every node id in g, for exact (non-sampled) runs.
func allSources(g graphapi.Graph) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}

// NodeUndirected returns exact node betweenness over g, halving each node's
// accumulated dependency as an undirected interpretation requires.
func NodeUndirected(g graphapi.Graph) graphapi.NodeScores {
	scores, _ := Run(g, allSources(g), true, false, false)
	return scores
}

// NodeDirected returns exact node betweenness over g without halving.
func NodeDirected(g graphapi.Graph) graphapi.NodeScores {
	scores, _ := Run(g, allSources(g), true, false, true)
	return scores
}

// EdgeUndirected returns exact edge betweenness over g, with edges
// canonicalized to (min(u,v), max(u,v)).
func EdgeUndirected(g graphapi.Graph) graphapi.EdgeScores {
	_, scores := Run(g, allSources(g), false, true, false)
	return scores
}

// EdgeDirected returns exact edge betweenness over g, keyed by (u,v) as
// observed.
func EdgeDirected(g graphapi.Graph) graphapi.EdgeScores {
	_, scores := Run(g, allSources(g), false, true, true)
	return scores
}

// NodeAndEdgeUndirected computes both in one pass, the cheapest way to get
// both when a caller needs them together.
func NodeAndEdgeUndirected(g graphapi.Graph) (graphapi.NodeScores, graphapi.EdgeScores) {
	return Run(g, allSources(g), true, true, false)
}

// NodeAndEdgeDirected computes both in one pass for a directed graph.
func NodeAndEdgeDirected(g graphapi.Graph) (graphapi.NodeScores, graphapi.EdgeScores) {
	return Run(g, allSources(g), true, true, true)
}
