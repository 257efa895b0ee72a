package betweenness

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// adjacency is the dense-index outgoing neighbor list a single-source
// Brandes traversal walks. It is built once per call and shared read-only
// across every source in sources, including concurrent ones.
type adjacency struct {
	idx      graphapi.Index
	outgoing [][]int
}

func buildAdjacency(g graphapi.Graph) adjacency {
	idx := graphapi.BuildIndex(g)
	n := idx.Len()
	outgoing := make([][]int, n)
	for i, id := range idx.IdxToID {
		node, ok := g.NodeByID(id)
		if !ok {
			continue
		}
		neighbors := make([]int, 0, node.OutDegree())
		for j := 0; j < node.OutDegree(); j++ {
			neighbors = append(neighbors, idx.Of(node.OutNeighbor(j)))
		}
		outgoing[i] = neighbors
	}
	return adjacency{idx: idx, outgoing: outgoing}
}
