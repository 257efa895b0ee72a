// Package degree implements the degree-family centrality measures: plain
// node degree centrality and group degree centrality over the open
// neighborhood of a node set.
package degree

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// Centrality returns degree(nid)/(N-1), the fraction of all other nodes
// that nid is directly connected to. For a directed graph, degree is
// OutDegree+InDegree. Returns 0 when N<=1.
func Centrality(g graphapi.Graph, nid int64) float64 {
	n := g.NodeCount()
	if n <= 1 {
		return 0
	}
	node, ok := g.NodeByID(nid)
	if !ok {
		return 0
	}
	deg := node.OutDegree() + node.InDegree()
	if !g.Directed() {
		// Undirected adapters mirror OutNeighbor/InNeighbor, so halve to
		// avoid double-counting each edge.
		deg = node.OutDegree()
	}
	return float64(deg) / float64(n-1)
}

// GroupCentrality returns |N(group) \ group| / (N - |group|): the fraction
// of nodes outside group that have at least one neighbor inside group,
// where N(group) is the open neighborhood (union of neighbors of every
// member, excluding members themselves).
func GroupCentrality(g graphapi.Graph, group []int64) float64 {
	n := g.NodeCount()
	inGroup := make(map[int64]bool, len(group))
	for _, id := range group {
		inGroup[id] = true
	}
	if n-len(inGroup) <= 0 {
		return 0
	}

	reached := make(map[int64]bool)
	for _, id := range group {
		node, ok := g.NodeByID(id)
		if !ok {
			continue
		}
		for i := 0; i < node.OutDegree(); i++ {
			w := node.OutNeighbor(i)
			if !inGroup[w] {
				reached[w] = true
			}
		}
		for i := 0; i < node.InDegree(); i++ {
			w := node.InNeighbor(i)
			if !inGroup[w] {
				reached[w] = true
			}
		}
	}

	return float64(len(reached)) / float64(n-len(inGroup))
}
