// Package groupcloseness implements group closeness centrality and a
// greedy maximum-coverage group selector built on top of it.
package groupcloseness

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// distancesFromGroup runs a multi-source BFS seeded at every node in group,
// walking out-edges, and returns the shortest distance from the group to
// every node it reaches. Group members map to distance 0.
func distancesFromGroup(g graphapi.Graph, group []int64) map[int64]int {
	dist := make(map[int64]int, len(group))
	queue := make([]int64, 0, len(group))
	for _, id := range group {
		if _, seen := dist[id]; seen {
			continue
		}
		dist[id] = 0
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		node, ok := g.NodeByID(v)
		if !ok {
			continue
		}
		d := dist[v]
		for i := 0; i < node.OutDegree(); i++ {
			w := node.OutNeighbor(i)
			if _, seen := dist[w]; seen {
				continue
			}
			dist[w] = d + 1
			queue = append(queue, w)
		}
	}
	return dist
}

// Centrality returns |R| / sum(dist(v, group)), where R is the set of nodes
// outside group that the group can reach. Nodes at infinite distance (in a
// different component) are excluded from both the sum and the |R| count,
// mirroring Farness's (N-1)/(|R|-1) treatment of unreachable peers. Returns
// 0 when R is empty (no outside node is reachable, or group covers the
// whole graph).
func Centrality(g graphapi.Graph, group []int64) float64 {
	inGroup := make(map[int64]bool, len(group))
	for _, id := range group {
		inGroup[id] = true
	}

	dist := distancesFromGroup(g, group)
	var sum, reached int
	for v, d := range dist {
		if inGroup[v] {
			continue
		}
		sum += d
		reached++
	}
	if reached == 0 || sum == 0 {
		return 0
	}
	return float64(reached) / float64(sum)
}
