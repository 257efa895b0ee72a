// Package distance implements the single-source BFS distance primitives:
// farness, closeness, and eccentricity of one node against a graphapi.Graph.
package distance

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// bfs walks out-edges from src and returns, for every reached node (src
// included), its hop distance. src itself maps to 0.
func bfs(g graphapi.Graph, src int64) map[int64]int {
	dist := make(map[int64]int)
	dist[src] = 0
	queue := []int64{src}
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

// Farness returns the average shortest-path distance from nid to every node
// it can reach, excluding nid itself. A node that reaches no other node
// has farness 0. When normalized is true, the result is scaled by
// (N-1)/(|R|-1) so that a node isolated in a small component does not read
// as more central than one with many short paths in a large graph.
func Farness(g graphapi.Graph, nid int64, normalized bool) float64 {
	dist := bfs(g, nid)
	reached := len(dist)
	if reached <= 1 {
		return 0
	}
	var sum float64
	for v, d := range dist {
		if v == nid {
			continue
		}
		sum += float64(d)
	}
	f := sum / float64(reached-1)
	if normalized {
		n := g.NodeCount()
		f *= float64(n-1) / float64(reached-1)
	}
	return f
}

// Closeness returns the reciprocal of Farness, or 0 when farness is 0.
func Closeness(g graphapi.Graph, nid int64, normalized bool) float64 {
	f := Farness(g, nid, normalized)
	if f == 0 {
		return 0
	}
	return 1 / f
}

// Eccentricity returns the greatest shortest-path distance from nid to any
// node it can reach. asUndirected walks both in- and out-neighbors so
// direction is ignored; otherwise only out-edges are followed.
func Eccentricity(g graphapi.Graph, nid int64, asUndirected bool) int {
	if !asUndirected {
		dist := bfs(g, nid)
		max := 0
		for _, d := range dist {
			if d > max {
				max = d
			}
		}
		return max
	}

	dist := make(map[int64]int)
	dist[nid] = 0
	queue := []int64{nid}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		node, ok := g.NodeByID(v)
		if !ok {
			continue
		}
		d := dist[v]
		visit := func(w int64) {
			if _, seen := dist[w]; seen {
				return
			}
			dist[w] = d + 1
			queue = append(queue, w)
		}
		for i := 0; i < node.OutDegree(); i++ {
			visit(node.OutNeighbor(i))
		}
		for i := 0; i < node.InDegree(); i++ {
			visit(node.InNeighbor(i))
		}
	}

	max := 0
	for _, d := range dist {
		if d > max {
			max = d
		}
	}
	return max
}
