package graphapi

import "sort"

// NodeScores is the node-keyed scalar map returned by every centrality
// operation in this module.
type NodeScores map[int64]float64

// Keys returns the scored node ids in ascending order, for deterministic
// iteration over a map.
func (s NodeScores) Keys() []int64 {
	keys := make([]int64, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// EdgeKey identifies an ordered pair (u,v). For undirected betweenness the
// canonical key has U <= V; directed callers keep the traversal order.
type EdgeKey struct {
	U, V int64
}

// EdgeScores is the edge-keyed scalar map returned by edge betweenness.
type EdgeScores map[EdgeKey]float64

// CanonEdge builds the key under which an edge's score is accumulated.
// Undirected graphs canonicalize to (min(u,v), max(u,v)) so that both
// traversal directions of the same edge land on one entry; directed graphs
// keep (u,v) as observed.
func CanonEdge(u, v int64, directed bool) EdgeKey {
	if directed {
		return EdgeKey{U: u, V: v}
	}
	if u <= v {
		return EdgeKey{U: u, V: v}
	}
	return EdgeKey{U: v, V: u}
}
