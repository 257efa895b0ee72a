package graphapi

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// simpleNode adapts a gonum graph.Node plus its precomputed neighbor lists
// to the Node interface. Neighbor lists are captured once at adapter
// construction time so OutNeighbor/InNeighbor are plain slice indexing, not
// a gonum.Nodes iterator walk per call.
type simpleNode struct {
	id  int64
	out []int64
	in  []int64
}

func (n simpleNode) ID() int64            { return n.id }
func (n simpleNode) OutDegree() int       { return len(n.out) }
func (n simpleNode) InDegree() int        { return len(n.in) }
func (n simpleNode) OutNeighbor(i int) int64 { return n.out[i] }
func (n simpleNode) InNeighbor(i int) int64  { return n.in[i] }

// simpleGraph is the Graph built from a gonum graph.Directed or
// graph.Undirected. Undirected sources populate out and in identically, per
// the Graph.Directed invariant.
type simpleGraph struct {
	directed bool
	maxID    int64
	byID     map[int64]*simpleNode
	ordered  []Node
}

func (g *simpleGraph) NodeCount() int   { return len(g.ordered) }
func (g *simpleGraph) MaxNodeID() int64 { return g.maxID }
func (g *simpleGraph) Nodes() []Node    { return g.ordered }
func (g *simpleGraph) Directed() bool   { return g.directed }

func (g *simpleGraph) NodeByID(id int64) (Node, bool) {
	n, ok := g.byID[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// FromSimpleDirected adapts a gonum simple.DirectedGraph into a Graph. Edge
// direction is preserved: OutNeighbor walks g.From(id), InNeighbor walks
// g.To(id).
func FromSimpleDirected(g *simple.DirectedGraph) Graph {
	return buildSimpleGraph(g, true, func(id int64) []int64 {
		return sortedIDs(graph.NodesOf(g.To(id)))
	})
}

// FromSimpleUndirected adapts a gonum simple.UndirectedGraph into a Graph.
// In- and out-neighbor lists are identical, matching the Graph.Directed
// contract for undirected sources.
func FromSimpleUndirected(g *simple.UndirectedGraph) Graph {
	return buildSimpleGraph(g, false, nil)
}

// directedLike is satisfied by both simple.DirectedGraph and
// simple.UndirectedGraph for the subset of graph.Graph this adapter needs.
type directedLike interface {
	graph.Graph
	From(id int64) graph.Nodes
}

// buildSimpleGraph captures node ids and out-neighbor lists from g. inOf, if
// non-nil, supplies the in-neighbor list per node (directed sources); a nil
// inOf means in == out (undirected sources).
func buildSimpleGraph(g directedLike, directed bool, inOf func(id int64) []int64) Graph {
	raw := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(raw))
	for i, n := range raw {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sg := &simpleGraph{
		directed: directed,
		byID:     make(map[int64]*simpleNode, len(ids)),
		ordered:  make([]Node, 0, len(ids)),
	}
	for _, id := range ids {
		out := sortedIDs(graph.NodesOf(g.From(id)))
		in := out
		if inOf != nil {
			in = inOf(id)
		}
		n := &simpleNode{id: id, out: out, in: in}
		sg.byID[id] = n
		sg.ordered = append(sg.ordered, n)
		if id > sg.maxID {
			sg.maxID = id
		}
	}
	return sg
}

func sortedIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// typedGraph wraps a Graph with the per-node type/local-id sharding
// MultiType PageRank consumes, grounded on the original's type-partitioned
// node-mass bookkeeping (one rank/degree vector per node type rather than
// one flat vector over all ids).
type typedGraph struct {
	Graph
	typeOf       func(id int64) int
	maxType      int
	localID      map[int64]int64
	maxIDOfType  []int64
}

// NewTypedGraph builds a TypedGraph over g, assigning each node a dense
// local id within its type in ascending global-id order.
func NewTypedGraph(g Graph, typeOf func(id int64) int) TypedGraph {
	nodes := g.Nodes()
	maxType := -1
	types := make([]int, len(nodes))
	for i, n := range nodes {
		t := typeOf(n.ID())
		types[i] = t
		if t > maxType {
			maxType = t
		}
	}

	localID := make(map[int64]int64, len(nodes))
	maxIDOfType := make([]int64, maxType+1)
	for i := range maxIDOfType {
		maxIDOfType[i] = -1
	}
	counters := make([]int64, maxType+1)
	for i, n := range nodes {
		t := types[i]
		localID[n.ID()] = counters[t]
		counters[t]++
		maxIDOfType[t] = counters[t] - 1
	}

	return &typedGraph{
		Graph:       g,
		typeOf:      typeOf,
		maxType:     maxType,
		localID:     localID,
		maxIDOfType: maxIDOfType,
	}
}

func (t *typedGraph) MaxTypeID() int             { return t.maxType }
func (t *typedGraph) TypeOf(id int64) int        { return t.typeOf(id) }
func (t *typedGraph) LocalIDOf(id int64) int64   { return t.localID[id] }
func (t *typedGraph) MaxNodeIDOfType(tp int) int64 {
	if tp < 0 || tp >= len(t.maxIDOfType) {
		return -1
	}
	return t.maxIDOfType[tp]
}
