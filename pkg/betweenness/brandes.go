package betweenness

import "github.com/dicklesworthstone/graphrank/pkg/graphapi"

// edgeAccumulator receives a dependency contribution c for the traversal
// edge (u,w) observed during backward accumulation. Implementations decide
// how to key it (canonicalized for undirected graphs, as observed for
// directed ones).
type edgeAccumulator func(uIdx, wIdx int, c float64)

// singleSource runs one Brandes BFS+accumulation pass from sourceIdx over
// adj, writing per-source node contributions into buf.nodeBC and, if acc is
// non-nil, invoking acc for every predecessor edge's dependency share.
func singleSource(adj adjacency, sourceIdx int, buf *buffers, acc edgeAccumulator) {
	n := len(adj.outgoing)
	if n == 0 {
		return
	}
	buf.reset(n)

	sigma := buf.sigma
	dist := buf.dist
	delta := buf.delta
	pred := buf.pred

	sigma[sourceIdx] = 1
	dist[sourceIdx] = 0
	buf.queue = append(buf.queue, sourceIdx)

	for len(buf.queue) > 0 {
		v := buf.queue[0]
		buf.queue = buf.queue[1:]
		buf.stack = append(buf.stack, v)

		for _, w := range adj.outgoing[v] {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				buf.queue = append(buf.queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	for i := len(buf.stack) - 1; i >= 0; i-- {
		w := buf.stack[i]
		for _, u := range pred[w] {
			if sigma[w] == 0 {
				continue
			}
			c := (float64(sigma[u]) / float64(sigma[w])) * (1 + delta[w])
			delta[u] += c
			if acc != nil {
				acc(u, w, c)
			}
		}
		if w != sourceIdx {
			buf.nodeBC[w] += delta[w]
		}
	}
}

// Run is the single entry point described for the Brandes engine: it walks
// a BFS from every id in sources and returns node and/or edge betweenness,
// depending on wantNode/wantEdge. Pass every node id for exact betweenness,
// or a uniform random subset for sampled betweenness (no rescaling is
// applied here, nor by Sampled).
//
// directed controls the node-score halving: an undirected interpretation
// double-counts each unordered pair once from either endpoint's BFS, so
// node contributions are halved; a directed graph must not halve, since
// u->v and v->u dependencies are distinct observations.
func Run(g graphapi.Graph, sources []int64, wantNode, wantEdge, directed bool) (graphapi.NodeScores, graphapi.EdgeScores) {
	adj := buildAdjacency(g)
	n := adj.idx.Len()

	var nodeAcc []float64
	if wantNode {
		nodeAcc = make([]float64, n)
	}
	var edgeAcc graphapi.EdgeScores
	var addEdge edgeAccumulator
	if wantEdge {
		edgeAcc = make(graphapi.EdgeScores)
		addEdge = func(uIdx, wIdx int, c float64) {
			key := graphapi.CanonEdge(adj.idx.IdxToID[uIdx], adj.idx.IdxToID[wIdx], directed)
			edgeAcc[key] += c
		}
	}

	buf := getBuffers(n)
	defer putBuffers(buf)

	for _, src := range sources {
		srcIdx := adj.idx.Of(src)
		singleSource(adj, srcIdx, buf, addEdge)
		if wantNode {
			for i, v := range buf.nodeBC {
				nodeAcc[i] += v
			}
		}
	}

	var nodeScores graphapi.NodeScores
	if wantNode {
		nodeScores = make(graphapi.NodeScores, n)
		div := 1.0
		if !directed {
			div = 2.0
		}
		for i, v := range nodeAcc {
			if v == 0 {
				continue
			}
			nodeScores[adj.idx.IdxToID[i]] = v / div
		}
	}
	return nodeScores, edgeAcc
}
