// Package pagerank implements plain, weighted, and multi-type-node PageRank
// on top of the shared power-iteration kernel in pkg/poweriter, following
// the Berkhin leaked-mass redistribution: after computing each vertex's raw
// contribution from its in-neighbors, the total probability mass lost to
// dangling (zero-out-mass) nodes is redistributed uniformly across every
// vertex, rather than only to the nodes that happened to be reached.
package pagerank

import (
	"fmt"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/poweriter"
)

// Config controls damping, convergence, and execution strategy. The zero
// value is not meaningful; use DefaultConfig.
type Config struct {
	Damping  float64
	Eps      float64
	MaxIter  int
	Parallel bool
	// Init, if non-nil, seeds the iteration from a prior result instead of
	// the uniform vector 1/N. Ids absent from Init start at 0.
	Init graphapi.NodeScores
}

// DefaultConfig matches the reference defaults: damping 0.85, L1
// convergence tolerance 1e-4, at most 100 iterations.
func DefaultConfig() Config {
	return Config{Damping: 0.85, Eps: 1e-4, MaxIter: 100}
}

// Result carries the settled rank vector plus enough bookkeeping for a
// caller to decide whether to trust it: Converged is false when MaxIter was
// exhausted before the L1 delta fell under Eps.
type Result struct {
	Scores     graphapi.NodeScores
	Iterations int
	Converged  bool
}

// edge is one weighted in-neighbor contribution: u is the dense index of
// the source vertex, weight is weight(u,v).
type edge struct {
	u int
	w float64
}

// pullGraph is the dense adjacency pagerank (and, with a non-uniform
// weight function, weighted pagerank) iterates over: in-neighbor edges per
// vertex, and each vertex's total outgoing mass.
type pullGraph struct {
	idx     graphapi.Index
	inEdges [][]edge
	outMass []float64
}

// Weight returns the weight of edge (u,v). Plain PageRank uses uniformWeight
// (every edge weighs 1); weighted PageRank supplies a callback over a named
// edge attribute (see weighted.go).
type Weight func(u, v int64) (float64, error)

func uniformWeight(_, _ int64) (float64, error) { return 1, nil }

func buildPullGraph(g graphapi.Graph, weight Weight) (pullGraph, error) {
	idx := graphapi.BuildIndex(g)
	n := idx.Len()
	inEdges := make([][]edge, n)
	outMass := make([]float64, n)

	for uIdx, uID := range idx.IdxToID {
		node, ok := g.NodeByID(uID)
		if !ok {
			continue
		}
		for i := 0; i < node.OutDegree(); i++ {
			vID := node.OutNeighbor(i)
			w, err := weight(uID, vID)
			if err != nil {
				return pullGraph{}, fmt.Errorf("pagerank: edge weight (%d,%d): %w", uID, vID, err)
			}
			outMass[uIdx] += w
			vIdx := idx.Of(vID)
			inEdges[vIdx] = append(inEdges[vIdx], edge{u: uIdx, w: w})
		}
	}

	return pullGraph{idx: idx, inEdges: inEdges, outMass: outMass}, nil
}

func run(g graphapi.Graph, cfg Config, weight Weight) (Result, error) {
	n := g.NodeCount()
	if n == 0 {
		return Result{Scores: graphapi.NodeScores{}, Converged: true}, nil
	}

	pg, err := buildPullGraph(g, weight)
	if err != nil {
		return Result{}, err
	}

	damp := cfg.Damping
	cur := make([]float64, n)
	if cfg.Init != nil {
		for i, id := range pg.idx.IdxToID {
			cur[i] = cfg.Init[id]
		}
	} else {
		uniform := 1.0 / float64(n)
		for i := range cur {
			cur[i] = uniform
		}
	}
	next := make([]float64, n)

	contribute := func(cur []float64, v int) float64 {
		var sum float64
		for _, e := range pg.inEdges[v] {
			if pg.outMass[e.u] <= 0 {
				continue
			}
			sum += e.w * cur[e.u] / pg.outMass[e.u]
		}
		return damp * sum
	}

	converged := false
	iterations := 0
	for ; iterations < cfg.MaxIter; iterations++ {
		step := poweriter.Serial
		if cfg.Parallel {
			step = poweriter.Parallel
		}
		step(n, cur, next, contribute)

		var total float64
		for _, v := range next {
			total += v
		}
		leaked := (1 - total) / float64(n)
		for i := range next {
			next[i] += leaked
		}

		delta := poweriter.L1Diff(cur, next)
		cur, next = next, cur
		if delta < cfg.Eps {
			converged = true
			iterations++
			break
		}
	}

	scores := make(graphapi.NodeScores, n)
	for i, id := range pg.idx.IdxToID {
		scores[id] = cur[i]
	}
	return Result{Scores: scores, Iterations: iterations, Converged: converged}, nil
}

// Run computes plain PageRank: every edge weighs 1, outMass(u) = |Out(u)|.
func Run(g graphapi.Graph, cfg Config) Result {
	// uniformWeight never errors, so the error return is unreachable here.
	result, _ := run(g, cfg, uniformWeight)
	return result
}
