// Package eigenvector implements eigenvector centrality via power
// iteration over the shared poweriter kernel: each iteration sums
// neighbor ranks, then rescales by the largest magnitude entry rather than
// normalizing to a probability distribution (unlike PageRank).
package eigenvector

import (
	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/poweriter"
)

// Config controls convergence and execution strategy.
type Config struct {
	Eps      float64
	MaxIter  int
	Parallel bool
}

// DefaultConfig matches the reference defaults: L-infinity convergence
// tolerance 1e-4, at most 100 iterations.
func DefaultConfig() Config {
	return Config{Eps: 1e-4, MaxIter: 100}
}

// Result carries the settled centrality vector.
type Result struct {
	Scores     graphapi.NodeScores
	Iterations int
	Converged  bool
}

// Run computes eigenvector centrality over g, treated as undirected: a
// vertex's new value is the sum of its neighbors' current values (reading
// both in- and out-neighbor lists, so a directed input is symmetrized).
// Isolated nodes always score 0 and never change the settled values of the
// rest of the graph, so an isolated node may be added or removed from g
// without perturbing other nodes' scores.
func Run(g graphapi.Graph, cfg Config) Result {
	n := g.NodeCount()
	if n == 0 {
		return Result{Scores: graphapi.NodeScores{}, Converged: true}
	}

	idx := graphapi.BuildIndex(g)
	neighbors := make([][]int, n)
	for i, id := range idx.IdxToID {
		node, ok := g.NodeByID(id)
		if !ok {
			continue
		}
		list := make([]int, 0, node.OutDegree()+node.InDegree())
		for j := 0; j < node.OutDegree(); j++ {
			list = append(list, idx.Of(node.OutNeighbor(j)))
		}
		if g.Directed() {
			for j := 0; j < node.InDegree(); j++ {
				list = append(list, idx.Of(node.InNeighbor(j)))
			}
		}
		neighbors[i] = list
	}

	uniform := 1.0 / float64(n)
	cur := make([]float64, n)
	for i := range cur {
		cur[i] = uniform
	}
	next := make([]float64, n)

	contribute := func(cur []float64, v int) float64 {
		var sum float64
		for _, u := range neighbors[v] {
			sum += cur[u]
		}
		return sum
	}

	step := poweriter.Serial
	if cfg.Parallel {
		step = poweriter.Parallel
	}

	converged := false
	iterations := 0
	for ; iterations < cfg.MaxIter; iterations++ {
		step(n, cur, next, contribute)
		poweriter.MaxAbsRescale(next)

		delta := poweriter.LInfDiff(cur, next)
		cur, next = next, cur
		if delta < cfg.Eps {
			converged = true
			iterations++
			break
		}
	}

	scores := make(graphapi.NodeScores, n)
	for i, id := range idx.IdxToID {
		scores[id] = cur[i]
	}
	return Result{Scores: scores, Iterations: iterations, Converged: converged}
}
