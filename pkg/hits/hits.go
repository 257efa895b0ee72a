// Package hits implements the HITS (Hyperlink-Induced Topic Search)
// hub/authority algorithm over the shared poweriter kernel.
//
// Each iteration runs two independent phases, each with its own L2
// normalization: authority scores are recomputed from the current hub
// vector and normalized, then hub scores are recomputed from the
// just-normalized authority vector and normalized in turn. Keeping the two
// phases' norms separate matters: accumulating both phases into one shared
// sum-of-squares before dividing either vector (as a single `Norm`
// variable threaded by reference through both phases would) corrupts both
// vectors' scale. HITS runs a fixed number of iterations; it has no
// epsilon-based convergence test.
package hits

import (
	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/poweriter"
)

// Config controls iteration count and execution strategy. HITS has no
// convergence tolerance; MaxIter is the exact iteration count run.
type Config struct {
	MaxIter  int
	Parallel bool
}

// DefaultConfig runs 100 iterations, matching the reference default.
func DefaultConfig() Config {
	return Config{MaxIter: 100}
}

// Result carries the settled, unit-L2-norm hub and authority vectors.
// Converged is always true: HITS runs a fixed iteration count by design and
// never exits early, so it always completes the schedule it was given.
type Result struct {
	Hub        graphapi.NodeScores
	Auth       graphapi.NodeScores
	Iterations int
	Converged  bool
}

// Run computes HITS over g.
func Run(g graphapi.Graph, cfg Config) Result {
	n := g.NodeCount()
	if n == 0 {
		return Result{Hub: graphapi.NodeScores{}, Auth: graphapi.NodeScores{}, Converged: true}
	}

	idx := graphapi.BuildIndex(g)
	inNeighbors := make([][]int, n)
	outNeighbors := make([][]int, n)
	for i, id := range idx.IdxToID {
		node, ok := g.NodeByID(id)
		if !ok {
			continue
		}
		in := make([]int, 0, node.InDegree())
		for j := 0; j < node.InDegree(); j++ {
			in = append(in, idx.Of(node.InNeighbor(j)))
		}
		inNeighbors[i] = in

		out := make([]int, 0, node.OutDegree())
		for j := 0; j < node.OutDegree(); j++ {
			out = append(out, idx.Of(node.OutNeighbor(j)))
		}
		outNeighbors[i] = out
	}

	hub := make([]float64, n)
	auth := make([]float64, n)
	for i := range hub {
		hub[i] = 1
		auth[i] = 1
	}
	nextHub := make([]float64, n)
	nextAuth := make([]float64, n)

	step := poweriter.Serial
	if cfg.Parallel {
		step = poweriter.Parallel
	}

	authFromHub := func(hub []float64, v int) float64 {
		var sum float64
		for _, u := range inNeighbors[v] {
			sum += hub[u]
		}
		return sum
	}
	hubFromAuth := func(auth []float64, v int) float64 {
		var sum float64
		for _, u := range outNeighbors[v] {
			sum += auth[u]
		}
		return sum
	}

	for iter := 0; iter < cfg.MaxIter; iter++ {
		step(n, hub, nextAuth, authFromHub)
		poweriter.L2Normalize(nextAuth)
		auth, nextAuth = nextAuth, auth

		step(n, auth, nextHub, hubFromAuth)
		poweriter.L2Normalize(nextHub)
		hub, nextHub = nextHub, hub
	}

	poweriter.L2Normalize(auth)
	poweriter.L2Normalize(hub)

	authScores := make(graphapi.NodeScores, n)
	hubScores := make(graphapi.NodeScores, n)
	for i, id := range idx.IdxToID {
		authScores[id] = auth[i]
		hubScores[id] = hub[i]
	}
	return Result{Hub: hubScores, Auth: authScores, Iterations: cfg.MaxIter, Converged: true}
}
