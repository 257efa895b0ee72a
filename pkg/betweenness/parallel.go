package betweenness

import (
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
)

// ParallelSampled is the data-parallel counterpart of Sampled: each sampled
// pivot's single-source traversal runs on its own goroutine, bounded to
// runtime.NumCPU() concurrent traversals, with partial contributions merged
// under a mutex once each pivot's backward pass completes. The result is
// numerically identical to the serial Sampled up to floating-point
// summation order, per the data-parallel strategy layer's tolerance.
func ParallelSampled(g graphapi.Graph, frac float64, wantNode, wantEdge, directed bool, rng *rand.Rand) (graphapi.NodeScores, graphapi.EdgeScores, int) {
	n := g.NodeCount()
	if n == 0 {
		return graphapi.NodeScores{}, graphapi.EdgeScores{}, 0
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	k := int(frac*float64(n) + 0.999999)
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	adj := buildAdjacency(g)
	nodes := g.Nodes()
	ids := make([]int64, n)
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	picked := SampleIndices(n, k, rng)

	nodeAcc := make([]float64, n)
	edgeAcc := make(graphapi.EdgeScores)
	var mu sync.Mutex

	var g2 errgroup.Group
	g2.SetLimit(runtime.NumCPU())

	for _, p := range picked {
		srcIdx := p
		g2.Go(func() error {
			buf := getBuffers(n)
			defer putBuffers(buf)

			var local graphapi.EdgeScores
			var addEdge edgeAccumulator
			if wantEdge {
				local = make(graphapi.EdgeScores)
				addEdge = func(uIdx, wIdx int, c float64) {
					key := graphapi.CanonEdge(adj.idx.IdxToID[uIdx], adj.idx.IdxToID[wIdx], directed)
					local[key] += c
				}
			}

			singleSource(adj, srcIdx, buf, addEdge)

			mu.Lock()
			if wantNode {
				for i, v := range buf.nodeBC {
					nodeAcc[i] += v
				}
			}
			if wantEdge {
				for key, v := range local {
					edgeAcc[key] += v
				}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g2.Wait()

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
	var edgeScores graphapi.EdgeScores
	if wantEdge {
		edgeScores = edgeAcc
	}
	return nodeScores, edgeScores, k
}
