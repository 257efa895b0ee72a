package betweenness

import (
	"math/rand"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
)

// SampleIndices returns a uniform random sample of k distinct indices from
// [0,n), via partial Fisher-Yates shuffle. k is clamped to [0,n]. Passing
// an explicit *rand.Rand keeps sampling reproducible across calls, rather
// than consulting a process-wide generator; a nil rng falls back to
// math/rand's package-level source.
func SampleIndices(n, k int, rng *rand.Rand) []int {
	if k >= n {
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		return idxs
	}
	if k < 0 {
		k = 0
	}

	shuffled := make([]int, n)
	for i := range shuffled {
		shuffled[i] = i
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := 0; i < k; i++ {
		j := i + intn(n-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:k]
}

// RecommendSampleSize picks a pivot-set size that trades accuracy for
// speed: small graphs get exact betweenness (sample size == node count),
// larger graphs get a fixed or proportional sample whose approximation
// error is O(1/sqrt(k)).
func RecommendSampleSize(nodeCount, edgeCount int) int {
	_ = edgeCount
	switch {
	case nodeCount < 100:
		return nodeCount
	case nodeCount < 500:
		if sample := nodeCount / 5; sample > 50 {
			return sample
		}
		return 50
	case nodeCount < 2000:
		return 100
	default:
		return 200
	}
}

// Sampled runs the Brandes engine from a uniform random subset of size
// ceil(frac*N) instead of every node, per the spec's sampling mode: no
// rescaling is performed here, so the returned values are systematically
// lower than the exact values by roughly a factor of |sources|/N. Callers
// that want an unbiased estimate should scale by N/|sources| themselves.
func Sampled(g graphapi.Graph, frac float64, wantNode, wantEdge, directed bool, rng *rand.Rand) (graphapi.NodeScores, graphapi.EdgeScores, int) {
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

	nodes := g.Nodes()
	ids := make([]int64, n)
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	picked := SampleIndices(n, k, rng)
	sources := make([]int64, len(picked))
	for i, p := range picked {
		sources[i] = ids[p]
	}

	nodeScores, edgeScores := Run(g, sources, wantNode, wantEdge, directed)
	return nodeScores, edgeScores, k
}
