package distance_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dicklesworthstone/graphrank/pkg/distance"
	"github.com/dicklesworthstone/graphrank/pkg/graphtest"
)

// TestPropertyClosenessIsReciprocalOfFarness checks invariant 5: closeness(v)
// * farness(v) == 1 whenever farness(v) > 0, across random graphs and nodes.
func TestPropertyClosenessIsReciprocalOfFarness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 25).Draw(rt, "n")
		density := rapid.Float64Range(0, 1).Draw(rt, "density")
		seed := rapid.Int64().Draw(rt, "seed")
		directed := rapid.Bool().Draw(rt, "directed")

		g := graphtest.RandomDAG(n, density, seed)
		if !directed {
			g = graphtest.RandomUndirected(n, density, seed)
		}
		nid := int64(rapid.IntRange(0, n-1).Draw(rt, "nid"))

		f := distance.Farness(g, nid, false)
		c := distance.Closeness(g, nid, false)
		if f > 0 {
			if diff := f*c - 1; diff > 1e-9 || diff < -1e-9 {
				rt.Fatalf("closeness(%d)*farness(%d) = %v, want 1 (f=%v, c=%v)", nid, nid, f*c, f, c)
			}
		} else if c != 0 {
			rt.Fatalf("farness=0 but closeness=%v, want 0", c)
		}
	})
}

// TestPropertyEccentricityIsMaxBFSDepth checks invariant 6: eccentricity
// equals the maximum BFS depth reached from v.
func TestPropertyEccentricityIsMaxBFSDepth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 25).Draw(rt, "n")
		density := rapid.Float64Range(0, 1).Draw(rt, "density")
		seed := rapid.Int64().Draw(rt, "seed")

		g := graphtest.RandomDAG(n, density, seed)
		nid := int64(rapid.IntRange(0, n-1).Draw(rt, "nid"))

		ecc := distance.Eccentricity(g, nid, false)

		// Re-derive the max BFS depth independently via Farness's BFS
		// contract: every reachable node's distance is at most ecc, and at
		// least one reaches exactly ecc (checked by brute-force BFS here).
		dist := map[int64]int{nid: 0}
		queue := []int64{nid}
		maxDepth := 0
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
				if d+1 > maxDepth {
					maxDepth = d + 1
				}
				queue = append(queue, w)
			}
		}

		if ecc != maxDepth {
			rt.Fatalf("Eccentricity(%d) = %d, want %d (brute-force max BFS depth)", nid, ecc, maxDepth)
		}
	})
}
