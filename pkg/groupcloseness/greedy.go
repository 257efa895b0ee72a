package groupcloseness

import (
	"container/heap"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
)

// MaxCoverageGreedy builds a size-k group by repeatedly adding the node
// whose addition most reduces the total distance from the rest of the
// graph to the group, i.e. the node with the largest marginal contribution
// to group closeness. Ties are broken by smallest node id.
//
// It uses a priority queue of gains with lazy (upper-bound) re-evaluation,
// exploiting the fact that a candidate's true marginal gain can only shrink
// as the group grows while the set of nodes the group reaches stays the
// same, so a cached gain from an earlier round is a valid upper bound on
// the current one. A pick that reaches new nodes can raise other gains, so
// every cached gain is recomputed after such a pick. This is the recommended
// entry point; see MaxCoverageGreedyExact for the naive O(k*V*(V+E))
// baseline that recomputes every candidate from scratch each round.
func MaxCoverageGreedy(g graphapi.Graph, k int) []int64 {
	return lazyGreedy(g, nil, k)
}

// MaxCoverageGreedyExact is the naive baseline: every remaining candidate's
// marginal gain is recomputed from scratch each round, with no lazy
// re-evaluation. It always agrees with MaxCoverageGreedy's selected set
// (same tie-break, same submodular objective) and exists for callers that
// want to cross-check the lazy evaluation strategy rather than rely on it.
func MaxCoverageGreedyExact(g graphapi.Graph, k int) []int64 {
	return naiveGreedy(g, nil, k)
}

// extendGreedy grows a preexisting seed group by k more nodes and returns
// the seed followed by the newly picked nodes, using the lazy strategy when
// lazy is true and the naive baseline otherwise.
func extendGreedy(g graphapi.Graph, seed []int64, k int, lazy bool) []int64 {
	var picked []int64
	if lazy {
		picked = lazyGreedy(g, seed, k)
	} else {
		picked = naiveGreedy(g, seed, k)
	}
	result := make([]int64, 0, len(seed)+len(picked))
	result = append(result, seed...)
	result = append(result, picked...)
	return result
}

func naiveGreedy(g graphapi.Graph, seed []int64, k int) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}

	group := make([]int64, 0, k)
	inGroup := make(map[int64]bool, k+len(seed))
	for _, id := range seed {
		inGroup[id] = true
	}

	// distTo is seeded from the preexisting group's multi-source BFS (empty
	// when seed is empty); every reachable-from-candidate node with no prior
	// distance to improve on is treated as unbounded for the purposes of
	// min().
	distTo := make(map[int64]int)
	currentSum := 0
	if len(seed) > 0 {
		distTo = distancesFromGroup(g, seed)
		for _, id := range seed {
			delete(distTo, id)
		}
		for _, d := range distTo {
			currentSum += d
		}
	}

	for step := 0; step < k && len(group) < len(ids); step++ {
		var bestID int64
		var bestGain int
		found := false

		for _, cand := range ids {
			if inGroup[cand] {
				continue
			}
			candDist := singleSourceBFS(g, cand)
			newSum := 0
			for _, v := range ids {
				if v == cand || inGroup[v] {
					continue
				}
				d, ok := candDist[v]
				if cur, curOK := distTo[v]; curOK {
					if ok && d < cur {
						newSum += d
					} else {
						newSum += cur
					}
				} else if ok {
					newSum += d
				}
				// else: unreachable by both current group and candidate; contributes 0
			}
			gain := currentSum - newSum
			if !found || gain > bestGain || (gain == bestGain && cand < bestID) {
				bestID, bestGain, found = cand, gain, true
			}
		}

		if !found {
			break
		}
		group = append(group, bestID)
		inGroup[bestID] = true
		candDist := singleSourceBFS(g, bestID)
		newSum := 0
		for _, v := range ids {
			if inGroup[v] {
				continue
			}
			d, ok := candDist[v]
			if cur, curOK := distTo[v]; curOK {
				if ok && d < cur {
					distTo[v] = d
				}
			} else if ok {
				distTo[v] = d
			}
			if d2, ok2 := distTo[v]; ok2 {
				newSum += d2
			}
		}
		currentSum = newSum
	}

	return group
}

func singleSourceBFS(g graphapi.Graph, src int64) map[int64]int {
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

// gainEntry is one candidate's cached marginal-gain upper bound in the lazy
// priority queue.
type gainEntry struct {
	id    int64
	gain  int
	stale bool // true once the group has changed since gain was computed
}

type gainHeap []*gainEntry

func (h gainHeap) Len() int { return len(h) }
func (h gainHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].id < h[j].id
}
func (h gainHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *gainHeap) Push(x interface{}) { *h = append(*h, x.(*gainEntry)) }
func (h *gainHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func lazyGreedy(g graphapi.Graph, seed []int64, k int) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}

	inGroup := make(map[int64]bool, k+len(seed))
	for _, id := range seed {
		inGroup[id] = true
	}

	distTo := make(map[int64]int) // current best distance from group to each node
	group := make([]int64, 0, k)
	currentSum := 0
	if len(seed) > 0 {
		distTo = distancesFromGroup(g, seed)
		for _, id := range seed {
			delete(distTo, id)
		}
		for _, d := range distTo {
			currentSum += d
		}
	}

	marginalGain := func(cand int64) int {
		candDist := singleSourceBFS(g, cand)
		newSum := 0
		for _, v := range ids {
			if v == cand || inGroup[v] {
				continue
			}
			d, ok := candDist[v]
			cur, curOK := distTo[v]
			switch {
			case ok && curOK && d < cur:
				newSum += d
			case curOK:
				newSum += cur
			case ok:
				newSum += d
			}
		}
		return currentSum - newSum
	}

	h := make(gainHeap, 0, len(ids))
	for _, id := range ids {
		e := &gainEntry{id: id, gain: marginalGain(id)}
		h = append(h, e)
	}
	heap.Init(&h)

	for step := 0; step < k && h.Len() > 0; step++ {
		var picked *gainEntry
		for h.Len() > 0 {
			top := heap.Pop(&h).(*gainEntry)
			if inGroup[top.id] {
				continue
			}
			fresh := marginalGain(top.id)
			if fresh != top.gain {
				top.gain = fresh
				heap.Push(&h, top)
				continue
			}
			picked = top
			break
		}
		if picked == nil {
			break
		}

		group = append(group, picked.id)
		inGroup[picked.id] = true
		reachedBefore := len(distTo)
		candDist := singleSourceBFS(g, picked.id)
		newSum := 0
		for _, v := range ids {
			if inGroup[v] {
				continue
			}
			d, ok := candDist[v]
			cur, curOK := distTo[v]
			if ok && (!curOK || d < cur) {
				distTo[v] = d
			}
			if d2, ok2 := distTo[v]; ok2 {
				newSum += d2
			}
		}
		currentSum = newSum

		// Newly reached nodes can raise other candidates' gains, so the
		// cached values are no longer upper bounds: refresh them all.
		if len(distTo) > reachedBefore {
			for _, e := range h {
				e.gain = marginalGain(e.id)
			}
			heap.Init(&h)
		}
	}

	return group
}
