package graphapi

// Index maps node ids to a compact [0,NodeCount) slot for the dense working
// vectors the power-iteration and Brandes engines keep per call. Two
// strategies are supported, chosen by density (the ratio NodeCount /
// (MaxNodeID+1)):
//
//   - Dense: ids already occupy 0..NodeCount-1, so id and index coincide and
//     Of is a no-op.
//   - Sparse: ids are scattered, so a hash map from id to index is built
//     once and consulted on every lookup.
//
// This mirrors the two variants the source implementation carries
// side-by-side (a hand-rolled dense vector sized to MaxId+1, and a map-based
// fallback) behind one call.
type Index struct {
	Dense bool
	// IdxToID maps compact index back to the original node id, valid for
	// both strategies.
	IdxToID []int64
	idToIdx map[int64]int
}

// BuildIndex inspects g's node ids and returns the cheaper of the two
// strategies. Nodes() must already be in ascending-id order.
func BuildIndex(g Graph) Index {
	nodes := g.Nodes()
	n := len(nodes)
	idxToID := make([]int64, n)
	for i, nd := range nodes {
		idxToID[i] = nd.ID()
	}

	dense := n > 0 && idxToID[n-1] == int64(n-1)
	if dense {
		for i, id := range idxToID {
			if id != int64(i) {
				dense = false
				break
			}
		}
	}

	idx := Index{Dense: dense, IdxToID: idxToID}
	if !dense {
		idx.idToIdx = make(map[int64]int, n)
		for i, id := range idxToID {
			idx.idToIdx[id] = i
		}
	}
	return idx
}

// Of returns the compact index for a node id. Callers must only pass ids
// that were present when the Index was built.
func (x Index) Of(id int64) int {
	if x.Dense {
		return int(id)
	}
	return x.idToIdx[id]
}

// Len reports the number of indexed nodes.
func (x Index) Len() int { return len(x.IdxToID) }
