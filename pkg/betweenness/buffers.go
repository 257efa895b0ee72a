package betweenness

import "sync"

// buffers holds the reusable working arrays for one Brandes single-source
// traversal: shortest-path counts, BFS distances, dependency accumulation,
// predecessor lists, and the BFS queue/stack. Pooled via sync.Pool so a
// sampled or parallel run does not allocate a fresh set per source.
type buffers struct {
	sigma []int64   // sigma_s(v): number of shortest s->v paths, an exact count
	dist  []int     // d_s(v); -1 means unvisited
	delta []float64 // delta_s(v): dependency of s on v
	pred  [][]int   // P_s(v): predecessors of v on a shortest s-path, as dense indices
	queue []int     // BFS frontier, FIFO
	stack []int     // visit order, consumed LIFO during accumulation
	nodeBC []float64 // per-source node betweenness contribution, indexed densely
}

var bufPool = sync.Pool{
	New: func() any {
		return &buffers{}
	},
}

func getBuffers(n int) *buffers {
	b := bufPool.Get().(*buffers)
	b.reset(n)
	return b
}

func putBuffers(b *buffers) {
	const maxCap = 100_000
	if cap(b.sigma) > maxCap {
		return
	}
	bufPool.Put(b)
}

// reset clears buffer contents for a new source traversal, growing or
// shrinking backing arrays only when the node count has drifted far enough
// to matter.
func (b *buffers) reset(n int) {
	if cap(b.sigma) < n || cap(b.sigma) > n*2 {
		b.sigma = make([]int64, 0, n)
		b.dist = make([]int, 0, n)
		b.delta = make([]float64, 0, n)
		b.pred = make([][]int, 0, n)
		b.queue = make([]int, 0, n)
		b.stack = make([]int, 0, n)
		b.nodeBC = make([]float64, 0, n)
	}

	b.sigma = b.sigma[:n]
	clear(b.sigma)
	b.delta = b.delta[:n]
	clear(b.delta)
	b.nodeBC = b.nodeBC[:n]
	clear(b.nodeBC)

	b.dist = b.dist[:n]
	for i := range b.dist {
		b.dist[i] = -1
	}

	if cap(b.pred) < n {
		b.pred = make([][]int, n)
	} else {
		b.pred = b.pred[:n]
	}
	for i := range b.pred {
		if b.pred[i] != nil {
			b.pred[i] = b.pred[i][:0]
			continue
		}
		b.pred[i] = make([]int, 0, 4)
	}

	b.queue = b.queue[:0]
	b.stack = b.stack[:0]
}
