// Package poweriter supplies the shared double-buffered iteration loop that
// PageRank, eigenvector centrality, and HITS are all built on: read the
// current rank vector, compute every entry of the next vector from it, and
// never mutate the vector being read until every entry of the next one has
// been produced. This "Jacobi" discipline — as opposed to updating entries
// in place ("Gauss-Seidel") — is what keeps a per-vertex parallel
// implementation numerically equivalent (modulo floating-point associativity)
// to its serial counterpart: every vertex's contribution reads a frozen
// snapshot, so partitioning the vertex range across goroutines requires no
// synchronization beyond a final barrier.
package poweriter

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Contribute computes the value for vertex v from the frozen current vector
// cur, before any redistribution or normalization the client applies after
// the sweep (PageRank's contribute already includes damping).
type Contribute func(cur []float64, v int) float64

// Serial fills next[v] = contribute(cur, v) for every v in [0,n), in
// ascending vertex order. next and cur must be distinct slices of length n.
func Serial(n int, cur, next []float64, contribute Contribute) {
	for v := 0; v < n; v++ {
		next[v] = contribute(cur, v)
	}
}

// Parallel is the data-parallel form of Serial: the vertex range is split
// into contiguous partitions, one per worker, each writing only the
// indices it owns. Because every worker only ever reads cur and only ever
// writes its own slice of next, no cross-worker synchronization is needed
// beyond the implicit barrier at errgroup.Wait — partitioning never reduces
// concurrently into a shared accumulator, unlike the sampled-betweenness
// strategy layer.
func Parallel(n int, cur, next []float64, contribute Contribute) {
	if n == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		Serial(n, cur, next, contribute)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		lo, hi := start, end
		g.Go(func() error {
			for v := lo; v < hi; v++ {
				next[v] = contribute(cur, v)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// L1Diff returns sum(|next[i]-cur[i]|), the convergence measure PageRank
// uses.
func L1Diff(cur, next []float64) float64 {
	var sum float64
	for i := range cur {
		d := next[i] - cur[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// LInfDiff returns max(|next[i]-cur[i]|), the convergence measure
// eigenvector centrality uses.
func LInfDiff(cur, next []float64) float64 {
	var max float64
	for i := range cur {
		d := next[i] - cur[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// MaxAbsRescale divides every entry of v by the largest absolute value in
// v, in place. A v of all zeros is left untouched (nothing to rescale
// against).
func MaxAbsRescale(v []float64) {
	var max float64
	for _, x := range v {
		a := x
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	if max == 0 {
		return
	}
	for i := range v {
		v[i] /= max
	}
}

// L2Normalize divides every entry of v by its Euclidean norm, in place. A v
// of all zeros is left untouched.
func L2Normalize(v []float64) {
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for i := range v {
		v[i] /= norm
	}
}
