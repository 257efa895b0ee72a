package poweriter_test

import (
	"math"
	"testing"

	"github.com/dicklesworthstone/graphrank/pkg/poweriter"
)

func TestParallelMatchesSerial(t *testing.T) {
	n := 500
	cur := make([]float64, n)
	for i := range cur {
		cur[i] = float64(i) * 0.01
	}
	contribute := func(cur []float64, v int) float64 {
		return cur[v]*2 + float64(v%7)
	}

	serialNext := make([]float64, n)
	parallelNext := make([]float64, n)
	poweriter.Serial(n, cur, serialNext, contribute)
	poweriter.Parallel(n, cur, parallelNext, contribute)

	for i := range serialNext {
		if serialNext[i] != parallelNext[i] {
			t.Fatalf("index %d: serial=%v parallel=%v", i, serialNext[i], parallelNext[i])
		}
	}
}

func TestMaxAbsRescale(t *testing.T) {
	v := []float64{1, -4, 2}
	poweriter.MaxAbsRescale(v)
	want := []float64{0.25, -1, 0.5}
	for i := range v {
		if v[i] != want[i] {
			t.Fatalf("index %d = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestL2Normalize(t *testing.T) {
	v := []float64{3, 4}
	poweriter.L2Normalize(v)
	if math.Abs(v[0]-0.6) > 1e-12 || math.Abs(v[1]-0.8) > 1e-12 {
		t.Fatalf("L2Normalize = %v, want [0.6 0.8]", v)
	}
}

func TestL1AndLInfDiff(t *testing.T) {
	cur := []float64{0, 0, 0}
	next := []float64{1, -2, 0.5}
	if got, want := poweriter.L1Diff(cur, next), 3.5; got != want {
		t.Fatalf("L1Diff = %v, want %v", got, want)
	}
	if got, want := poweriter.LInfDiff(cur, next), 2.0; got != want {
		t.Fatalf("LInfDiff = %v, want %v", got, want)
	}
}
