package groupcloseness

import (
	"fmt"
	"io"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/nodelist"
)

// CentralityFromReader reads a seed group from r (one node id per line, via
// pkg/nodelist) and returns its group closeness centrality, for callers that
// keep the group on disk rather than assembling it in memory.
func CentralityFromReader(g graphapi.Graph, r io.Reader) (float64, error) {
	group, err := nodelist.Load(r)
	if err != nil {
		return 0, fmt.Errorf("groupcloseness: %w", err)
	}
	return Centrality(g, group), nil
}

// MaxCoverageGreedyFromReader reads a preexisting seed group from r (via
// pkg/nodelist) and extends it by k more nodes using the lazy greedy
// strategy, returning the full group (seed plus the nodes picked).
func MaxCoverageGreedyFromReader(g graphapi.Graph, r io.Reader, k int) ([]int64, error) {
	seed, err := nodelist.Load(r)
	if err != nil {
		return nil, fmt.Errorf("groupcloseness: %w", err)
	}
	return extendGreedy(g, seed, k, true), nil
}
