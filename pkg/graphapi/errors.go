package graphapi

import "errors"

// ErrInvalidArgument is the sentinel for a caller error. Wrap it with
// fmt.Errorf("...: %w", ErrInvalidArgument) for context and match it with
// errors.Is. No operation in this module returns it: Sampled and
// ParallelSampled clamp an out-of-range fraction into [0,1], and
// RunWeighted returns a Weight callback's error wrapped with the edge
// rather than as ErrInvalidArgument.
var ErrInvalidArgument = errors.New("graphrank: invalid argument")

// ErrEmptyGraph marks operations that refuse to run against a zero-node
// graph rather than silently returning an empty result. Most operations in
// this module treat N==0 as a non-error (they return an empty map); the few
// that don't (weighted PageRank) return this.
var ErrEmptyGraph = errors.New("graphrank: empty graph")
