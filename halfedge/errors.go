package halfedge

import "errors"

// Sentinel errors surfaced by the core. Callers branch on these with
// errors.Is; they are never restated as formatted strings at the
// definition site, only wrapped with positional context via %w at the
// call site.
var (
	// ErrNonManifold is returned by New when the input index stream
	// describes non-manifold geometry (a duplicate directed edge, or
	// an out-of-range vertex index).
	ErrNonManifold = errors.New("halfedge: non-manifold input")

	// ErrInvalidCollapse is returned by Collapse when the given
	// half-edge fails the link-condition / valence-floor / boundary
	// validity test at the time of the call.
	ErrInvalidCollapse = errors.New("halfedge: invalid collapse candidate")

	// ErrExhausted is returned by Reduce once no legal collapse
	// remains. It is the normal termination signal of a reduction,
	// not a failure.
	ErrExhausted = errors.New("halfedge: reached max reduction")
)
