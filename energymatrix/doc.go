// Package energymatrix provides a dense matrix cross-check view of an
// energy.Game, used only to independently verify the maxdrop values
// computed by package energy's own adjacency-list implementation.
//
// This mirrors the computational convenience the Python source took for
// granted (building its weight matrix via networkx.to_numpy_matrix purely
// to vectorise lift()); the Go rewrite keeps the adjacency-list
// representation as the solver's hot path (O(1) successor/predecessor
// amortised) and relegates the dense view to a verification aid, built
// on gonum.org/v1/gonum/mat rather than hand-rolled slices-of-slices.
package energymatrix

import "math"

// noEdge marks an absent entry in WeightMatrix: +Inf, since 0 is itself a
// valid finite effect and cannot serve as a sentinel.
const noEdge = math.Inf(1)
