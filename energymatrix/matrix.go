package energymatrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/egsolver/egsolver/energy"
)

// WeightMatrix returns the N×N dense matrix whose (u,v) entry is
// effect(u,v) if the edge exists, or +Inf if it does not. Parallel edges
// collapse to their last-inserted effect (the matrix view is a
// cross-check aid, not a faithful multigraph representation).
//
// Complexity: O(N^2) allocation + O(N+M) fill.
func WeightMatrix(g *energy.Game) *mat.Dense {
	n := g.NumVertices()
	data := make([]float64, n*n)
	for i := range data {
		data[i] = noEdge
	}
	m := mat.NewDense(n, n, data)

	for u := 0; u < n; u++ {
		for _, e := range g.Successors(u) {
			m.Set(u, e.To, float64(e.Effect))
		}
	}

	return m
}

// CrossCheckMaxDrop recomputes maxdrop(v) for every vertex from
// WeightMatrix, independently of energy.Game.MaxDrop's adjacency-list
// walk, so tests can assert the two derivations agree. It is purely an
// internal consistency check, never on the solver's critical path.
func CrossCheckMaxDrop(g *energy.Game) []int64 {
	w := WeightMatrix(g)
	n := g.NumVertices()
	out := make([]int64, n)

	for v := 0; v < n; v++ {
		row := w.RawRowView(v)
		minVal := 0.0 // maxdrop floors at 0 if all outgoing effects are non-negative
		for _, val := range row {
			if math.IsInf(val, 1) {
				continue // no edge
			}
			if val < minVal {
				minVal = val
			}
		}
		if minVal < 0 {
			out[v] = int64(-minVal)
		}
	}

	return out
}
