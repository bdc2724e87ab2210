package energy

// MaxDrop returns maxdrop(v) = max(0, -min_{(v,w)} effect(v,w)), the drop
// of v's best-case outgoing edge. A sink (no outgoing edges) has
// maxdrop 0.
//
// Complexity: O(out-degree(v)).
func (g *Game) MaxDrop(v int) int64 {
	if !g.inRange(v) {
		return 0
	}
	var minVal int64 // starts at 0: the max(0, ...) floor is folded in here
	for _, e := range g.succ[v] {
		if e.Effect < minVal {
			minVal = e.Effect
		}
	}
	if minVal >= 0 {
		return 0
	}

	return -minVal
}

// MaxDropTotal returns max_v MaxDrop(v) over all vertices. Used only for
// diagnostics; Cutoff uses the *sum*, not the max.
//
// Complexity: O(n + m).
func (g *Game) MaxDropTotal() int64 {
	var best int64
	for v := 0; v < g.n; v++ {
		if d := g.MaxDrop(v); d > best {
			best = d
		}
	}

	return best
}

// Derived bundles the three classical bounds computed from a Game's edge
// effects: Cutoff, Top, and the per-vertex maxdrop values the solver needs
// to build them.
type Derived struct {
	MaxDrop []int64 // MaxDrop[v], length N
	Cutoff  int64   // 1 + sum(MaxDrop)
	Top     int64   // Cutoff + max(0, max edge effect) — the ⊤ sentinel level
}

// ComputeDerived computes Derived in a single O(n+m) pass.
//
// An all-negative-effect instance is handled by defining
// Top = Cutoff + max(0, maxEffect), so Top can never fall below Cutoff.
func ComputeDerived(g *Game) Derived {
	maxDrop := make([]int64, g.n)
	var cutoff int64 = 1
	var maxEffect int64 // starts at 0, per the all-negative-effect rule above
	for v := 0; v < g.n; v++ {
		d := g.MaxDrop(v)
		maxDrop[v] = d
		cutoff += d
		for _, e := range g.succ[v] {
			if e.Effect > maxEffect {
				maxEffect = e.Effect
			}
		}
	}

	return Derived{
		MaxDrop: maxDrop,
		Cutoff:  cutoff,
		Top:     cutoff + maxEffect,
	}
}

// TopCreditFor returns the Credit sentinel used to represent ⊤ for a game
// whose derived Top level is d.Top. Internally this is always the single
// TopCredit value; the method exists so call sites that only have a
// Derived in hand don't need to import anything else to reach it.
func (d Derived) TopCreditFor() Credit { return TopCredit }
