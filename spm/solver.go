package spm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/egsolver/egsolver/energy"
)

// Solve computes the least progress measure of g and returns the winning
// region and measure.
//
// ctx is checked once per popped worklist vertex, purely as an external
// cancellation affordance: on cancellation Solve returns ctx.Err() and a
// nil *Result — a partial measure is never returned, only the complete
// fixed point or an error.
//
// Complexity: O(|V|*|E|*Cutoff) worst case.
func Solve(ctx context.Context, g *energy.Game, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{g: g, log: cfg.Logger}
	r.init()
	r.log.Debug().Int64("cutoff", r.derived.Cutoff).Int64("top", r.derived.Top).Msg("spm: bounds computed")

	if err := r.process(ctx); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state of a single Solve invocation. It owns
// pm and the worklist exclusively for its lifetime; the input Game is
// only ever read.
type runner struct {
	g       *energy.Game
	derived energy.Derived
	pm      []energy.Credit
	w       *worklist
	log     zerolog.Logger
}

// init computes the derived bounds, seeds pm (0 for non-sinks, ⊤ for
// sinks) and the initial dirty set (every non-sink vertex).
func (r *runner) init() {
	n := r.g.NumVertices()
	r.derived = energy.ComputeDerived(r.g)
	r.pm = make([]energy.Credit, n)
	r.w = newWorklist(n)

	for v := 0; v < n; v++ {
		if r.g.IsSink(v) {
			r.pm[v] = energy.TopCredit
			continue
		}
		r.pm[v] = energy.FiniteCredit(0)
		r.w.mark(v)
	}
}

// process runs the main worklist-lifting loop.
func (r *runner) process(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		v, ok := r.w.pop()
		if !ok {
			return nil
		}

		next := r.lift(v)
		if next.Less(r.pm[v]) {
			// Monotonicity invariant: pm must never decrease. A decrease
			// here means the lift operator or the
			// fixed-point bookkeeping has a bug, not a recoverable input
			// error, so this is fatal.
			panic("spm: progress measure decreased, invariant violated")
		}
		if !r.pm[v].Less(next) {
			continue // unchanged, not a strict increase
		}

		r.pm[v] = next
		r.log.Debug().Int("vertex", v).Str("new", next.String()).Msg("spm: lifted")

		for _, u := range r.g.Predecessors(v) {
			r.w.mark(u)
		}
	}
}

// lift computes the combined lifted value for v over its outgoing edges:
// min over edges if v is owned by player 0, max if owned by player 1. v
// is assumed non-sink (sinks never enter the worklist).
func (r *runner) lift(v int) energy.Credit {
	succs := r.g.Successors(v)
	owner := r.g.Owner(v)

	best := r.liftEdge(succs[0])
	for _, e := range succs[1:] {
		cand := r.liftEdge(e)
		if owner == 1 { // antagonist/maximiser
			if best.Less(cand) {
				best = cand
			}
		} else { // protagonist/minimiser
			if cand.Less(best) {
				best = cand
			}
		}
	}

	return best
}

// liftEdge computes lift_edge(v,w) = clamp(pm[w] - effect(v,w)).
func (r *runner) liftEdge(e energy.Edge) energy.Credit {
	return r.pm[e.To].Sub(e.Effect).Clamp(r.derived.Cutoff)
}

// result packages the final pm into the public Result shape.
func (r *runner) result() *Result {
	n := r.g.NumVertices()
	win := make(map[int]int64, n)
	pm := make(map[int]energy.Credit, n)
	for v := 0; v < n; v++ {
		win[v] = r.pm[v].AsWin()
		pm[v] = r.pm[v]
	}

	return &Result{Win: win, PM: pm, Derived: r.derived}
}
