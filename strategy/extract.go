package strategy

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/spm"
)

// Extract returns, for every player-0 vertex in the winning region, a
// successor minimising post-move credit requirement.
//
// For each qualifying v: S = { w in succ(v) : win(w) >= 0 }. S is
// non-empty because win(v) >= 0 implies at least one winning successor
// exists (a consequence of how the progress measure was lifted). opt(v)
// is the w in S minimising win(w) - effect(v,w); ties are broken by the
// smallest vertex index.
//
// Complexity: O(sum of out-degrees of winning player-0 vertices).
func Extract(g *energy.Game, res *spm.Result) (map[int]int, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if res == nil {
		return nil, ErrNilResult
	}

	playerZero := g.PlayerNodes(0)
	opt := make(map[int]int, len(playerZero))

	for _, v := range playerZero {
		win, ok := res.Win[v]
		if !ok || win < 0 {
			continue
		}

		succs := g.Successors(v)
		winning := lo.Filter(succs, func(e energy.Edge, _ int) bool {
			w, ok := res.Win[e.To]

			return ok && w >= 0
		})
		if len(winning) == 0 {
			return nil, fmt.Errorf("%w: vertex %d", ErrInvariantViolation, v)
		}

		best := winning[0]
		bestNeed := res.Win[best.To] - best.Effect
		for _, e := range winning[1:] {
			need := res.Win[e.To] - e.Effect
			if need < bestNeed || (need == bestNeed && e.To < best.To) {
				best, bestNeed = e, need
			}
		}
		opt[v] = best.To
	}

	return opt, nil
}
