package parity

import (
	"fmt"

	"github.com/egsolver/egsolver/energy"
)

// Vertex is a single vertex of the reduced parity game: the pair
// (EnergyVertex, Level), materialised with a dense id and the
// owner/priority/label the reduction assigns it.
type Vertex struct {
	EnergyVertex int
	Level        int64
	Owner        uint8
	Priority     int
	Label        string
}

// Game is the parity game produced by Reduce: dense-id vertices 0..M-1,
// each carrying the (EnergyVertex, Level) pair it was derived from.
type Game struct {
	Vertices []Vertex
	succ     [][]int
	index    map[levelKey]int
}

type levelKey struct {
	v     int
	level int64
}

// Successors returns the parity successors of vertex id.
func (p *Game) Successors(id int) []int { return p.succ[id] }

// IndexOf returns the dense parity id for (energyVertex, level), if any.
func (p *Game) IndexOf(energyVertex int, level int64) (int, bool) {
	id, ok := p.index[levelKey{v: energyVertex, level: level}]

	return id, ok
}

// clampLevel bounds n to [bot,top].
func clampLevel(n, bot, top int64) int64 {
	if n < bot {
		return bot
	}
	if n > top {
		return top
	}

	return n
}

// Reduce builds the parity game equivalent to g with the given
// initialCredit. initialCredit == 0 means "no fixed initial credit" (the
// construction's bot_lvl becomes -top_lvl, i.e.
// bot_lvl = -(initial_credit if > 0 else top_lvl)).
//
// Complexity: O(N*L + M*L) where L = top_lvl-bot_lvl+1, N=|V|, M=|E| — the
// reduction is intended for cross-checking small instances, not as a
// scalable solving path.
func Reduce(g *energy.Game, initialCredit int64) (*Game, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if initialCredit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeInitialCredit, initialCredit)
	}

	n := int64(g.NumVertices())
	var maxAbsEffect int64
	for _, e := range g.Edges() {
		abs := e.Effect
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbsEffect {
			maxAbsEffect = abs
		}
	}

	topLvl := maxAbsEffect*n + 1
	botLvl := -topLvl
	if initialCredit > 0 {
		botLvl = -initialCredit
	}

	p := &Game{index: make(map[levelKey]int)}

	for level := botLvl; level <= topLvl; level++ {
		for v := 0; v < g.NumVertices(); v++ {
			id := len(p.Vertices)
			p.index[levelKey{v: v, level: level}] = id

			var vx Vertex
			vx.EnergyVertex = v
			vx.Level = level
			vx.Label = fmt.Sprintf("%d(%d)", v, level)

			switch level {
			case botLvl:
				vx.Owner = 0
				vx.Priority = 0
			case topLvl:
				vx.Owner = 0
				vx.Priority = 1
			default:
				vx.Owner = g.Owner(v)
				vx.Priority = 1
			}

			p.Vertices = append(p.Vertices, vx)
			p.succ = append(p.succ, nil)
		}
	}

	// Self-loops at the two absorbing levels.
	for v := 0; v < g.NumVertices(); v++ {
		if id, ok := p.IndexOf(v, botLvl); ok {
			p.succ[id] = append(p.succ[id], id)
		}
		if id, ok := p.IndexOf(v, topLvl); ok {
			p.succ[id] = append(p.succ[id], id)
		}
	}

	// Transition edges for every interior level.
	edges := g.Edges()
	for level := botLvl + 1; level < topLvl; level++ {
		for _, e := range edges {
			src, ok := p.IndexOf(e.From, level)
			if !ok {
				continue
			}
			dstLevel := clampLevel(level+e.Effect, botLvl, topLvl)
			dst, ok := p.IndexOf(e.To, dstLevel)
			if !ok {
				continue
			}
			p.succ[src] = append(p.succ[src], dst)
		}
	}

	return p, nil
}
