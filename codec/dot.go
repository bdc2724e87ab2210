package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/spm"
)

// WriteDOT renders g as a Graphviz digraph named "G". Nodes are shaped by
// owner (box for player 1, diamond for player 0). If res is non-nil,
// vertices are additionally coloured green (winning) or red (losing) and
// labelled "id (credit)" when winning, "id" otherwise. If opt is non-nil,
// edges it names as the chosen move are coloured green.
//
// g is never mutated: the decorations live only in the gographviz.Graph
// this function builds and discards after writing, unlike the Python
// source's EnergyGame.format('dot'), which wrote win/color/label back
// onto the networkx graph's own node and edge attribute dicts.
func WriteDOT(w io.Writer, g *energy.Game, res *spm.Result, opt map[int]int) error {
	dg := gographviz.NewGraph()
	dg.SetName("G")
	dg.SetDir(true)

	n := g.NumVertices()
	for v := 0; v < n; v++ {
		name := strconv.Itoa(v)
		attrs := map[string]string{"shape": shapeFor(g.Owner(v))}

		if label, ok := g.Label(v); ok {
			attrs["label"] = quote(label)
		}
		if res != nil {
			win, ok := res.Win[v]
			if ok && win >= 0 {
				attrs["label"] = quote(fmt.Sprintf("%d (%d)", v, win))
				attrs["color"] = quote("green")
			} else {
				attrs["label"] = quote(strconv.Itoa(v))
				attrs["color"] = quote("red")
			}
		}

		dg.AddNode("G", name, attrs)
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{"effect": strconv.FormatInt(e.Effect, 10)}
		if opt != nil {
			if target, ok := opt[e.From]; ok && target == e.To {
				attrs["color"] = quote("green")
			}
		}

		src, dst := strconv.Itoa(e.From), strconv.Itoa(e.To)
		dg.AddEdge(src, dst, true, attrs)
	}

	_, err := io.WriteString(w, dg.String())

	return err
}

func shapeFor(owner uint8) string {
	if owner == 1 {
		return quote("box")
	}

	return quote("diamond")
}

func quote(s string) string {
	return strconv.Quote(s)
}
