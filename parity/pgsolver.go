package parity

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ToPGSolver writes p in the classical pgsolver textual format: a
// `parity N;` header followed by one
// `id priority owner succ1,succ2,... "label";` line per vertex.
//
// Vertices are emitted in ascending dense-id order, a deliberate deviation
// from the Python source (which iterated networkx's insertion order)
// made for reproducibility.
func (p *Game) ToPGSolver(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "parity %d;\n", len(p.Vertices)); err != nil {
		return err
	}

	var b strings.Builder
	for id, vx := range p.Vertices {
		b.Reset()
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(vx.Priority))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(vx.Owner)))
		b.WriteByte(' ')
		for i, s := range p.succ[id] {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(s))
		}
		b.WriteString(" \"")
		b.WriteString(vx.Label)
		b.WriteString("\";\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}
