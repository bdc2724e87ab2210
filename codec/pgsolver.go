package codec

import (
	"io"

	"github.com/egsolver/egsolver/parity"
)

// WritePGSolver writes p in pgsolver textual format. It only makes sense
// for a game already produced by parity.Reduce; there is no pgsolver
// rendering of an energy.Game directly.
func WritePGSolver(w io.Writer, p *parity.Game) error {
	return p.ToPGSolver(w)
}
