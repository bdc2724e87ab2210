package codec

import (
	"fmt"
	"io"
	"time"

	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/parity"
	"github.com/egsolver/egsolver/spm"
)

// WriteGame renders g in the named game output format: "eg", "dot", or
// "pgsolver". meta is passed through to WriteEG and may be nil. p is the
// parity reduction of g and is required only for "pgsolver" (pgsolver
// output has no meaning before reduction); it may be nil otherwise.
//
// An unrecognised format returns ErrUnsupportedFormat.
func WriteGame(format string, w io.Writer, g *energy.Game, meta *Meta, p *parity.Game) error {
	switch format {
	case "eg":
		return WriteEG(w, g, meta)
	case "dot":
		return WriteDOT(w, g, nil, nil)
	case "pgsolver":
		if p == nil {
			return fmt.Errorf("codec: pgsolver format requires a reduced parity game")
		}

		return WritePGSolver(w, p)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteResult renders a solve outcome in the named result format:
// "report", "json", or "dot".
//
// An unrecognised format returns ErrUnsupportedFormat.
func WriteResult(format string, w io.Writer, g *energy.Game, res *spm.Result, opt map[int]int, elapsed time.Duration) error {
	switch format {
	case "report":
		_, err := io.WriteString(w, FormatReport(g, res, opt, elapsed))

		return err
	case "json":
		s, err := FormatJSON(g, res, opt, elapsed)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)

		return err
	case "dot":
		return FormatResultDOT(w, g, res, opt)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
