// Package codec parses and emits the "eg" game description format, renders
// Graphviz DOT, emits the pgsolver textual format (for parity reductions),
// and formats solve results as a report, JSON, or DOT.
//
// None of the functions in this package mutate the *energy.Game they are
// given: DOT and result rendering build a fresh annotated view instead of
// writing attributes back onto the input, unlike the Python source's
// EnergyGame.format, which set node/edge attributes in place.
package codec

import "errors"

// ErrUnsupportedFormat indicates an unknown output format tag was
// requested.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")
