// Package parity reduces an energy game to an equivalent parity game of
// bounded priority and size, for cross-checking the progress-measure
// solver against external parity-game tools.
//
// Convention: priority 1 at the top level is winning for player 0 (the
// protagonist); priority 0 at the bottom level is winning for player 1
// (the antagonist). The Python source's comments on this point were
// internally inconsistent; this module fixes and documents one
// convention rather than reproducing the ambiguity.
package parity

import "errors"

// ErrNilGame indicates a nil *energy.Game was passed to Reduce.
var ErrNilGame = errors.New("parity: game is nil")

// ErrNegativeInitialCredit indicates a negative initial_credit was passed
// to Reduce.
var ErrNegativeInitialCredit = errors.New("parity: initial credit must be >= 0")
