// Package strategy extracts an optimal positional strategy for the
// protagonist (player 0) from a computed progress measure.
//
// Extract is only meaningful after package spm's Solve has completed. It
// reads only the Win map of the result: a vertex absent from it is treated
// as losing, so an empty Result yields an empty strategy. The one
// inconsistency it detects is a player-0 vertex marked winning with no
// winning successor, reported as ErrInvariantViolation; other
// inconsistencies in a hand-built measure are not detected.
package strategy

import "errors"

// ErrInvariantViolation indicates the strategy extractor found no winning
// successor for a vertex the measure claims is winning — the measure was
// inconsistent, which is a bug, never a recoverable input error.
var ErrInvariantViolation = errors.New("strategy: no winning successor for a vertex claimed winning")

// ErrNilGame indicates a nil *energy.Game was passed to Extract.
var ErrNilGame = errors.New("strategy: game is nil")

// ErrNilResult indicates a nil *spm.Result was passed to Extract.
var ErrNilResult = errors.New("strategy: result is nil")
