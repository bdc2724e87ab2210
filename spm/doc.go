// Package spm computes the least progress measure of an energy game via
// the small progress measures algorithm of Brim, Chaloupka, Doyen,
// Gentilini & Raskin (Form Methods Syst Des 38 (2011), 97-118).
//
// Solve performs worklist lifting: every non-sink vertex starts at credit
// 0 (sinks start at ⊤), and is repeatedly re-lifted — combining its
// successors' measures via min (player 0, the protagonist/minimiser) or
// max (player 1, the antagonist/maximiser) — until no vertex can be
// strictly increased. Strict monotonicity on a finite lattice
// ({0,...,Cutoff-1,⊤}^N under the product order) guarantees termination.
//
// The vertex pick order from the dirty worklist is deterministic
// (ascending vertex id), which keeps repeated solves and tests
// reproducible; any order would reach the same fixed point.
package spm

import "errors"

// ErrNilGame indicates a nil *energy.Game was passed to Solve.
var ErrNilGame = errors.New("spm: game is nil")
