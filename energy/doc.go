// Package energy defines the data model for two-player energy games: a
// finite directed graph with dense integer vertex identifiers, a per-vertex
// owner (0 = protagonist/minimiser, 1 = antagonist/maximiser), and a
// per-edge integer effect.
//
// A Game is built once (via NewGame and AddEdge/SetOwner) and is read-only
// from the point of view of every downstream package: the progress-measure
// solver (package spm), the strategy extractor (package strategy), and the
// energy-to-parity reduction (package parity) never mutate the Game they
// are given.
//
// Derived quantities (MaxDrop, Cutoff, Top) are computed from the edge
// effects and are the classical Brim-Chaloupka-Doyen-Gentilini-Raskin
// bounds: any finite energy credit required by a winning vertex is
// strictly below Cutoff.
//
// Credit values (the progress measure itself, and the final "win" result)
// use the Credit type rather than a masked sentinel integer, so that ⊤
// ("no finite credit suffices") can never be confused with a large but
// finite value.
package energy

import "errors"

// Sentinel errors for game construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0,N).
	ErrVertexOutOfRange = errors.New("energy: vertex id out of range")

	// ErrBadOwner indicates an owner value other than 0 or 1.
	ErrBadOwner = errors.New("energy: owner must be 0 or 1")
)
