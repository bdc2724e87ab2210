// Package egsolver solves two-player energy games on finite directed
// graphs via the small progress measures algorithm.
//
// An energy game is played on a directed graph whose vertices are split
// between a protagonist (player 0, wants a credit that never runs out)
// and an antagonist (player 1, the opponent); each edge carries an
// integer effect on a credit counter, and the protagonist wins a vertex
// if they can keep the counter non-negative forever.
//
// Package layout:
//
//	energy/       — the game model: Game, Edge, Credit, and the derived
//	                Cutoff/Top/maxdrop bounds.
//	energymatrix/ — a dense gonum matrix view of a Game, used only to
//	                cross-check maxdrop independently.
//	spm/          — Solve: the small progress measures fixed-point solver.
//	strategy/     — Extract: recovers the protagonist's optimal positional
//	                strategy from a solved measure.
//	parity/       — Reduce: reduces an energy game to a bounded-priority
//	                parity game, for cross-checking against external tools.
//	codec/        — parses and emits the "eg" JSON format, Graphviz DOT,
//	                pgsolver text, and solve-result reports.
package egsolver
