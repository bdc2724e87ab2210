package energy

// Edge is a directed edge's destination and effect, as stored in a vertex's
// adjacency list. The source vertex is implicit in the list it belongs to.
type Edge struct {
	To     int   // destination vertex id
	Effect int64 // effect(u,to); may be negative
}

// GameOption configures a Game at construction time.
type GameOption func(g *Game)

// WithOwners sets the owner of every vertex from owners[v]. Any vertex
// whose index is out of range of owners keeps the default owner (0).
// Values other than 0/1 are left to validation at Finalize-free call sites
// (SetOwner performs the actual range check; this bulk helper trusts the
// caller, mirroring the familiar "options trust the caller, methods
// validate" split).
func WithOwners(owners []uint8) GameOption {
	return func(g *Game) {
		n := len(owners)
		if n > g.n {
			n = g.n
		}
		copy(g.owner, owners[:n])
	}
}

// WithLabel attaches an opaque label to vertex v. Unknown/out-of-range v is
// a silent no-op at construction time; callers that need validated labeling
// after construction should use Game.SetLabel.
func WithLabel(v int, label string) GameOption {
	return func(g *Game) {
		if v < 0 || v >= g.n {
			return
		}
		if g.labels == nil {
			g.labels = make(map[int]string, 1)
		}
		g.labels[v] = label
	}
}

// Game is a directed multigraph with N densely-numbered vertices
// [0,N), a per-vertex owner, and a per-edge integer effect.
//
// Game is built incrementally (NewGame + AddEdge/SetOwner/SetLabel) and is
// read-only once handed to the solver (package spm), the strategy
// extractor (package strategy), or the energy-to-parity reduction (package
// parity): none of those packages mutate the Game they are given.
//
// succ[v] and pred[v] give O(1)-amortized successor and predecessor
// iteration, which the progress-measure solver's inner loop relies on.
type Game struct {
	n      int
	owner  []uint8
	labels map[int]string

	succ [][]Edge // succ[v] = outgoing edges of v, in insertion order
	pred [][]int  // pred[v] = vertices u with an edge u->v, in insertion order (may repeat for multi-edges)

	edgeCount int
}

// NewGame allocates a Game with n vertices (ids 0..n-1), all owned by
// player 0 with no edges, then applies opts in order.
//
// Complexity: O(n).
func NewGame(n int, opts ...GameOption) *Game {
	g := &Game{
		n:     n,
		owner: make([]uint8, n),
		succ:  make([][]Edge, n),
		pred:  make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NumVertices returns N, the number of vertices.
func (g *Game) NumVertices() int { return g.n }

// NumEdges returns the number of edges added via AddEdge.
func (g *Game) NumEdges() int { return g.edgeCount }
