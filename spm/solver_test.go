package spm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/spm"
)

func mustSolve(t *testing.T, g *energy.Game) *spm.Result {
	t.Helper()
	res, err := spm.Solve(context.Background(), g)
	require.NoError(t, err)

	return res
}

// S1. Single positive self-loop.
func TestS1_PositiveSelfLoop(t *testing.T) {
	g := energy.NewGame(1)
	require.NoError(t, g.AddEdge(0, 0, 1))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: 0}, res.Win)
}

// S2. Single negative self-loop.
func TestS2_NegativeSelfLoop(t *testing.T) {
	g := energy.NewGame(1)
	require.NoError(t, g.AddEdge(0, 0, -1))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: -1}, res.Win)
}

// S3. Sink.
func TestS3_Sink(t *testing.T) {
	g := energy.NewGame(2)
	require.NoError(t, g.AddEdge(0, 1, 0))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: -1, 1: -1}, res.Win)
}

// S4. Deterministic cycle of cost -1 over two nodes.
func TestS4_TwoNodeCycle(t *testing.T) {
	g := energy.NewGame(2)
	require.NoError(t, g.AddEdge(0, 1, -1))
	require.NoError(t, g.AddEdge(1, 0, 2))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: 1, 1: 0}, res.Win)
}

// S5. Antagonist choice.
func TestS5_AntagonistChoice(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.SetOwner(0, 1))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, -3))
	require.NoError(t, g.AddEdge(1, 1, 1))
	require.NoError(t, g.AddEdge(2, 2, -1))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: -1, 1: 0, 2: -1}, res.Win)
}

// S6. Protagonist choice (same graph as S5, owner(0)=0).
func TestS6_ProtagonistChoice(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, -3))
	require.NoError(t, g.AddEdge(1, 1, 1))
	require.NoError(t, g.AddEdge(2, 2, -1))
	res := mustSolve(t, g)
	require.Equal(t, map[int]int64{0: 0, 1: 0, 2: -1}, res.Win)
}

func TestSolve_NilGame(t *testing.T) {
	_, err := spm.Solve(context.Background(), nil)
	require.ErrorIs(t, err, spm.ErrNilGame)
}

func TestSolve_ContextCancelled(t *testing.T) {
	g := energy.NewGame(1)
	require.NoError(t, g.AddEdge(0, 0, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := spm.Solve(ctx, g)
	require.Nil(t, res)
	require.ErrorIs(t, err, context.Canceled)
}

// Invariant 1 (fixed point): after Solve, no vertex can be strictly lifted
// further: every non-sink vertex's measure equals the lift recomputed from
// its successors' measures. A second Solve also yields the identical
// result (invariant 4).
func TestInvariant_FixedPoint(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.SetOwner(0, 1))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, -3))
	require.NoError(t, g.AddEdge(1, 1, 1))
	require.NoError(t, g.AddEdge(2, 2, -1))

	res1 := mustSolve(t, g)
	for v := 0; v < g.NumVertices(); v++ {
		if g.IsSink(v) {
			continue
		}
		var lifted energy.Credit
		for i, e := range g.Successors(v) {
			cand := res1.PM[e.To].Sub(e.Effect).Clamp(res1.Derived.Cutoff)
			if i == 0 || (g.Owner(v) == 1 && lifted.Less(cand)) || (g.Owner(v) == 0 && cand.Less(lifted)) {
				lifted = cand
			}
		}
		require.Equalf(t, res1.PM[v], lifted, "vertex %d", v)
	}

	res2 := mustSolve(t, g)
	require.Equal(t, res1.Win, res2.Win) // invariant 4: determinism
	require.Equal(t, res1.PM, res2.PM)
}

// Invariant 3 (top absorption): a vertex owned by player 0 all of whose
// successors are losing must itself be losing.
func TestInvariant_TopAbsorption(t *testing.T) {
	g := energy.NewGame(2)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 1, -1)) // 1's only successor is itself, losing
	res := mustSolve(t, g)
	require.EqualValues(t, -1, res.Win[1])
	require.EqualValues(t, -1, res.Win[0])
}
