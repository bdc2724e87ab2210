package energy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egsolver/egsolver/energy"
)

func TestNewGame_Defaults(t *testing.T) {
	g := energy.NewGame(3)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
	for v := 0; v < 3; v++ {
		require.EqualValues(t, 0, g.Owner(v))
		require.True(t, g.IsSink(v))
	}
}

func TestAddEdge_SuccessorsAndPredecessors(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, -3))
	require.NoError(t, g.AddEdge(1, 1, 1)) // self-loop

	require.Equal(t, []energy.Edge{{To: 1, Effect: 5}, {To: 2, Effect: -3}}, g.Successors(0))
	require.ElementsMatch(t, []int{0}, g.Predecessors(1)[:1])
	require.Contains(t, g.Predecessors(1), 1) // self-loop registers 1 as its own predecessor too
	require.False(t, g.IsSink(0))
	require.True(t, g.IsSink(2))
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g := energy.NewGame(2)
	require.ErrorIs(t, g.AddEdge(2, 0, 1), energy.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(0, -1, 1), energy.ErrVertexOutOfRange)
}

func TestSetOwner_Validation(t *testing.T) {
	g := energy.NewGame(1)
	require.ErrorIs(t, g.SetOwner(0, 2), energy.ErrBadOwner)
	require.ErrorIs(t, g.SetOwner(5, 1), energy.ErrVertexOutOfRange)
	require.NoError(t, g.SetOwner(0, 1))
	require.EqualValues(t, 1, g.Owner(0))
}

func TestMaxDrop(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.AddEdge(0, 1, -4))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.EqualValues(t, 4, g.MaxDrop(0)) // best-case edge is -4
	require.EqualValues(t, 0, g.MaxDrop(1)) // sink
}

func TestMaxDropTotal(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.AddEdge(0, 1, -4))
	require.NoError(t, g.AddEdge(1, 2, -9))
	require.NoError(t, g.AddEdge(2, 0, 2))

	require.EqualValues(t, 4, g.MaxDrop(0))
	require.EqualValues(t, 9, g.MaxDrop(1))
	require.EqualValues(t, 0, g.MaxDrop(2))
	require.EqualValues(t, 9, g.MaxDropTotal())
}

func TestMaxDropTotal_NoEdges(t *testing.T) {
	g := energy.NewGame(2)
	require.EqualValues(t, 0, g.MaxDropTotal())
}

func TestNewGame_WithOwnersAndWithLabel(t *testing.T) {
	g := energy.NewGame(3,
		energy.WithOwners([]uint8{1, 0, 1}),
		energy.WithLabel(0, "start"),
		energy.WithLabel(2, "goal"),
	)

	require.EqualValues(t, 1, g.Owner(0))
	require.EqualValues(t, 0, g.Owner(1))
	require.EqualValues(t, 1, g.Owner(2))

	label, ok := g.Label(0)
	require.True(t, ok)
	require.Equal(t, "start", label)

	label, ok = g.Label(2)
	require.True(t, ok)
	require.Equal(t, "goal", label)

	_, ok = g.Label(1)
	require.False(t, ok)
}

func TestWithOwners_ShorterThanN(t *testing.T) {
	// Vertices beyond len(owners) keep the default owner (0).
	g := energy.NewGame(4, energy.WithOwners([]uint8{1, 1}))
	require.EqualValues(t, 1, g.Owner(0))
	require.EqualValues(t, 1, g.Owner(1))
	require.EqualValues(t, 0, g.Owner(2))
	require.EqualValues(t, 0, g.Owner(3))
}

func TestWithLabel_OutOfRangeIsNoOp(t *testing.T) {
	g := energy.NewGame(1, energy.WithLabel(5, "unreachable"))
	_, ok := g.Label(5)
	require.False(t, ok)
}

func TestComputeDerived_AllNegativeEffects(t *testing.T) {
	// Open Question 1: an all-negative-effect instance must not yield Top < Cutoff.
	g := energy.NewGame(1)
	require.NoError(t, g.AddEdge(0, 0, -1))
	d := energy.ComputeDerived(g)
	require.GreaterOrEqual(t, d.Top, d.Cutoff)
}

func TestCredit_Ordering(t *testing.T) {
	a := energy.FiniteCredit(3)
	b := energy.FiniteCredit(5)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Less(energy.TopCredit))
	require.False(t, energy.TopCredit.Less(a))
	require.False(t, energy.TopCredit.Less(energy.TopCredit))
}

func TestCredit_SubAndClamp(t *testing.T) {
	c := energy.FiniteCredit(10)
	require.Equal(t, energy.TopCredit, energy.TopCredit.Sub(7))

	lifted := c.Sub(-2) // 10 - (-2) = 12
	clamped := lifted.Clamp(11)
	require.True(t, clamped.IsTop())

	lifted2 := c.Sub(3) // 10 - 3 = 7
	clamped2 := lifted2.Clamp(11)
	v, ok := clamped2.Value()
	require.True(t, ok)
	require.EqualValues(t, 7, v)
}

func TestCredit_AsWin(t *testing.T) {
	require.EqualValues(t, -1, energy.TopCredit.AsWin())
	require.EqualValues(t, 4, energy.FiniteCredit(4).AsWin())
}

func TestClone_IsIndependent(t *testing.T) {
	g := energy.NewGame(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	clone := g.Clone()
	require.NoError(t, clone.AddEdge(1, 0, 2))
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 2, clone.NumEdges())
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := energy.NewGame(3)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	got := g.Edges()
	require.Equal(t, []energy.Triple{
		{From: 0, To: 1, Effect: 2},
		{From: 0, To: 2, Effect: 3},
		{From: 1, To: 2, Effect: 1},
	}, got)
}
