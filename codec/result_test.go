package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/egsolver/egsolver/codec"
	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/spm"
	"github.com/egsolver/egsolver/strategy"
)

func TestFormatReport_AndJSON(t *testing.T) {
	g := energy.NewGame(1)
	require.NoError(t, g.AddEdge(0, 0, 1))

	res, err := spm.Solve(context.Background(), g)
	require.NoError(t, err)
	opt, err := strategy.Extract(g, res)
	require.NoError(t, err)

	report := codec.FormatReport(g, res, opt, 250*time.Millisecond)
	require.Contains(t, report, "This game has 1 nodes and 1 edges.")
	require.Contains(t, report, "Goodbye.")

	js, err := codec.FormatJSON(g, res, opt, 250*time.Millisecond)
	require.NoError(t, err)
	require.Contains(t, js, `"win"`)
	require.Contains(t, js, `"time"`)
}
