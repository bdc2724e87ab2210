package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/egsolver/egsolver/energy"
	"github.com/egsolver/egsolver/spm"
)

// FormatReport renders a human-readable solve summary: vertex/edge count,
// winning region, optimal strategy (if any player-0 vertex won), and
// elapsed time.
func FormatReport(g *energy.Game, res *spm.Result, opt map[int]int, elapsed time.Duration) string {
	stats := g.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "This game has %d nodes and %d edges.\n", stats.Vertices, stats.Edges)
	fmt.Fprintf(&b, "The winning region is: %s\n", formatIntMap(res.Win))

	if len(opt) > 0 {
		moves := make([]string, 0, len(opt))
		for _, v := range sortedKeys(opt) {
			moves = append(moves, fmt.Sprintf("%d-->%d", v, opt[v]))
		}
		fmt.Fprintf(&b, "An optimal strategy is: %s\n", strings.Join(moves, ", "))
	}

	fmt.Fprintf(&b, "It took me %fs to solve this game.\n", elapsed.Seconds())
	b.WriteString("Goodbye.")

	return b.String()
}

// FormatJSON renders {"win": {...}, "opt": {...}, "time": seconds}.
func FormatJSON(g *energy.Game, res *spm.Result, opt map[int]int, elapsed time.Duration) (string, error) {
	doc := struct {
		Win  map[int]int64 `json:"win"`
		Opt  map[int]int   `json:"opt"`
		Time float64       `json:"time"`
	}{Win: res.Win, Opt: opt, Time: elapsed.Seconds()}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// FormatResultDOT renders g decorated with res and opt, the "dot" solve
// result format.
func FormatResultDOT(w io.Writer, g *energy.Game, res *spm.Result, opt map[int]int) error {
	return WriteDOT(w, g, res, opt)
}

func sortedKeys(m map[int]int) []int {
	keys := lo.Keys(m)
	sort.Ints(keys)

	return keys
}

func formatIntMap(m map[int]int64) string {
	keys := lo.Keys(m)
	sort.Ints(keys)

	parts := lo.Map(keys, func(k int, _ int) string {
		return fmt.Sprintf("%d: %d", k, m[k])
	})

	return "{" + strings.Join(parts, ", ") + "}"
}
