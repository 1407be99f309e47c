package agent

import (
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T, size int) chess.Grid {
	t.Helper()
	g, err := chess.NewGrid(size)
	require.NoError(t, err)
	return g
}

func edges(pairs ...[2]chess.Dot) (es []chess.Edge) {
	for _, p := range pairs {
		es = append(es, chess.NewEdge(p[0], p[1]))
	}
	return
}

func TestPlanSingleBox(t *testing.T) {
	p := NewPlan(grid(t, 1))
	assert.Equal(t, edges([2]chess.Dot{0, 1}, [2]chess.Dot{1, 3}, [2]chess.Dot{2, 3}, [2]chess.Dot{0, 2}), p.Moves())
}

func TestPlanTwoByTwo(t *testing.T) {
	p := NewPlan(grid(t, 2))
	want := edges(
		[2]chess.Dot{0, 1}, [2]chess.Dot{1, 2}, [2]chess.Dot{2, 5},
		[2]chess.Dot{0, 3}, [2]chess.Dot{3, 6}, [2]chess.Dot{6, 7},
		[2]chess.Dot{4, 5},
		[2]chess.Dot{1, 4}, [2]chess.Dot{3, 4}, [2]chess.Dot{4, 7}, [2]chess.Dot{5, 8}, [2]chess.Dot{7, 8},
	)
	assert.Equal(t, want, p.Moves())
}

func TestPlanIsPermutation(t *testing.T) {
	for n := 1; n <= 8; n++ {
		g := grid(t, n)
		p := NewPlan(g)
		assert.Equal(t, g.EdgeCount(), p.Len(), "n=%d", n)
		assert.ElementsMatch(t, g.Edges(), p.Moves(), "n=%d", n)
	}
}

func TestPlanStartsWithTopRow(t *testing.T) {
	g := grid(t, 5)
	moves := NewPlan(g).Moves()
	for c := range 5 {
		assert.Equal(t, chess.NewEdge(g.NewDot(0, c), g.NewDot(0, c+1)), moves[c])
	}
	assert.Equal(t, chess.NewEdge(g.NewDot(0, 5), g.NewDot(1, 5)), moves[5])
}
