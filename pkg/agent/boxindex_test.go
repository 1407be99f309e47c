package agent

import (
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBoxIndexPartitions(t *testing.T) {
	for n := 1; n <= 8; n++ {
		g := grid(t, n)
		idx := NewBoxIndex(g)
		require.Equal(t, g.BoxCount(), idx.Len())
		assert.Equal(t, g.BoxAt(0, n-1), idx.At(0).Box, "corridor starts top-right, n=%d", n)

		for i := range idx.Len() {
			bc := idx.At(i)
			assert.Equal(t, i, idx.Position(bc.Box))
			assert.Equal(t, Inert, bc.State)

			walls := g.BoxEdges(bc.Box)
			got := []chess.Edge{bc.Setup[0], bc.Setup[1], bc.Closing[0], bc.Closing[1]}
			assert.ElementsMatch(t, walls[:], got, "box %d n=%d", bc.Box, n)

			if i > 0 {
				prev := idx.At(i - 1).Box
				dr := abs(g.Row(chess.Dot(prev)) - g.Row(chess.Dot(bc.Box)))
				dc := abs(g.Col(chess.Dot(prev)) - g.Col(chess.Dot(bc.Box)))
				assert.Equal(t, 1, dr+dc, "boxes %d and %d are not neighbours", prev, bc.Box)
			}
		}
	}
}

func TestBoxIndexRuleTable(t *testing.T) {
	g := grid(t, 3)
	idx := NewBoxIndex(g)
	at := func(r, c int) BoxClass { return idx.At(idx.Position(g.BoxAt(r, c))) }
	wall := func(r, c, side int) chess.Edge { return g.BoxEdges(g.BoxAt(r, c))[side] }

	cases := []struct {
		r, c           int
		setup, closing [2]int
	}{
		{0, 2, [2]int{chess.Top, chess.Right}, [2]int{chess.Left, chess.Bottom}},
		{0, 1, [2]int{chess.Top, chess.Bottom}, [2]int{chess.Left, chess.Right}},
		{0, 0, [2]int{chess.Top, chess.Left}, [2]int{chess.Right, chess.Bottom}},
		{1, 0, [2]int{chess.Left, chess.Bottom}, [2]int{chess.Top, chess.Right}},
		{1, 2, [2]int{chess.Top, chess.Right}, [2]int{chess.Left, chess.Bottom}},
		{2, 2, [2]int{chess.Right, chess.Bottom}, [2]int{chess.Top, chess.Left}},
		{2, 0, [2]int{chess.Top, chess.Left}, [2]int{chess.Right, chess.Bottom}},
	}

	for _, c := range cases {
		bc := at(c.r, c.c)
		assert.Equal(t, [2]chess.Edge{wall(c.r, c.c, c.setup[0]), wall(c.r, c.c, c.setup[1])}, bc.Setup, "box (%d,%d)", c.r, c.c)
		assert.Equal(t, [2]chess.Edge{wall(c.r, c.c, c.closing[0]), wall(c.r, c.c, c.closing[1])}, bc.Closing, "box (%d,%d)", c.r, c.c)
	}
}

func TestBoxIndexLifecycle(t *testing.T) {
	b, err := chess.NewBoard(3)
	require.NoError(t, err)
	idx := NewBoxIndex(b.Grid)
	i := idx.Position(b.BoxAt(1, 1))
	walls := b.BoxEdges(b.BoxAt(1, 1))

	draw := func(e chess.Edge) {
		_, err := b.Move(chess.Player1, e.Dot1(), e.Dot2())
		require.NoError(t, err)
		idx.Refresh(b)
	}

	draw(walls[chess.Left])
	assert.Equal(t, Inert, idx.At(i).State, "closing edge before setup")
	draw(walls[chess.Top])
	assert.Equal(t, Inert, idx.At(i).State)
	draw(walls[chess.Bottom])
	assert.Equal(t, Closable, idx.At(i).State)
	assert.Equal(t, walls[chess.Right], idx.At(i).FinalMove)
	assert.True(t, idx.Eligible(b, i))

	draw(walls[chess.Right])
	assert.True(t, b.Completed(b.BoxAt(1, 1)))
	assert.False(t, idx.Eligible(b, i))

	idx.Reset()
	assert.Equal(t, Inert, idx.At(i).State)
	assert.Equal(t, chess.InvalidEdge, idx.At(i).FinalMove)
}

func TestBoxIndexGuards(t *testing.T) {
	b, err := chess.NewBoard(2)
	require.NoError(t, err)
	idx := NewBoxIndex(b.Grid)

	assert.Panics(t, func() { idx.At(-1) })
	assert.Panics(t, func() { idx.At(4) })
	assert.Panics(t, func() { idx.Position(b.BoxAt(0, 2)) })
	assert.False(t, idx.Eligible(b, -1))
	assert.False(t, idx.Eligible(b, 4))
}
