package assess

import (
	"math/rand"
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(t *testing.T, size int, moves ...[2]chess.Dot) *chess.Board {
	t.Helper()
	b, err := chess.NewBoard(size)
	require.NoError(t, err)
	for _, m := range moves {
		_, err := b.Move(chess.Player1, m[0], m[1])
		require.NoError(t, err)
	}
	return b
}

func TestBetterEdgesPrefersDoubleCompletion(t *testing.T) {
	b := board(t, 2, [2]chess.Dot{0, 1}, [2]chess.Dot{1, 2}, [2]chess.Dot{0, 3},
		[2]chess.Dot{2, 5}, [2]chess.Dot{3, 4}, [2]chess.Dot{4, 5})

	assert.Equal(t, []chess.Edge{chess.NewEdge(1, 4)}, BetterEdges(b))
	assert.Equal(t, 2, Gain(b, chess.NewEdge(1, 4)))
}

func TestBetterEdgesTakesSingleBox(t *testing.T) {
	b := board(t, 2, [2]chess.Dot{0, 1}, [2]chess.Dot{0, 3}, [2]chess.Dot{1, 4})

	assert.Equal(t, []chess.Edge{chess.NewEdge(3, 4)}, BetterEdges(b))
}

func TestBetterEdgesAvoidsThirdSide(t *testing.T) {
	b := board(t, 1, [2]chess.Dot{0, 1})
	assert.Len(t, BetterEdges(b), 3)

	b = board(t, 1, [2]chess.Dot{0, 1}, [2]chess.Dot{0, 2})
	// Both remaining edges hand the box over, so nothing is filtered.
	assert.Equal(t, []chess.Edge{chess.NewEdge(1, 3), chess.NewEdge(2, 3)}, BetterEdges(b))
	assert.True(t, Hands(b, chess.NewEdge(1, 3)))

	b = board(t, 2, [2]chess.Dot{0, 1}, [2]chess.Dot{0, 3})
	for _, e := range BetterEdges(b) {
		assert.False(t, Hands(b, e), e.String())
	}
	assert.NotContains(t, BetterEdges(b), chess.NewEdge(1, 4))
}

func TestGreedyFinishesGames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 5; n++ {
		g, err := chess.NewGame(n, chess.Player1)
		require.NoError(t, err)
		a := NewGreedy(rng)
		for !g.Finished() {
			o, err := g.Play(a.NextMove(g.Board))
			require.NoError(t, err)
			a.Observe(o)
		}
		assert.Equal(t, n*n, g.ScoreCount())
		assert.Equal(t, chess.InvalidEdge, a.NextMove(g.Board))
	}
}
