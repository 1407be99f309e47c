package simulate

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
	"github.com/HuXin0817/dots-chain/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubborn struct{}

func (stubborn) Name() string { return "stubborn" }

func (stubborn) NextMove(*chess.Board) chess.Edge { return chess.NewEdge(0, 1) }

func (stubborn) Observe(chess.Outcome) {}

func TestPlayFinishesEveryBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 5; n++ {
		steps := 0
		g, err := Play(n, [2]agent.Agent{agent.NewRandomAgent(rng), agent.NewRandomAgent(rng)}, chess.Player1, func(Step) { steps++ })
		require.NoError(t, err)

		s := g.Summary()
		assert.Equal(t, n*n, s.Player1Score+s.Player2Score)
		assert.Equal(t, 2*n*(n+1), s.Turns)
		assert.Equal(t, s.Turns, steps)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	_, err := Play(2, [2]agent.Agent{stubborn{}, stubborn{}}, chess.Player1)
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.ErrorIs(t, err, chess.ErrAlreadyDrawn)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{BoardSize: 3, Games: 40, Seed: 99, PlayerA: agent.KindChain, PlayerB: agent.KindRandom, KeepMoves: true}

	opts.Workers = 1
	serial, err := Run(context.Background(), opts, nil)
	require.NoError(t, err)

	opts.Workers = 8
	parallel, err := Run(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, serial.Games, parallel.Games)
	assert.Equal(t, serial.Report, parallel.Report)
	for i, g := range serial.Games {
		assert.Equal(t, i, g.Index)
		assert.Len(t, g.Moves, g.Turns)
	}
}

func TestRunChainBeatsRandom(t *testing.T) {
	var calls, last int
	r, err := Run(context.Background(), Options{
		BoardSize: 4, Games: 100, Seed: 1, Workers: 4,
		PlayerA: agent.KindChain, PlayerB: agent.KindRandom,
	}, func(done, total int) {
		calls++
		last = done
		assert.Equal(t, 100, total)
	})
	require.NoError(t, err)

	assert.Equal(t, 100, calls)
	assert.Equal(t, 100, last)
	assert.Equal(t, 100, r.Report.Games)
	assert.Equal(t, "Winning Player", r.Report.Players[0].Name)
	assert.Greater(t, r.Report.Players[0].Wins, 50)
	assert.Equal(t, 100, r.Report.Players[0].Wins+r.Report.Players[1].Wins+r.Report.Ties)
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{BoardSize: 3, PlayerA: agent.KindRandom, PlayerB: agent.KindRandom}, nil)
	assert.ErrorIs(t, err, stats.ErrNoGames)

	_, err = Run(context.Background(), Options{BoardSize: 0, Games: 1}, nil)
	assert.ErrorIs(t, err, chess.ErrBoardSize)

	_, err = Run(context.Background(), Options{BoardSize: 2, Games: 3, PlayerA: "oracle", PlayerB: agent.KindRandom}, nil)
	assert.ErrorIs(t, err, agent.ErrUnknownKind)
}

func TestRandomVersusRandomLabels(t *testing.T) {
	r, err := Run(context.Background(), Options{BoardSize: 2, Games: 10, PlayerA: agent.KindRandom, PlayerB: agent.KindRandom}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Random Player A", r.Report.Players[0].Name)
	assert.Equal(t, "Random Player B", r.Report.Players[1].Name)
}

func TestWriteTranscript(t *testing.T) {
	var sb strings.Builder
	err := WriteTranscript(&sb, Options{BoardSize: 1, Seed: 5, PlayerA: agent.KindChain, PlayerB: agent.KindRandom}, ui.NewRenderer(false))
	require.NoError(t, err)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "Player A goes first!\n 0   1\n      \n 2   3\nScore is A:0 and B:0\nPlayer A's turn!\n"))
	assert.Contains(t, out, "\n\n\n\n\nPlayer B goes first!\n")
	assert.Equal(t, 8, strings.Count(out, "'s turn!"))
	assert.Equal(t, 2, strings.Count(out, "Game is over, all boxes have been filled\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}
