package stats

import (
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	games := []chess.Summary{
		{Player1Score: 3, Player2Score: 1, Turns: 10, Result: chess.Player1Win},
		{Player1Score: 2, Player2Score: 2, Turns: 11, Result: chess.Tie},
		{Player1Score: 4, Player2Score: 0, Turns: 9, Result: chess.Player1Win},
		{Player1Score: 0, Player2Score: 4, Turns: 12, Result: chess.Player2Win},
	}

	r, err := Aggregate(games, [2]string{"Winning Player", "Random Player"})
	require.NoError(t, err)

	assert.Equal(t, 4, r.Games)
	assert.Equal(t, 42, r.Turns)
	assert.Equal(t, PlayerStats{Name: "Winning Player", Mean: 2.25, Median: 2.5, Max: 4, Min: 0, Wins: 2}, r.Players[0])
	assert.Equal(t, PlayerStats{Name: "Random Player", Mean: 1.75, Median: 1.5, Max: 4, Min: 0, Wins: 1}, r.Players[1])
	assert.Equal(t, 1, r.Ties)

	want := `
Total number of rounds played: 42
Winning Player average: 2.25
Random Player average: 1.75
Winning Player median: 2.5
Random Player median: 1.5
Winning Player highest score: 4
Random Player highest score: 4
Winning Player lowest score: 0
Random Player lowest score: 0
Winning Player total wins: 2
Random Player total wins: 1
Ties: 1
`
	assert.Equal(t, want, r.String())
}

func TestAggregateEmpty(t *testing.T) {
	_, err := Aggregate(nil, [2]string{"A", "B"})
	assert.ErrorIs(t, err, ErrNoGames)
}
