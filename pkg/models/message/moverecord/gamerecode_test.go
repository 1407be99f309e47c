package moverecord

import (
	"testing"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/stretchr/testify/assert"
)

func TestNewGameRecode(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := message.GameSummary{
		TimeStamp: message.NewTimeStamp(at),
		GameUid:   "uid",
		PlayerA:   "chain",
		PlayerB:   "random",
		Summary: chess.Summary{
			BoardSize:    2,
			FirstPlayer:  chess.Player2,
			Player1Score: 1,
			Player2Score: 3,
			Turns:        14,
			Result:       chess.Player2Win,
		},
		Moves: []string{"0 1"},
	}

	r := NewGameRecode(s)
	assert.True(t, r.ID.IsZero())
	assert.Equal(t, message.GameUid("uid"), r.GameUid)
	assert.True(t, at.Equal(r.PlayedAt))
	assert.Equal(t, "B", r.FirstPlayer)
	assert.Equal(t, "Player B wins!", r.Winner)
	assert.Equal(t, 14, r.Turns)
	assert.Equal(t, []string{"0 1"}, r.Moves)
}
