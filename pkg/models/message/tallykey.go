package message

import (
	"fmt"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

const (
	FieldPlayer1Win = "player1Win"
	FieldPlayer2Win = "player2Win"
	FieldTie        = "tie"
	FieldGames      = "games"
	FieldTurns      = "turns"
)

// TallyKey names the redis hashes that hold results for one board size.
type TallyKey int

func (t TallyKey) ResultKey() string {
	return fmt.Sprintf("dots-chain:tally:%d", t)
}

func (t TallyKey) RunKey() string {
	return fmt.Sprintf("dots-chain:runs:%d", t)
}

func (t TallyKey) LockName() string {
	return fmt.Sprintf("dots-chain:lock:%d", t)
}

// ResultField is the hash field counting games that ended with r.
func ResultField(r chess.Result) string {
	switch r {
	case chess.Player1Win:
		return FieldPlayer1Win
	case chess.Player2Win:
		return FieldPlayer2Win
	}
	return FieldTie
}
