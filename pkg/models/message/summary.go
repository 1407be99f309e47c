package message

import (
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// GameSummary is a finished game as it leaves the process.
type GameSummary struct {
	TimeStamp TimeStamp `json:"timeStamp"`
	GameUid   GameUid   `json:"gameUid"`
	PlayerA   string    `json:"playerA"`
	PlayerB   string    `json:"playerB"`
	chess.Summary
	Moves []string `json:"moves,omitempty"`
}

func NewGameSummary(str string) (newGameSummary GameSummary, err error) {
	err = sonic.UnmarshalString(str, &newGameSummary)
	return
}

func (s GameSummary) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}
