package message

import (
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// MoveEvent is pushed to every watcher of a game after each accepted move.
type MoveEvent struct {
	TimeStamp TimeStamp      `json:"timeStamp"`
	GameUid   GameUid        `json:"gameUid"`
	Step      int            `json:"step"`
	Player    string         `json:"player"`
	Move      string         `json:"move"`
	Outcome   chess.Outcome  `json:"outcome"`
	Board     chess.Snapshot `json:"board"`
}

func NewMoveEvent(str string) (newMoveEvent MoveEvent, err error) {
	err = sonic.UnmarshalString(str, &newMoveEvent)
	return
}

func (m MoveEvent) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

func (m MoveEvent) Bytes() []byte {
	b, _ := sonic.Marshal(m)
	return b
}
