package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid" json:"gameUid"`
	PlayedAt     time.Time       `bson:"playedAt" json:"playedAt"`
	BoardSize    int             `bson:"boardSize" json:"boardSize"`
	PlayerA      string          `bson:"playerA" json:"playerA"`
	PlayerB      string          `bson:"playerB" json:"playerB"`
	FirstPlayer  string          `bson:"firstPlayer" json:"firstPlayer"`
	Player1Score int             `bson:"player1Score" json:"player1Score"`
	Player2Score int             `bson:"player2Score" json:"player2Score"`
	Turns        int             `bson:"turns" json:"turns"`
	Winner       string          `bson:"winner" json:"winner"`
	Moves        []string        `bson:"moves,omitempty" json:"moves,omitempty"`
}

func NewGameRecode(s message.GameSummary) *GameRecode {
	return &GameRecode{
		GameUid:      s.GameUid,
		PlayedAt:     s.TimeStamp.Time(),
		BoardSize:    s.BoardSize,
		PlayerA:      s.PlayerA,
		PlayerB:      s.PlayerB,
		FirstPlayer:  s.FirstPlayer.Name(),
		Player1Score: s.Player1Score,
		Player2Score: s.Player2Score,
		Turns:        s.Turns,
		Winner:       s.Result.String(),
		Moves:        s.Moves,
	}
}
