package types

import (
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/tally"
)

type CreateGameReq struct {
	BoardSize int    `json:"boardSize" binding:"required,min=1"`
	First     string `json:"first,omitempty"`
	PlayerA   string `json:"playerA,omitempty"`
	PlayerB   string `json:"playerB,omitempty"`
}

type MoveReq struct {
	Move string `json:"move"`
}

type StatsReq struct {
	BoardSize int `form:"boardSize" binding:"required,min=1"`
}

// GameResp describes a game after the request was handled.
type GameResp struct {
	GameUid     string         `json:"gameUid"`
	PlayerA     string         `json:"playerA"`
	PlayerB     string         `json:"playerB"`
	NowPlayer   string         `json:"nowPlayer"`
	Turns       int            `json:"turns"`
	Moves       []string       `json:"moves"`
	Board       chess.Snapshot `json:"board"`
	Summary     *chess.Summary `json:"summary,omitempty"`
	Result      string         `json:"result,omitempty"`
	AgentMoves  []string       `json:"agentMoves,omitempty"`
	LastOutcome *chess.Outcome `json:"lastOutcome,omitempty"`
}

type StatsResp struct {
	tally.Tally
	// Recorded counts the games stored in mongo, when it is configured.
	Recorded *int64 `json:"recorded,omitempty"`
}

type ErrorResp struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Outcome *chess.Outcome `json:"outcome,omitempty"`
}
