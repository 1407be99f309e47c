package svc

import (
	"sync"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/message"
)

const KindHuman = "human"

// Session is one game served over HTTP. All fields are guarded by the lock.
type Session struct {
	sync.Mutex
	GameUid   message.GameUid
	CreatedAt time.Time
	Game      *chess.Game
	// Agents holds the computer player per side, nil for a human side.
	Agents   [2]agent.Agent
	Kinds    [2]string
	Moves    []string
	Recorded bool
	Hub      *Hub
}

func NewSession(g *chess.Game, agents [2]agent.Agent, kinds [2]string) *Session {
	return &Session{
		GameUid:   message.NewGameUid(),
		CreatedAt: time.Now(),
		Game:      g,
		Agents:    agents,
		Kinds:     kinds,
		Hub:       NewHub(),
	}
}

// AgentFor returns nil when t is played by a human.
func (s *Session) AgentFor(t chess.Turn) agent.Agent {
	if t == chess.Player2 {
		return s.Agents[1]
	}
	return s.Agents[0]
}

func (s *Session) Summary() message.GameSummary {
	return message.GameSummary{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   s.GameUid,
		PlayerA:   s.Kinds[0],
		PlayerB:   s.Kinds[1],
		Summary:   s.Game.Summary(),
		Moves:     append([]string(nil), s.Moves...),
	}
}
