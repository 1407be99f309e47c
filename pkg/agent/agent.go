package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/HuXin0817/dots-chain/pkg/assess"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

const (
	KindChain  = "chain"
	KindRandom = "random"
	KindGreedy = assess.Name
)

var ErrUnknownKind = errors.New("unknown agent kind")

// Agent picks moves for one side of a game.
type Agent interface {
	Name() string
	// NextMove returns chess.InvalidEdge only when nothing is left to draw.
	NextMove(b *chess.Board) chess.Edge
	// Observe receives the outcome of the agent's own last move.
	Observe(o chess.Outcome)
}

// New builds an agent by kind. rng is only used by random and greedy agents.
func New(kind string, BoardSize int, rng *rand.Rand) (Agent, error) {
	switch kind {
	case KindChain:
		a, err := NewChainAgent(BoardSize)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	switch kind {
	case KindRandom:
		return NewRandomAgent(rng), nil
	case KindGreedy:
		return assess.NewGreedy(rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
