package agent

import (
	"math/rand"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

// RandomAgent draws a uniformly random open edge.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Name() string {
	return KindRandom
}

func (a *RandomAgent) NextMove(b *chess.Board) chess.Edge {
	moves := b.ValidMoves()
	if len(moves) == 0 {
		return chess.InvalidEdge
	}
	return moves[a.rng.Intn(len(moves))]
}

func (a *RandomAgent) Observe(chess.Outcome) {}
