package assess

import (
	"math/rand"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

const Name = "greedy"

// Greedy plays a random edge among BetterEdges. It looks one move ahead and no
// further.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(rng *rand.Rand) *Greedy {
	return &Greedy{rng: rng}
}

func (g *Greedy) Name() string {
	return Name
}

func (g *Greedy) NextMove(b *chess.Board) chess.Edge {
	edges := BetterEdges(b)
	if len(edges) == 0 {
		return chess.InvalidEdge
	}
	return edges[g.rng.Intn(len(edges))]
}

func (g *Greedy) Observe(chess.Outcome) {}
