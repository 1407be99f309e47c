package agent

import "github.com/HuXin0817/dots-chain/pkg/models/chess"

type Direction int8

const (
	Backward Direction = iota
	Forward
)

// ChainAgent sweeps the board along a fixed corridor and, once a box becomes
// closable, keeps closing neighbouring boxes in both directions for as long
// as it keeps scoring.
type ChainAgent struct {
	grid  chess.Grid
	plan  *Plan
	index *BoxIndex

	moves     []chess.Edge
	following bool
	anchor    int
	last      int
	direction Direction
}

func NewChainAgent(BoardSize int) (*ChainAgent, error) {
	g, err := chess.NewGrid(BoardSize)
	if err != nil {
		return nil, err
	}

	a := &ChainAgent{
		grid:  g,
		plan:  NewPlan(g),
		index: NewBoxIndex(g),
	}
	a.Reset()
	return a, nil
}

func (a *ChainAgent) Name() string {
	return KindChain
}

// Reset prepares the agent for a new game on an empty board.
func (a *ChainAgent) Reset() {
	a.moves = a.plan.Moves()
	a.index.Reset()
	a.following = false
	a.anchor, a.last = -1, -1
	a.direction = Backward
}

// Following reports whether the agent is in the middle of a chain.
func (a *ChainAgent) Following() bool {
	return a.following
}

func (a *ChainAgent) NextMove(b *chess.Board) chess.Edge {
	a.prune(b)
	a.index.Refresh(b)

	if a.following {
		if e, ok := a.continueChain(b); ok {
			return e
		}
	}

	for i := range a.index.Len() {
		if a.index.Eligible(b, i) {
			a.following = true
			a.anchor, a.last = i, i
			a.direction = Backward
			return a.index.At(i).FinalMove
		}
	}

	if len(a.moves) > 0 {
		e := a.moves[0]
		a.moves = a.moves[1:]
		return e
	}

	if moves := b.ValidMoves(); len(moves) > 0 {
		return moves[0]
	}
	return chess.InvalidEdge
}

// Observe ends the current chain unless the last move scored.
func (a *ChainAgent) Observe(o chess.Outcome) {
	if o.Kind != chess.Scored {
		a.following = false
	}
}

func (a *ChainAgent) continueChain(b *chess.Board) (chess.Edge, bool) {
	if a.direction == Backward {
		if a.index.Eligible(b, a.last-1) {
			a.last--
			return a.index.At(a.last).FinalMove, true
		}
		a.direction = Forward
		a.last = a.anchor
	}

	if a.index.Eligible(b, a.last+1) {
		a.last++
		return a.index.At(a.last).FinalMove, true
	}

	a.following = false
	return chess.InvalidEdge, false
}

func (a *ChainAgent) prune(b *chess.Board) {
	moves := a.moves[:0]
	for _, e := range a.moves {
		if b.State(e) == chess.EdgeOpen {
			moves = append(moves, e)
		}
	}
	a.moves = moves
}
