package simulate

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

var ErrIllegalMove = errors.New("agent produced an illegal move")

// Step is one accepted move, seen after it was applied.
type Step struct {
	Turn    int
	Player  chess.Turn
	Move    chess.Edge
	Outcome chess.Outcome
	Board   *chess.Board
}

type Observer func(Step)

// Play runs one game between players[0] (A) and players[1] (B) until every box
// is taken.
func Play(BoardSize int, players [2]agent.Agent, first chess.Turn, observers ...Observer) (*chess.Game, error) {
	g, err := chess.NewGame(BoardSize, first)
	if err != nil {
		return nil, err
	}

	for !g.Finished() {
		mover := g.NowPlayer
		p := players[0]
		if mover == chess.Player2 {
			p = players[1]
		}

		e := p.NextMove(g.Board)
		o, err := g.Play(e)
		if err != nil {
			return g, fmt.Errorf("%w: %s played %s on turn %d: %w", ErrIllegalMove, p.Name(), e, g.Turns+1, err)
		}
		p.Observe(o)

		for _, observe := range observers {
			observe(Step{Turn: g.Turns, Player: mover, Move: e, Outcome: o, Board: g.Board})
		}
	}

	return g, nil
}

// Label is the report name of an agent kind.
func Label(kind string) string {
	switch kind {
	case agent.KindChain:
		return "Winning Player"
	case agent.KindRandom:
		return "Random Player"
	case agent.KindGreedy:
		return "Greedy Player"
	}
	return kind
}

func labels(a, b string) [2]string {
	la, lb := Label(a), Label(b)
	if la == lb {
		return [2]string{la + " A", lb + " B"}
	}
	return [2]string{la, lb}
}
