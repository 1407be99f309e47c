package simulate

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
)

// WriteTranscript plays two games, A first and then B first, and writes every
// board position of both in the single_play.txt layout.
func WriteTranscript(w io.Writer, opts Options, r *ui.Renderer) error {
	rng := rand.New(rand.NewSource(opts.Seed))

	for i, first := range []chess.Turn{chess.Player1, chess.Player2} {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n\n\n\n"); err != nil {
				return err
			}
		}
		if err := writeGame(w, opts, r, rng, first); err != nil {
			return err
		}
	}

	return nil
}

func writeGame(w io.Writer, opts Options, r *ui.Renderer, rng *rand.Rand, first chess.Turn) error {
	a, err := agent.New(opts.PlayerA, opts.BoardSize, rng)
	if err != nil {
		return err
	}
	b, err := agent.New(opts.PlayerB, opts.BoardSize, rng)
	if err != nil {
		return err
	}

	empty, err := chess.NewBoard(opts.BoardSize)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "Player %s goes first!\n%s", first.Name(), r.Draw(empty)); err != nil {
		return err
	}

	var writeErr error
	g, err := Play(opts.BoardSize, [2]agent.Agent{a, b}, first, func(s Step) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(w, "Player %s's turn!\n%s", s.Player.Name(), r.Draw(s.Board))
		}
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	_, err = fmt.Fprintf(w, "Game is over, all boxes have been filled\n%s", g.Summary().Result)
	return err
}
