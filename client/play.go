package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
)

type Options struct {
	BoardSize int
	// First is drawn from Seed when it is chess.NoPlayer.
	First    chess.Turn
	Seed     int64
	Players  [2]agent.Agent
	Renderer *ui.Renderer
}

var rejection = map[chess.OutcomeKind]string{
	chess.InvalidFormat: "Invalid input format, please try again.\n",
	chess.AlreadyDrawn:  "A move cannot be made between these dots: they are already connected\n",
	chess.NotAdjacent:   "A move cannot be made between these dots: they are not adjacent\n",
}

// Run plays one game on the terminal. Nil players read their moves from in.
func Run(in io.Reader, out io.Writer, opts Options) (chess.Summary, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	first := opts.First
	if first == chess.NoPlayer {
		first = chess.Player1
		if rng.Intn(2) == 1 {
			first = chess.Player2
		}
	}

	g, err := chess.NewGame(opts.BoardSize, first)
	if err != nil {
		return chess.Summary{}, err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Player %s goes first!\n\n", first.Name())
	fmt.Fprintln(out, opts.Renderer.Draw(g.Board))

	for !g.Finished() {
		mover := g.NowPlayer
		p := opts.Players[0]
		if mover == chess.Player2 {
			p = opts.Players[1]
		}

		fmt.Fprintf(out, "Player %s's turn: ", mover.Name())

		var o chess.Outcome
		if p != nil {
			e := p.NextMove(g.Board)
			fmt.Fprintln(out, e)
			if o, err = g.Play(e); err != nil {
				return g.Summary(), fmt.Errorf("%s: %w", p.Name(), err)
			}
			p.Observe(o)
		} else {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return g.Summary(), err
				}
				return g.Summary(), io.ErrUnexpectedEOF
			}
			if o, err = g.PlayString(scanner.Text()); err != nil {
				fmt.Fprintln(out, rejection[o.Kind])
				continue
			}
		}

		fmt.Fprintln(out, opts.Renderer.Draw(g.Board))
	}

	s := g.Summary()
	fmt.Fprintln(out, "Game is over, all boxes have been filled")
	fmt.Fprintln(out, s.Result)
	return s, nil
}
