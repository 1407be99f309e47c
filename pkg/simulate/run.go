package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/stats"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

type Options struct {
	BoardSize int
	Games     int
	Seed      int64
	Workers   int
	PlayerA   string
	PlayerB   string
	KeepMoves bool
}

// Game is one finished simulated game.
type Game struct {
	Index int
	chess.Summary
	Moves []string
}

type Result struct {
	Options Options
	Games   []Game
	Report  *stats.Report
}

func (r *Result) Summaries() []chess.Summary {
	s := make([]chess.Summary, 0, len(r.Games))
	for _, g := range r.Games {
		s = append(s, g.Summary)
	}
	return s
}

// playOne is deterministic in (opts, index): the game owns its rng, agents
// and first player.
func playOne(opts Options, index int) (Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed + int64(index)))

	a, err := agent.New(opts.PlayerA, opts.BoardSize, rng)
	if err != nil {
		return Game{}, err
	}
	b, err := agent.New(opts.PlayerB, opts.BoardSize, rng)
	if err != nil {
		return Game{}, err
	}

	first := chess.Player1
	if rng.Intn(2) == 1 {
		first = chess.Player2
	}

	var moves []string
	var observers []Observer
	if opts.KeepMoves {
		observers = append(observers, func(s Step) { moves = append(moves, s.Move.String()) })
	}

	g, err := Play(opts.BoardSize, [2]agent.Agent{a, b}, first, observers...)
	if err != nil {
		return Game{}, fmt.Errorf("game %d: %w", index, err)
	}

	return Game{Index: index, Summary: g.Summary(), Moves: moves}, nil
}

// Run plays opts.Games independent games on a worker pool. progress, when not
// nil, is called from a single goroutine after each finished game.
func Run(ctx context.Context, opts Options, progress func(done, total int)) (*Result, error) {
	if opts.Games < 1 {
		return nil, stats.ErrNoGames
	}
	if _, err := chess.NewGrid(opts.BoardSize); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}

	games, err := mr.MapReduce(func(source chan<- int) {
		for i := range opts.Games {
			source <- i
		}
	}, func(index int, writer mr.Writer[Game], cancel func(error)) {
		g, err := playOne(opts, index)
		if err != nil {
			cancel(err)
			return
		}
		writer.Write(g)
	}, func(pipe <-chan Game, writer mr.Writer[[]Game], cancel func(error)) {
		games := make([]Game, opts.Games)
		done := 0
		for g := range pipe {
			games[g.Index] = g
			done++
			if progress != nil {
				progress(done, opts.Games)
			}
		}
		writer.Write(games)
	}, mr.WithWorkers(opts.Workers), mr.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	r := &Result{Options: opts, Games: games}
	if r.Report, err = stats.Aggregate(r.Summaries(), labels(opts.PlayerA, opts.PlayerB)); err != nil {
		return nil, err
	}

	logx.Infof("simulated %d games of %s vs %s on %dx%d, seed %d", opts.Games, opts.PlayerA, opts.PlayerB, opts.BoardSize, opts.BoardSize, opts.Seed)
	return r, nil
}
