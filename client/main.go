package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	flag.Parse()
	logx.DisableStat()

	var players [2]agent.Agent
	for i, on := range []bool{bool(AI1), bool(AI2)} {
		if !on {
			continue
		}
		a, err := agent.New(*Kind, *BoardSize, rand.New(rand.NewSource(*Seed+int64(i)+1)))
		logx.Must(err)
		players[i] = a
	}

	s, err := Run(os.Stdin, os.Stdout, Options{
		BoardSize: *BoardSize,
		First:     chess.NoPlayer,
		Seed:      *Seed,
		Players:   players,
		Renderer:  ui.NewRenderer(bool(Color)),
	})
	if err != nil {
		logx.Errorf("game aborted: %v", err)
		os.Exit(1)
	}

	logx.Infof("%dx%d game over after %d turns, A:%d B:%d", s.BoardSize, s.BoardSize, s.Turns, s.Player1Score, s.Player2Score)
}
