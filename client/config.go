package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/model"
)

var (
	AI1       = model.Off
	AI2       = model.On
	Color     = model.On
	BoardSize = flag.Int("BoardSize", 3, "boxes per row")
	Seed      = flag.Int64("Seed", time.Now().UnixNano(), "seed for the first player and random agents")
	Kind      = flag.String("Kind", agent.KindChain, "agent kind for computer players: chain, random or greedy")
)

func init() {
	flag.Var(&AI1, "AI1", "let the computer play A (On/Off)")
	flag.Var(&AI2, "AI2", "let the computer play B (On/Off)")
	flag.Var(&Color, "Color", "colour box owners (On/Off)")
}
