package agent

import "github.com/HuXin0817/dots-chain/pkg/models/chess"

// Plan is the fixed order in which the chain agent draws edges when it has
// nothing to close. It sweeps the board as one long corridor, then appends
// every edge the sweep left open in canonical order.
type Plan struct {
	moves []chess.Edge
}

func NewPlan(g chess.Grid) *Plan {
	k := g.BoardSize
	seen := make(map[chess.Edge]struct{}, g.EdgeCount())
	p := &Plan{moves: make([]chess.Edge, 0, g.EdgeCount())}

	add := func(r1, c1, r2, c2 int) {
		e := chess.NewEdge(g.NewDot(r1, c1), g.NewDot(r2, c2))
		if _, c := seen[e]; c || !g.Adjacent(e) {
			return
		}
		seen[e] = struct{}{}
		p.moves = append(p.moves, e)
	}

	for c := range k {
		add(0, c, 0, c+1)
	}
	add(0, k, 1, k)

	for r := 1; ; r++ {
		if r%2 == 1 {
			for c := k - 2; c >= 1; c-- {
				add(r, c, r, c+1)
			}
			if r == k {
				break
			}
			add(r-1, 0, r, 0)
			add(r, 0, r+1, 0)
		} else {
			for c := range k - 1 {
				add(r, c, r, c+1)
			}
			if r == k {
				break
			}
			add(r-1, k, r, k)
			add(r, k, r+1, k)
		}
	}

	// Seals the top-right box off from the one below it.
	add(1, k-1, 1, k)

	for _, e := range g.Edges() {
		if _, c := seen[e]; !c {
			p.moves = append(p.moves, e)
		}
	}

	return p
}

// Moves returns a copy of the full order.
func (p *Plan) Moves() []chess.Edge {
	return append([]chess.Edge(nil), p.moves...)
}

func (p *Plan) Len() int {
	return len(p.moves)
}
