package chess

import "fmt"

const (
	E        = 16
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// InvalidEdge is returned by players that have nothing left to draw.
const InvalidEdge Edge = -1

// Edge packs a canonical dot pair (Dot1 < Dot2) into one int.
type Edge int

func NewEdge(Dot1, Dot2 Dot) Edge {
	if Dot1 > Dot2 {
		Dot1, Dot2 = Dot2, Dot1
	}
	return Edge((Dot1 << E) + Dot2)
}

func (e Edge) Dot1() Dot {
	return Dot(e >> E)
}

func (e Edge) Dot2() Dot {
	return Dot(e & edgeMask)
}

// String renders the edge in the same "i j" form ParseMove accepts.
func (e Edge) String() string {
	if e == InvalidEdge {
		return "invalid"
	}
	return fmt.Sprintf("%d %d", e.Dot1(), e.Dot2())
}

type EdgeState int8

const (
	EdgeNotAdjacent EdgeState = iota
	EdgeOpen
	EdgeDrawn
)

func (s EdgeState) String() string {
	switch s {
	case EdgeOpen:
		return "open"
	case EdgeDrawn:
		return "drawn"
	}
	return "not adjacent"
}
