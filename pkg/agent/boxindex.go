package agent

import (
	"fmt"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

type BoxState int8

const (
	Inert BoxState = iota
	Setup
	Closable
)

func (s BoxState) String() string {
	switch s {
	case Setup:
		return "Setup"
	case Closable:
		return "Closable"
	}
	return "Inert"
}

// BoxClass splits the walls of a box into the pair the sweep draws first and
// the pair that closes it.
type BoxClass struct {
	Box       chess.Box
	Setup     [2]chess.Edge
	Closing   [2]chess.Edge
	State     BoxState
	FinalMove chess.Edge
}

func (bc *BoxClass) refresh(b *chess.Board) {
	if b.Completed(bc.Box) {
		return
	}

	if bc.State == Inert && b.Drawn(bc.Setup[0]) && b.Drawn(bc.Setup[1]) {
		bc.State = Setup
	}

	if bc.State == Setup {
		switch {
		case b.Drawn(bc.Closing[0]):
			bc.State, bc.FinalMove = Closable, bc.Closing[1]
		case b.Drawn(bc.Closing[1]):
			bc.State, bc.FinalMove = Closable, bc.Closing[0]
		}
	}
}

// BoxIndex holds every box of the board in corridor order: from the top-right
// box, right to left across even box rows and left to right across odd ones,
// so neighbouring indices are neighbouring boxes.
type BoxIndex struct {
	grid     chess.Grid
	boxes    []BoxClass
	position map[chess.Box]int
}

func NewBoxIndex(g chess.Grid) (idx *BoxIndex) {
	k := g.BoardSize
	idx = &BoxIndex{
		grid:     g,
		boxes:    make([]BoxClass, 0, g.BoxCount()),
		position: make(map[chess.Box]int, g.BoxCount()),
	}

	for r := range k {
		for i := range k {
			c := i
			if r%2 == 0 {
				c = k - 1 - i
			}
			box := g.BoxAt(r, c)
			idx.position[box] = len(idx.boxes)
			idx.boxes = append(idx.boxes, classify(g, r, c))
		}
	}

	return
}

func classify(g chess.Grid, r, c int) BoxClass {
	k := g.BoardSize
	box := g.BoxAt(r, c)
	walls := g.BoxEdges(box)
	pick := func(a, b int) [2]chess.Edge { return [2]chess.Edge{walls[a], walls[b]} }

	bc := BoxClass{Box: box, FinalMove: chess.InvalidEdge}
	switch {
	case r == 0 && c == k-1:
		bc.Setup, bc.Closing = pick(chess.Top, chess.Right), pick(chess.Left, chess.Bottom)
	case c == 0 && r%2 == 1:
		bc.Setup, bc.Closing = pick(chess.Left, chess.Bottom), pick(chess.Top, chess.Right)
	case c == k-1 && r%2 == 1:
		bc.Setup, bc.Closing = pick(chess.Top, chess.Right), pick(chess.Left, chess.Bottom)
	case c == 0:
		bc.Setup, bc.Closing = pick(chess.Top, chess.Left), pick(chess.Right, chess.Bottom)
	case c == k-1:
		bc.Setup, bc.Closing = pick(chess.Right, chess.Bottom), pick(chess.Top, chess.Left)
	default:
		bc.Setup, bc.Closing = pick(chess.Top, chess.Bottom), pick(chess.Left, chess.Right)
	}
	return bc
}

func (idx *BoxIndex) Len() int {
	return len(idx.boxes)
}

// At panics when i is outside the board.
func (idx *BoxIndex) At(i int) BoxClass {
	if i < 0 || i >= len(idx.boxes) {
		panic(fmt.Sprintf("agent: box index %d out of range [0, %d)", i, len(idx.boxes)))
	}
	return idx.boxes[i]
}

// Position panics when box is not a box of the board.
func (idx *BoxIndex) Position(box chess.Box) int {
	i, c := idx.position[box]
	if !c {
		panic(fmt.Sprintf("agent: dot %d is not a box of a %dx%d board", box, idx.grid.BoardSize, idx.grid.BoardSize))
	}
	return i
}

// Refresh advances every unfinished box against the board.
func (idx *BoxIndex) Refresh(b *chess.Board) {
	for i := range idx.boxes {
		idx.boxes[i].refresh(b)
	}
}

// Eligible reports whether index i holds a box that can be completed with its
// final move right now. Out of range indices are never eligible.
func (idx *BoxIndex) Eligible(b *chess.Board, i int) bool {
	if i < 0 || i >= len(idx.boxes) {
		return false
	}
	bc := &idx.boxes[i]
	return bc.State == Closable && !b.Completed(bc.Box) && b.State(bc.FinalMove) == chess.EdgeOpen
}

func (idx *BoxIndex) Reset() {
	for i := range idx.boxes {
		idx.boxes[i].State = Inert
		idx.boxes[i].FinalMove = chess.InvalidEdge
	}
}
