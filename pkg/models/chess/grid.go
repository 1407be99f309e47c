package chess

import "fmt"

// MaxBoardSize keeps every dot id inside the packed edge encoding.
const MaxBoardSize = 128

// Grid is the fixed geometry of a board with BoardSize boxes per row.
type Grid struct {
	BoardSize int
}

func NewGrid(BoardSize int) (Grid, error) {
	if BoardSize < 1 || BoardSize > MaxBoardSize {
		return Grid{}, fmt.Errorf("%w: %d", ErrBoardSize, BoardSize)
	}
	return Grid{BoardSize: BoardSize}, nil
}

func (g Grid) DotsPerRow() int {
	return g.BoardSize + 1
}

func (g Grid) DotCount() int {
	return g.DotsPerRow() * g.DotsPerRow()
}

func (g Grid) BoxCount() int {
	return g.BoardSize * g.BoardSize
}

func (g Grid) EdgeCount() int {
	return 2 * g.BoardSize * (g.BoardSize + 1)
}

func (g Grid) NewDot(row, col int) Dot {
	return Dot(row*g.DotsPerRow() + col)
}

func (g Grid) Row(d Dot) int {
	return int(d) / g.DotsPerRow()
}

func (g Grid) Col(d Dot) int {
	return int(d) % g.DotsPerRow()
}

func (g Grid) Contains(d Dot) bool {
	return d >= 0 && int(d) < g.DotCount()
}

// Adjacent reports whether the canonical edge joins two neighbouring dots.
func (g Grid) Adjacent(e Edge) bool {
	d1, d2 := e.Dot1(), e.Dot2()
	if !g.Contains(d1) || !g.Contains(d2) {
		return false
	}
	if d2 == d1+1 {
		return g.Col(d1) < g.BoardSize
	}
	return int(d2) == int(d1)+g.DotsPerRow()
}

// Edges lists every legal edge in ascending canonical order.
func (g Grid) Edges() (edges []Edge) {
	n := g.DotsPerRow()
	edges = make([]Edge, 0, g.EdgeCount())
	for i := range g.DotCount() {
		d := Dot(i)
		if i%n != n-1 {
			edges = append(edges, NewEdge(d, d+1))
		}
		if i+n < g.DotCount() {
			edges = append(edges, NewEdge(d, Dot(i+n)))
		}
	}
	return
}

func (g Grid) BoxAt(row, col int) Box {
	return Box(g.NewDot(row, col))
}

// HasBox excludes dots in the last row and column, which have no box to their lower right.
func (g Grid) HasBox(b Box) bool {
	d := Dot(b)
	return g.Contains(d) && g.Row(d) < g.BoardSize && g.Col(d) < g.BoardSize
}

// Boxes lists every box in row-major order.
func (g Grid) Boxes() (boxes []Box) {
	boxes = make([]Box, 0, g.BoxCount())
	for r := range g.BoardSize {
		for c := range g.BoardSize {
			boxes = append(boxes, g.BoxAt(r, c))
		}
	}
	return
}

// BoxIndex is the row-major position of a box, used for owner bookkeeping.
func (g Grid) BoxIndex(b Box) int {
	return g.Row(Dot(b))*g.BoardSize + g.Col(Dot(b))
}

// BoxEdges returns the boundary indexed by Top, Left, Right and Bottom.
func (g Grid) BoxEdges(b Box) [4]Edge {
	n := Dot(g.DotsPerRow())
	d := Dot(b)

	return [...]Edge{
		NewEdge(d, d+1),
		NewEdge(d, d+n),
		NewEdge(d+1, d+n+1),
		NewEdge(d+n, d+n+1),
	}
}

// EdgeBoxes returns the one or two boxes bordered by a legal edge.
func (g Grid) EdgeBoxes(e Edge) (boxes []Box) {
	d := e.Dot1()
	row, col := g.Row(d), g.Col(d)

	if e.Dot2() == d+1 {
		if row > 0 {
			boxes = append(boxes, g.BoxAt(row-1, col))
		}
		if row < g.BoardSize {
			boxes = append(boxes, g.BoxAt(row, col))
		}
		return
	}

	if col > 0 {
		boxes = append(boxes, g.BoxAt(row, col-1))
	}
	if col < g.BoardSize {
		boxes = append(boxes, g.BoxAt(row, col))
	}
	return
}
