package chess

import (
	"fmt"
	"strconv"
	"strings"
)

type Board struct {
	Grid
	Player1Score int
	Player2Score int

	edges  []Edge
	states map[Edge]EdgeState
	owners []Turn
	open   int
}

func NewBoard(BoardSize int) (newBoard *Board, err error) {
	grid, err := NewGrid(BoardSize)
	if err != nil {
		return nil, err
	}

	newBoard = &Board{
		Grid:   grid,
		edges:  grid.Edges(),
		owners: make([]Turn, grid.BoxCount()),
	}

	newBoard.states = make(map[Edge]EdgeState, len(newBoard.edges))
	for _, e := range newBoard.edges {
		newBoard.states[e] = EdgeOpen
	}
	newBoard.open = len(newBoard.edges)

	return
}

// ParseMove reads a move request of two whitespace separated dot ids.
func ParseMove(s string) (Dot1, Dot2 Dot, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return Dot(a), Dot(b), nil
}

func (b *Board) State(e Edge) EdgeState {
	return b.states[e]
}

func (b *Board) Drawn(e Edge) bool {
	return b.states[e] == EdgeDrawn
}

// ValidMoves lists the open edges in ascending canonical order.
func (b *Board) ValidMoves() (validMoves []Edge) {
	validMoves = make([]Edge, 0, b.open)
	for _, e := range b.edges {
		if b.states[e] == EdgeOpen {
			validMoves = append(validMoves, e)
		}
	}
	return
}

func (b *Board) EdgesCountInBox(box Box) (count int) {
	for _, e := range b.BoxEdges(box) {
		if b.Drawn(e) {
			count++
		}
	}
	return
}

func (b *Board) Completed(box Box) bool {
	return b.HasBox(box) && b.EdgesCountInBox(box) == 4
}

func (b *Board) Owner(box Box) Turn {
	if !b.HasBox(box) {
		return NoPlayer
	}
	return b.owners[b.BoxIndex(box)]
}

func (b *Board) Score(t Turn) int {
	switch t {
	case Player1:
		return b.Player1Score
	case Player2:
		return b.Player2Score
	}
	return 0
}

func (b *Board) ScoreCount() int {
	return b.Player1Score + b.Player2Score
}

func (b *Board) Finished() bool {
	return b.ScoreCount() == b.BoxCount()
}

// MoveString parses and applies a textual move request.
func (b *Board) MoveString(t Turn, s string) (Outcome, error) {
	d1, d2, err := ParseMove(s)
	if err != nil {
		return Outcome{Kind: InvalidFormat}, err
	}
	return b.Move(t, d1, d2)
}

// Move draws the edge between two dots for player t. Rejected requests leave
// the board unchanged.
func (b *Board) Move(t Turn, Dot1, Dot2 Dot) (Outcome, error) {
	if t != Player1 && t != Player2 {
		panic(fmt.Sprintf("chess: move by unknown player %d", t))
	}

	if !b.Contains(Dot1) || !b.Contains(Dot2) {
		return Outcome{Kind: NotAdjacent}, fmt.Errorf("%w: %d %d", ErrNotAdjacent, Dot1, Dot2)
	}

	e := NewEdge(Dot1, Dot2)
	switch b.states[e] {
	case EdgeNotAdjacent:
		return Outcome{Kind: NotAdjacent}, fmt.Errorf("%w: %s", ErrNotAdjacent, e)
	case EdgeDrawn:
		return Outcome{Kind: AlreadyDrawn}, fmt.Errorf("%w: %s", ErrAlreadyDrawn, e)
	}

	b.states[e] = EdgeDrawn
	b.open--

	score := 0
	for _, box := range b.EdgeBoxes(e) {
		if b.EdgesCountInBox(box) == 4 {
			b.owners[b.BoxIndex(box)] = t
			score++
		}
	}

	if score == 0 {
		return Outcome{Kind: NoScore}, nil
	}

	switch t {
	case Player1:
		b.Player1Score += score
	case Player2:
		b.Player2Score += score
	}

	return Outcome{Kind: Scored, Boxes: score}, nil
}

func (b *Board) Clone() (newBoard *Board) {
	newBoard = &Board{
		Grid:         b.Grid,
		Player1Score: b.Player1Score,
		Player2Score: b.Player2Score,
		edges:        b.edges,
		states:       make(map[Edge]EdgeState, len(b.states)),
		owners:       append([]Turn(nil), b.owners...),
		open:         b.open,
	}

	for e, s := range b.states {
		newBoard.states[e] = s
	}

	return
}
