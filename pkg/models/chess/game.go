package chess

type Result int8

const (
	Player1Win Result = iota
	Player2Win
	Tie
)

func (r Result) String() string {
	switch r {
	case Player1Win:
		return "Player A wins!"
	case Player2Win:
		return "Player B wins!"
	}
	return "It's a tie!"
}

// Summary is the final record of one game.
type Summary struct {
	BoardSize    int    `json:"boardSize"`
	FirstPlayer  Turn   `json:"firstPlayer"`
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
	Turns        int    `json:"turns"`
	Result       Result `json:"result"`
}

type Game struct {
	*Board
	NowPlayer   Turn
	FirstPlayer Turn
	Turns       int
}

func NewGame(BoardSize int, first Turn) (*Game, error) {
	board, err := NewBoard(BoardSize)
	if err != nil {
		return nil, err
	}

	if first != Player2 {
		first = Player1
	}

	return &Game{
		Board:       board,
		NowPlayer:   first,
		FirstPlayer: first,
	}, nil
}

func (g *Game) Play(e Edge) (Outcome, error) {
	if e == InvalidEdge {
		return Outcome{Kind: NotAdjacent}, ErrNotAdjacent
	}
	return g.apply(g.Board.Move(g.NowPlayer, e.Dot1(), e.Dot2()))
}

func (g *Game) PlayString(s string) (Outcome, error) {
	return g.apply(g.Board.MoveString(g.NowPlayer, s))
}

func (g *Game) apply(o Outcome, err error) (Outcome, error) {
	if err != nil {
		return o, err
	}

	g.Turns++
	if o.Kind == NoScore {
		g.NowPlayer = g.NowPlayer.Next()
	}

	return o, nil
}

func (g *Game) Summary() Summary {
	s := Summary{
		BoardSize:    g.BoardSize,
		FirstPlayer:  g.FirstPlayer,
		Player1Score: g.Player1Score,
		Player2Score: g.Player2Score,
		Turns:        g.Turns,
		Result:       Tie,
	}

	switch {
	case g.Player1Score > g.Player2Score:
		s.Result = Player1Win
	case g.Player2Score > g.Player1Score:
		s.Result = Player2Win
	}

	return s
}
