package chess

// EdgeView is one edge as seen by a renderer.
type EdgeView struct {
	Dots  [2]Dot    `json:"dots"`
	State EdgeState `json:"state"`
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	BoardSize    int        `json:"boardSize"`
	Edges        []EdgeView `json:"edges"`
	Owners       []Turn     `json:"owners"`
	Player1Score int        `json:"player1Score"`
	Player2Score int        `json:"player2Score"`
	Finished     bool       `json:"finished"`
}

func (b *Board) Snapshot() (s Snapshot) {
	s = Snapshot{
		BoardSize:    b.BoardSize,
		Edges:        make([]EdgeView, 0, len(b.edges)),
		Owners:       append([]Turn(nil), b.owners...),
		Player1Score: b.Player1Score,
		Player2Score: b.Player2Score,
		Finished:     b.Finished(),
	}

	for _, e := range b.edges {
		s.Edges = append(s.Edges, EdgeView{
			Dots:  [2]Dot{e.Dot1(), e.Dot2()},
			State: b.states[e],
		})
	}

	return
}
