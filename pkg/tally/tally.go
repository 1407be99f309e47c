package tally

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/message"
)

// Tally counts finished games on one board size.
type Tally struct {
	BoardSize  int `json:"boardSize"`
	Games      int `json:"games"`
	Turns      int `json:"turns"`
	Player1Win int `json:"player1Win"`
	Player2Win int `json:"player2Win"`
	Tie        int `json:"tie"`
}

func (t *Tally) Add(s chess.Summary) {
	t.Games++
	t.Turns += s.Turns
	switch s.Result {
	case chess.Player1Win:
		t.Player1Win++
	case chess.Player2Win:
		t.Player2Win++
	default:
		t.Tie++
	}
}

func (t *Tally) Merge(o Tally) {
	t.Games += o.Games
	t.Turns += o.Turns
	t.Player1Win += o.Player1Win
	t.Player2Win += o.Player2Win
	t.Tie += o.Tie
}

func Of(BoardSize int, summaries ...chess.Summary) (t Tally) {
	t.BoardSize = BoardSize
	for _, s := range summaries {
		t.Add(s)
	}
	return
}

func (t Tally) fields() map[string]string {
	return map[string]string{
		message.FieldGames:      strconv.Itoa(t.Games),
		message.FieldTurns:      strconv.Itoa(t.Turns),
		message.FieldPlayer1Win: strconv.Itoa(t.Player1Win),
		message.FieldPlayer2Win: strconv.Itoa(t.Player2Win),
		message.FieldTie:        strconv.Itoa(t.Tie),
	}
}

// parseTally reads a redis hash. Missing fields count as zero.
func parseTally(BoardSize int, m map[string]string) (t Tally, err error) {
	t.BoardSize = BoardSize
	for field, dst := range map[string]*int{
		message.FieldGames:      &t.Games,
		message.FieldTurns:      &t.Turns,
		message.FieldPlayer1Win: &t.Player1Win,
		message.FieldPlayer2Win: &t.Player2Win,
		message.FieldTie:        &t.Tie,
	} {
		v, c := m[field]
		if !c {
			continue
		}
		if *dst, err = strconv.Atoi(v); err != nil {
			return Tally{}, fmt.Errorf("tally field %s: %w", field, err)
		}
	}
	return
}

// Store keeps running totals across games and processes.
type Store interface {
	Record(ctx context.Context, s chess.Summary) error
	RecordRun(ctx context.Context, BoardSize int, summaries []chess.Summary) error
	Totals(ctx context.Context, BoardSize int) (Tally, error)
}
