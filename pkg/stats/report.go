package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/montanaflynn/stats"
)

var ErrNoGames = errors.New("no games to aggregate")

type PlayerStats struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	Wins   int     `json:"wins"`
}

// Report aggregates many finished games. Players[0] is player A.
type Report struct {
	Games   int            `json:"games"`
	Turns   int            `json:"turns"`
	Players [2]PlayerStats `json:"players"`
	Ties    int            `json:"ties"`
}

func Aggregate(summaries []chess.Summary, names [2]string) (*Report, error) {
	if len(summaries) == 0 {
		return nil, ErrNoGames
	}

	r := &Report{Games: len(summaries)}
	scores := [2][]int{make([]int, 0, len(summaries)), make([]int, 0, len(summaries))}
	for _, s := range summaries {
		r.Turns += s.Turns
		scores[0] = append(scores[0], s.Player1Score)
		scores[1] = append(scores[1], s.Player2Score)

		switch s.Result {
		case chess.Player1Win:
			r.Players[0].Wins++
		case chess.Player2Win:
			r.Players[1].Wins++
		default:
			r.Ties++
		}
	}

	for i := range r.Players {
		p := &r.Players[i]
		p.Name = names[i]

		data := stats.LoadRawData(scores[i])
		var err error
		if p.Mean, err = stats.Mean(data); err != nil {
			return nil, fmt.Errorf("mean of %s: %w", p.Name, err)
		}
		if p.Median, err = stats.Median(data); err != nil {
			return nil, fmt.Errorf("median of %s: %w", p.Name, err)
		}
		if p.Max, err = stats.Max(data); err != nil {
			return nil, fmt.Errorf("max of %s: %w", p.Name, err)
		}
		if p.Min, err = stats.Min(data); err != nil {
			return nil, fmt.Errorf("min of %s: %w", p.Name, err)
		}
	}

	return r, nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String renders the report in the multiple_play.txt layout.
func (r *Report) String() string {
	var sb strings.Builder
	a, b := r.Players[0], r.Players[1]

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Total number of rounds played: %d\n", r.Turns)
	fmt.Fprintf(&sb, "%s average: %s\n", a.Name, num(a.Mean))
	fmt.Fprintf(&sb, "%s average: %s\n", b.Name, num(b.Mean))
	fmt.Fprintf(&sb, "%s median: %s\n", a.Name, num(a.Median))
	fmt.Fprintf(&sb, "%s median: %s\n", b.Name, num(b.Median))
	fmt.Fprintf(&sb, "%s highest score: %s\n", a.Name, num(a.Max))
	fmt.Fprintf(&sb, "%s highest score: %s\n", b.Name, num(b.Max))
	fmt.Fprintf(&sb, "%s lowest score: %s\n", a.Name, num(a.Min))
	fmt.Fprintf(&sb, "%s lowest score: %s\n", b.Name, num(b.Min))
	fmt.Fprintf(&sb, "%s total wins: %d\n", a.Name, a.Wins)
	fmt.Fprintf(&sb, "%s total wins: %d\n", b.Name, b.Wins)
	fmt.Fprintf(&sb, "Ties: %d\n", r.Ties)

	return sb.String()
}
