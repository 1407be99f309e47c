package ui

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

// Renderer draws a board as plain text: dot ids on the grid, "-" and "|" for
// drawn edges, and the owner letter inside each completed box.
type Renderer struct {
	au aurora.Aurora
}

func NewRenderer(color bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(color)}
}

func (r *Renderer) owner(t chess.Turn) string {
	switch t {
	case chess.Player1:
		return r.au.Red(t.Name()).String()
	case chess.Player2:
		return r.au.Blue(t.Name()).String()
	}
	return t.Name()
}

func dash(b *chess.Board, d1, d2 chess.Dot, mark string) string {
	if b.Drawn(chess.NewEdge(d1, d2)) {
		return mark
	}
	return " "
}

func (r *Renderer) Draw(b *chess.Board) string {
	var sb strings.Builder
	n := b.DotsPerRow()

	sb.WriteString(" 0")
	for j := 1; j < n; j++ {
		fmt.Fprintf(&sb, " %s %d", dash(b, chess.Dot(j-1), chess.Dot(j), "-"), j)
	}

	for i := 1; i < n; i++ {
		fmt.Fprintf(&sb, "\n %s", dash(b, b.NewDot(i-1, 0), b.NewDot(i, 0), "|"))
		for j := 1; j < n; j++ {
			fmt.Fprintf(&sb, " %s %s", r.owner(b.Owner(b.BoxAt(i-1, j-1))), dash(b, b.NewDot(i-1, j), b.NewDot(i, j), "|"))
		}

		fmt.Fprintf(&sb, "\n%2d", b.NewDot(i, 0))
		for j := 1; j < n; j++ {
			fmt.Fprintf(&sb, " %s%2d", dash(b, b.NewDot(i, j-1), b.NewDot(i, j), "-"), b.NewDot(i, j))
		}
	}

	fmt.Fprintf(&sb, "\nScore is A:%d and B:%d\n", b.Player1Score, b.Player2Score)
	return sb.String()
}
