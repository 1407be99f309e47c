package assess

import "github.com/HuXin0817/dots-chain/pkg/models/chess"

// Gain is the number of boxes drawing e would complete right now.
func Gain(b *chess.Board, e chess.Edge) (score int) {
	for _, box := range b.EdgeBoxes(e) {
		if b.EdgesCountInBox(box) == 3 {
			score++
		}
	}
	return
}

// Hands reports whether drawing e leaves a neighbouring box with three sides
// for the opponent to take.
func Hands(b *chess.Board, e chess.Edge) bool {
	for _, box := range b.EdgeBoxes(e) {
		if b.EdgesCountInBox(box) == 2 {
			return true
		}
	}
	return false
}

// BetterEdges narrows the open edges to the best class available, in canonical
// order: double completions, then single completions, then edges that hand
// nothing over, then everything.
func BetterEdges(b *chess.Board) []chess.Edge {
	edges := b.ValidMoves()
	byGain := make(map[int][]chess.Edge, 3)
	for _, e := range edges {
		g := Gain(b, e)
		byGain[g] = append(byGain[g], e)
	}

	if len(byGain[2]) > 0 {
		return byGain[2]
	}
	if len(byGain[1]) > 0 {
		return byGain[1]
	}

	var safe []chess.Edge
	for _, e := range byGain[0] {
		if !Hands(b, e) {
			safe = append(safe, e)
		}
	}
	if len(safe) > 0 {
		return safe
	}

	return byGain[0]
}
