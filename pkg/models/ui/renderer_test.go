package ui

import (
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawEmptySingleBox(t *testing.T) {
	b, err := chess.NewBoard(1)
	require.NoError(t, err)
	assert.Equal(t, " 0   1\n      \n 2   3\nScore is A:0 and B:0\n", NewRenderer(false).Draw(b))
}

func TestDrawOwnedBox(t *testing.T) {
	b, err := chess.NewBoard(1)
	require.NoError(t, err)
	for _, m := range []string{"0 1", "0 2", "1 3", "2 3"} {
		_, err := b.MoveString(chess.Player1, m)
		require.NoError(t, err)
	}
	assert.Equal(t, " 0 - 1\n | A |\n 2 - 3\nScore is A:1 and B:0\n", NewRenderer(false).Draw(b))
}

func TestDrawPadsTwoDigitDots(t *testing.T) {
	b, err := chess.NewBoard(3)
	require.NoError(t, err)
	_, err = b.MoveString(chess.Player2, "12 13")
	require.NoError(t, err)
	_, err = b.MoveString(chess.Player2, "7 11")
	require.NoError(t, err)

	want := " 0   1   2   3\n              \n 4   5   6   7\n             |\n 8   9  10  11\n              \n12 -13  14  15\nScore is A:0 and B:0\n"
	assert.Equal(t, want, NewRenderer(false).Draw(b))
}

func TestDrawColour(t *testing.T) {
	b, err := chess.NewBoard(1)
	require.NoError(t, err)
	for _, m := range []string{"0 1", "0 2", "1 3", "2 3"} {
		_, err := b.MoveString(chess.Player2, m)
		require.NoError(t, err)
	}
	out := NewRenderer(true).Draw(b)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "B")
}
