package main

import (
	"io"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHumanVersusHuman(t *testing.T) {
	in := strings.NewReader("0 1\n0 1\nfoo\n0 3\n2 0\n1 3\n3 2\n")
	var out strings.Builder

	s, err := Run(in, &out, Options{BoardSize: 1, First: chess.Player1, Renderer: ui.NewRenderer(false)})
	require.NoError(t, err)

	assert.Equal(t, chess.Player2Win, s.Result, "B draws the fourth edge")
	assert.Equal(t, 4, s.Turns)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Player A goes first!\n\n 0   1\n"))
	assert.Contains(t, text, "they are already connected")
	assert.Contains(t, text, "Invalid input format, please try again.")
	assert.Contains(t, text, "they are not adjacent")
	assert.Contains(t, text, " 0 - 1\n | B |\n 2 - 3\nScore is A:0 and B:1\n")
	assert.True(t, strings.HasSuffix(text, "Game is over, all boxes have been filled\nPlayer B wins!\n"))
}

func TestRunAgainstAgent(t *testing.T) {
	chain, err := agent.NewChainAgent(1)
	require.NoError(t, err)

	// The agent takes the top edge, the human answers until the board is full.
	in := strings.NewReader("0 2\n1 3\n2 3\n")
	var out strings.Builder

	s, err := Run(in, &out, Options{
		BoardSize: 1,
		First:     chess.Player1,
		Players:   [2]agent.Agent{chain, nil},
		Renderer:  ui.NewRenderer(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Turns)
	assert.Contains(t, out.String(), "Player A's turn: 0 1\n")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	_, err := Run(strings.NewReader("0 1\n"), io.Discard, Options{BoardSize: 2, First: chess.Player2, Renderer: ui.NewRenderer(false)})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
