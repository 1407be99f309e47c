package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-chain/pkg/simulate"
	"github.com/HuXin0817/dots-chain/pkg/tally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		BoardSize:        3,
		Games:            20,
		Seed:             5,
		Workers:          2,
		PlayerA:          "chain",
		PlayerB:          "random",
		SinglePlayFile:   filepath.Join(dir, "single_play.txt"),
		MultiplePlayFile: filepath.Join(dir, "multiple_play.txt"),
	}
}

func TestRunWritesBothFiles(t *testing.T) {
	c := testConfig(t)
	var out, progress bytes.Buffer

	require.NoError(t, run(context.Background(), c, &persister{}, &out, &progress))
	assert.Zero(t, progress.Len())

	single, err := os.ReadFile(c.SinglePlayFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(single), "Player A goes first!\n"))
	assert.Equal(t, 2, strings.Count(string(single), "Game is over, all boxes have been filled\n"))

	multiple, err := os.ReadFile(c.MultiplePlayFile)
	require.NoError(t, err)

	want, err := simulate.Run(context.Background(), options(c, false), nil)
	require.NoError(t, err)
	assert.Equal(t, want.Report.String(), string(multiple))
	assert.Equal(t, want.Report.String()+"\n", out.String())
}

func TestRunTalliesRun(t *testing.T) {
	c := testConfig(t)
	store := tally.NewMemoryStore()
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), c, &persister{tally: store}, &out, &out))

	got, err := store.Totals(context.Background(), c.BoardSize)
	require.NoError(t, err)
	assert.Equal(t, c.Games, got.Games)
	assert.Equal(t, c.Games, got.Player1Win+got.Player2Win+got.Tie)
	assert.Equal(t, 24*c.Games, got.Turns, "every game draws all 24 edges")
}

func TestRunRejectsUnknownPlayer(t *testing.T) {
	c := testConfig(t)
	c.PlayerB = "oracle"
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), c, &persister{}, &out, &out))
}
