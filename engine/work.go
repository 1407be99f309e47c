package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/HuXin0817/dots-chain/pkg/models/model"
	"github.com/HuXin0817/dots-chain/pkg/models/ui"
	"github.com/HuXin0817/dots-chain/pkg/simulate"
)

func options(c Config, keepMoves bool) simulate.Options {
	return simulate.Options{
		BoardSize: c.BoardSize,
		Games:     c.Games,
		Seed:      c.Seed,
		Workers:   c.Workers,
		PlayerA:   c.PlayerA,
		PlayerB:   c.PlayerB,
		KeepMoves: keepMoves,
	}
}

// run writes the two-game transcript, plays the batch and writes its report.
// The report also goes to out; the progress bar goes to progress.
func run(ctx context.Context, c Config, p *persister, out, progress io.Writer) error {
	opts := options(c, p.KeepMoves())

	var transcript bytes.Buffer
	if err := simulate.WriteTranscript(&transcript, opts, ui.NewRenderer(c.Color)); err != nil {
		return fmt.Errorf("single play: %w", err)
	}
	if err := os.WriteFile(c.SinglePlayFile, transcript.Bytes(), 0o644); err != nil {
		return err
	}

	if !c.ProgressBar {
		progress = io.Discard
	}
	bar := model.NewBar(progress, c.Games, fmt.Sprintf("%s vs %s", simulate.Label(c.PlayerA), simulate.Label(c.PlayerB)))
	result, err := simulate.Run(ctx, opts, func(done, _ int) {
		bar.Goto(done)
	})
	bar.Close()
	if err != nil {
		return fmt.Errorf("multiple play: %w", err)
	}

	report := result.Report.String()
	if err = os.WriteFile(c.MultiplePlayFile, []byte(report), 0o644); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(out, report); err != nil {
		return err
	}

	p.Save(ctx, result)
	return nil
}
