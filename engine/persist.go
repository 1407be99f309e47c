package main

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-chain/pkg/record"
	"github.com/HuXin0817/dots-chain/pkg/simulate"
	"github.com/HuXin0817/dots-chain/pkg/tally"
	"github.com/zeromicro/go-zero/core/logx"
)

// persister hands finished runs to mongo and redis when they are configured.
// Failures are logged and never fail the run.
type persister struct {
	recorder *record.Recorder
	tally    tally.Store
}

func newPersister(c Config) *persister {
	p := &persister{}

	if c.Redis.Host != "" {
		p.tally = tally.MustNewRedisStore(c.Redis)
	}

	if c.MongoConf.Url != "" {
		m := moverecord.NewGameRecodeModel(c.MongoConf.Url, c.MongoConf.DataBaseName, c.MongoConf.Collection)
		p.recorder = record.NewRecorder(m, c.MongoConf.FlushInterval, 10*time.Second)
	}

	return p
}

// KeepMoves is true when game records are stored, since they carry the moves.
func (p *persister) KeepMoves() bool {
	return p.recorder != nil
}

func (p *persister) Save(ctx context.Context, result *simulate.Result) {
	opts := result.Options

	if p.tally != nil {
		if err := p.tally.RecordRun(ctx, opts.BoardSize, result.Summaries()); err != nil {
			logx.WithContext(ctx).Errorf("tally run: %v", err)
		} else {
			logx.WithContext(ctx).Infof("tallied %d games on %dx%d", len(result.Games), opts.BoardSize, opts.BoardSize)
		}
	}

	if p.recorder == nil {
		return
	}

	now := message.NewTimeStamp(time.Now())
	summaries := make([]message.GameSummary, 0, len(result.Games))
	for _, g := range result.Games {
		summaries = append(summaries, message.GameSummary{
			TimeStamp: now,
			GameUid:   message.NewGameUid(),
			PlayerA:   opts.PlayerA,
			PlayerB:   opts.PlayerB,
			Summary:   g.Summary,
			Moves:     g.Moves,
		})
	}
	p.recorder.Add(summaries...)
}

func (p *persister) Close() error {
	if p.recorder == nil {
		return nil
	}
	return p.recorder.Close()
}
