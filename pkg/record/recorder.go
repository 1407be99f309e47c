package record

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-chain/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

// Sink is the part of the mongo model the recorder writes through.
type Sink interface {
	InsertMany(ctx context.Context, data ...*moverecord.GameRecode) error
}

// Recorder batches finished games into a Sink in the background.
type Recorder struct {
	pusher *pusher.Pusher[*moverecord.GameRecode]
}

func NewRecorder(sink Sink, interval time.Duration, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	r := &Recorder{
		pusher: pusher.NewPusher(
			pusher.WithPushInterval[*moverecord.GameRecode](interval),
			pusher.WithPushLogic(func(recodes ...*moverecord.GameRecode) error {
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()

				if err := sink.InsertMany(ctx, recodes...); err != nil {
					return err
				}

				logx.Infof("recorded %d games", len(recodes))
				return nil
			}),
			pusher.WithErrorHandler[*moverecord.GameRecode](func(err error) {
				logx.Errorf("record games: %v", err)
			}),
		),
	}
	r.pusher.Start()

	return r
}

func (r *Recorder) Add(summaries ...message.GameSummary) {
	recodes := make([]*moverecord.GameRecode, 0, len(summaries))
	for _, s := range summaries {
		recodes = append(recodes, moverecord.NewGameRecode(s))
	}
	r.pusher.AddMessages(recodes...)
}

// Pending counts games not yet handed to the sink.
func (r *Recorder) Pending() int {
	return r.pusher.Len()
}

// Close flushes the remaining games.
func (r *Recorder) Close() error {
	return r.pusher.Stop()
}
