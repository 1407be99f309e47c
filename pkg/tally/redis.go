package tally

import (
	"context"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/model"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisStore keeps live game results in one hash per board size and whole
// engine runs in another, merged under a redis lock.
type RedisStore struct {
	rds *redis.Redis
}

func NewRedisStore(rds *redis.Redis) *RedisStore {
	return &RedisStore{rds: rds}
}

func MustNewRedisStore(c redis.RedisConf) *RedisStore {
	return NewRedisStore(redis.MustNewRedis(c))
}

func (r *RedisStore) Record(ctx context.Context, s chess.Summary) error {
	key := message.TallyKey(s.BoardSize).ResultKey()
	return r.rds.PipelinedCtx(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, key, message.FieldGames, 1)
		p.HIncrBy(ctx, key, message.FieldTurns, int64(s.Turns))
		p.HIncrBy(ctx, key, message.ResultField(s.Result), 1)
		return nil
	})
}

func (r *RedisStore) RecordRun(ctx context.Context, BoardSize int, summaries []chess.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	key := message.TallyKey(BoardSize)
	run := Of(BoardSize, summaries...)

	return model.NewLock(r.rds, key.LockName()).Do(ctx, func() error {
		existing, err := r.rds.HgetallCtx(ctx, key.RunKey())
		if err != nil {
			return err
		}

		t, err := parseTally(BoardSize, existing)
		if err != nil {
			return err
		}

		t.Merge(run)
		return r.rds.HmsetCtx(ctx, key.RunKey(), t.fields())
	})
}

// Totals adds live results and engine runs together.
func (r *RedisStore) Totals(ctx context.Context, BoardSize int) (Tally, error) {
	key := message.TallyKey(BoardSize)
	total := Tally{BoardSize: BoardSize}

	for _, k := range []string{key.ResultKey(), key.RunKey()} {
		m, err := r.rds.HgetallCtx(ctx, k)
		if err != nil {
			return Tally{}, err
		}

		t, err := parseTally(BoardSize, m)
		if err != nil {
			return Tally{}, err
		}
		total.Merge(t)
	}

	return total, nil
}
