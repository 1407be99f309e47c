package svc

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-chain/pkg/record"
	"github.com/HuXin0817/dots-chain/pkg/tally"
	"github.com/HuXin0817/dots-chain/serve/internal/config"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

// Records reads back finished games stored in mongo.
type Records interface {
	FindByGameUid(ctx context.Context, uid message.GameUid) (*moverecord.GameRecode, error)
	CountByBoardSize(ctx context.Context, BoardSize int) (int64, error)
}

type ServiceContext struct {
	Config   config.Config
	Sessions *collection.Cache
	Tally    tally.Store
	Recorder *record.Recorder
	// Records is nil when mongo is not configured.
	Records Records
}

func NewServiceContext(c config.Config) *ServiceContext {
	sessions, err := collection.NewCache(c.SessionTTL, collection.WithName("sessions"))
	logx.Must(err)

	svcCtx := &ServiceContext{
		Config:   c,
		Sessions: sessions,
		Tally:    tally.NewMemoryStore(),
	}

	if c.Redis.Host != "" {
		svcCtx.Tally = tally.MustNewRedisStore(c.Redis)
	}

	if c.MongoConf.Url != "" {
		model := moverecord.NewGameRecodeModel(c.MongoConf.Url, c.MongoConf.DataBaseName, c.MongoConf.Collection)
		svcCtx.Records = model
		svcCtx.Recorder = record.NewRecorder(model, c.MongoConf.FlushInterval, 10*time.Second)
	}

	return svcCtx
}

func (s *ServiceContext) AddSession(session *Session) {
	s.Sessions.Set(string(session.GameUid), session)
}

func (s *ServiceContext) Session(uid message.GameUid) (*Session, bool) {
	v, ok := s.Sessions.Get(string(uid))
	if !ok {
		return nil, false
	}
	session, ok := v.(*Session)
	return session, ok
}

// Finish persists a finished game once. The caller holds the session lock.
func (s *ServiceContext) Finish(ctx context.Context, session *Session) {
	if session.Recorded || !session.Game.Finished() {
		return
	}
	session.Recorded = true

	summary := session.Summary()
	if err := s.Tally.Record(ctx, summary.Summary); err != nil {
		logx.WithContext(ctx).Errorf("tally game %s: %v", session.GameUid, err)
	}
	if s.Recorder != nil {
		s.Recorder.Add(summary)
	}
	session.Hub.Close()
}

func (s *ServiceContext) Close() {
	if s.Recorder != nil {
		if err := s.Recorder.Close(); err != nil {
			logx.Errorf("flush game records: %v", err)
		}
	}
}
