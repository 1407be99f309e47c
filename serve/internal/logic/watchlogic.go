package logic

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

type WatchLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WatchLogic {
	return &WatchLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Watch returns the current position as a first event, then a stream of every
// later move. The stream closes when the game ends.
func (l *WatchLogic) Watch(uid string) (message.MoveEvent, <-chan []byte, func(), error) {
	session, err := findSession(l.svcCtx, uid)
	if err != nil {
		return message.MoveEvent{}, nil, nil, err
	}

	session.Lock()
	defer session.Unlock()

	current := message.MoveEvent{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   session.GameUid,
		Step:      session.Game.Turns,
		Player:    session.Game.NowPlayer.Name(),
		Board:     session.Game.Snapshot(),
	}
	if n := len(session.Moves); n > 0 {
		current.Move = session.Moves[n-1]
	}

	events, cancel := session.Hub.Subscribe()
	l.Infof("watching game %s, %d watchers", uid, session.Hub.Len())
	return current, events, cancel, nil
}
