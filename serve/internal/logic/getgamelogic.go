package logic

import (
	"context"
	"errors"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// GetGame serves live sessions from the cache. Once a session has expired,
// a finished game is rebuilt from its mongo record.
func (l *GetGameLogic) GetGame(uid string) (*types.GameResp, error) {
	session, err := findSession(l.svcCtx, uid)
	switch {
	case err == nil:
		session.Lock()
		defer session.Unlock()
		return gameResp(session), nil
	case !errors.Is(err, GameNotFoundErr) || l.svcCtx.Records == nil:
		return nil, err
	}

	id, _ := message.ParseGameUid(uid)
	rec, err := l.svcCtx.Records.FindByGameUid(l.ctx, id)
	if errors.Is(err, moverecord.ErrNotFound) {
		return nil, GameNotFoundErr
	}
	if err != nil {
		l.Errorf("find game %s: %v", uid, err)
		return nil, err
	}

	return recodeResp(rec)
}
