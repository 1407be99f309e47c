package logic

import (
	"context"

	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type StatsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StatsLogic {
	return &StatsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StatsLogic) Stats(req *types.StatsReq) (*types.StatsResp, error) {
	if req.BoardSize < 1 || req.BoardSize > l.svcCtx.Config.MaxBoardSize {
		return nil, BoardSizeOutOfRangeErr
	}

	t, err := l.svcCtx.Tally.Totals(l.ctx, req.BoardSize)
	if err != nil {
		l.Errorf("load tally for %d: %v", req.BoardSize, err)
		return nil, err
	}

	resp := &types.StatsResp{Tally: t}
	if l.svcCtx.Records != nil {
		n, err := l.svcCtx.Records.CountByBoardSize(l.ctx, req.BoardSize)
		if err != nil {
			l.Errorf("count recorded games for %d: %v", req.BoardSize, err)
			return nil, err
		}
		resp.Recorded = &n
	}

	return resp, nil
}
