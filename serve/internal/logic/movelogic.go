package logic

import (
	"context"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Move applies a human move and then every computer reply that follows it.
// A rejected move returns the chess error and leaves the game as it was.
func (l *MoveLogic) Move(uid string, req *types.MoveReq) (*types.GameResp, error) {
	session, err := findSession(l.svcCtx, uid)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	g := session.Game
	if g.Finished() {
		return nil, GameOverErr
	}

	mover := g.NowPlayer
	if session.AgentFor(mover) != nil {
		return nil, NotYourTurnErr
	}

	o, err := g.PlayString(req.Move)
	if err != nil {
		l.Infof("game %s: rejected %q from %s: %s", uid, req.Move, mover.Name(), o)
		return nil, err
	}

	d1, d2, _ := chess.ParseMove(req.Move)
	publish(session, mover, chess.NewEdge(d1, d2).String(), o)

	moves, err := playAgents(l.ctx, l.svcCtx, session)
	if err != nil {
		return nil, err
	}

	resp := gameResp(session)
	resp.AgentMoves = moves
	resp.LastOutcome = &o
	return resp, nil
}
