package logic

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/agent"
	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func firstPlayer(s string, rng *rand.Rand) (chess.Turn, error) {
	switch strings.ToUpper(s) {
	case "A":
		return chess.Player1, nil
	case "B":
		return chess.Player2, nil
	case "":
		if rng.Intn(2) == 0 {
			return chess.Player1, nil
		}
		return chess.Player2, nil
	}
	return chess.NoPlayer, UnknownFirstPlayerErr
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameReq) (*types.GameResp, error) {
	if req.BoardSize < 1 || req.BoardSize > l.svcCtx.Config.MaxBoardSize {
		return nil, BoardSizeOutOfRangeErr
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	first, err := firstPlayer(req.First, rng)
	if err != nil {
		return nil, err
	}

	kinds := [2]string{req.PlayerA, req.PlayerB}
	if kinds[0] == "" {
		kinds[0] = svc.KindHuman
	}
	if kinds[1] == "" {
		kinds[1] = agent.KindChain
	}

	var agents [2]agent.Agent
	for i, kind := range kinds {
		if kind == svc.KindHuman {
			continue
		}
		if agents[i], err = agent.New(kind, req.BoardSize, rng); err != nil {
			return nil, UnknownPlayerErr
		}
	}

	g, err := chess.NewGame(req.BoardSize, first)
	if err != nil {
		return nil, err
	}

	session := svc.NewSession(g, agents, kinds)
	session.Lock()
	defer session.Unlock()

	l.svcCtx.AddSession(session)
	moves, err := playAgents(l.ctx, l.svcCtx, session)
	if err != nil {
		return nil, err
	}

	l.Infof("game %s created: %dx%d, %s vs %s, %s first", session.GameUid, req.BoardSize, req.BoardSize, kinds[0], kinds[1], first.Name())

	resp := gameResp(session)
	resp.AgentMoves = moves
	return resp, nil
}
