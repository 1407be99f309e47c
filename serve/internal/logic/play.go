package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/HuXin0817/dots-chain/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
)

// findSession rejects malformed ids before looking the session up.
func findSession(svcCtx *svc.ServiceContext, uid string) (*svc.Session, error) {
	id, err := message.ParseGameUid(uid)
	if err != nil {
		return nil, InvalidGameUidErr
	}
	session, ok := svcCtx.Session(id)
	if !ok {
		return nil, GameNotFoundErr
	}
	return session, nil
}

// publish records an accepted move on the session and tells its watchers.
func publish(session *svc.Session, mover chess.Turn, e string, o chess.Outcome) {
	session.Moves = append(session.Moves, e)
	session.Hub.Publish(message.MoveEvent{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   session.GameUid,
		Step:      session.Game.Turns,
		Player:    mover.Name(),
		Move:      e,
		Outcome:   o,
		Board:     session.Game.Snapshot(),
	}.Bytes())
}

// playAgents lets computer players move until a human is to play or the game
// ends. The caller holds the session lock.
func playAgents(ctx context.Context, svcCtx *svc.ServiceContext, session *svc.Session) (moves []string, err error) {
	g := session.Game
	for !g.Finished() {
		mover := g.NowPlayer
		a := session.AgentFor(mover)
		if a == nil {
			break
		}

		e := a.NextMove(g.Board)
		o, err := g.Play(e)
		if err != nil {
			return moves, err
		}
		a.Observe(o)

		publish(session, mover, e.String(), o)
		moves = append(moves, e.String())
	}

	svcCtx.Finish(ctx, session)
	return moves, nil
}

func gameResp(session *svc.Session) *types.GameResp {
	g := session.Game
	resp := &types.GameResp{
		GameUid:   string(session.GameUid),
		PlayerA:   session.Kinds[0],
		PlayerB:   session.Kinds[1],
		NowPlayer: g.NowPlayer.Name(),
		Turns:     g.Turns,
		Moves:     append([]string{}, session.Moves...),
		Board:     g.Snapshot(),
	}

	if g.Finished() {
		s := g.Summary()
		resp.Summary = &s
		resp.Result = s.Result.String()
		resp.NowPlayer = ""
	}

	return resp
}

// recodeResp rebuilds a stored game by replaying its moves on a new board.
func recodeResp(rec *moverecord.GameRecode) (*types.GameResp, error) {
	first := chess.Player1
	if rec.FirstPlayer == chess.Player2.Name() {
		first = chess.Player2
	}

	g, err := chess.NewGame(rec.BoardSize, first)
	if err != nil {
		return nil, fmt.Errorf("replay game %s: %v", rec.GameUid, err)
	}
	for _, m := range rec.Moves {
		if _, err = g.PlayString(m); err != nil {
			return nil, fmt.Errorf("replay game %s: %v", rec.GameUid, err)
		}
	}

	resp := &types.GameResp{
		GameUid:   string(rec.GameUid),
		PlayerA:   rec.PlayerA,
		PlayerB:   rec.PlayerB,
		NowPlayer: g.NowPlayer.Name(),
		Turns:     g.Turns,
		Moves:     append([]string{}, rec.Moves...),
		Board:     g.Snapshot(),
	}

	if g.Finished() {
		s := g.Summary()
		resp.Summary = &s
		resp.Result = s.Result.String()
		resp.NowPlayer = ""
	}

	return resp, nil
}
