package handler

import (
	"net/http"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/serve/internal/logic"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func CreateGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateGameReq
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, logic.BoardSizeOutOfRangeErr)
			return
		}

		resp, err := logic.NewCreateGameLogic(c.Request.Context(), svcCtx).CreateGame(&req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusCreated, resp)
	}
}

func GetGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).GetGame(c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, resp)
	}
}

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MoveReq
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, chess.ErrInvalidFormat)
			return
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Move(c.Param("id"), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, resp)
	}
}

func StatsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StatsReq
		if err := c.ShouldBindQuery(&req); err != nil {
			fail(c, logic.BoardSizeOutOfRangeErr)
			return
		}

		resp, err := logic.NewStatsLogic(c.Request.Context(), svcCtx).Stats(&req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, resp)
	}
}
