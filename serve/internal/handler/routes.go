package handler

import (
	"github.com/HuXin0817/dots-chain/pkg/pprof"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	v1 := router.Group("/v1")
	{
		v1.POST("/games", CreateGameHandler(svcCtx))
		v1.GET("/games/:id", GetGameHandler(svcCtx))
		v1.POST("/games/:id/moves", MoveHandler(svcCtx))
		v1.GET("/games/:id/watch", WatchHandler(svcCtx))
		v1.GET("/stats", StatsHandler(svcCtx))
	}

	if svcCtx.Config.Profile {
		pprof.Register(router)
	}
}
