package pprof

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultPrefix = pprof.DefaultPrefix

// Register mounts the runtime profiles under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Serve starts a standalone profiling server on addr in the background and
// returns it so the caller can shut it down.
func Serve(addr string) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())
	Register(router)

	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Errorf("pprof server: %v", err)
		}
	}()

	return srv
}
