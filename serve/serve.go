package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/dots-chain/serve/internal/config"
	"github.com/HuXin0817/dots-chain/serve/internal/handler"
	"github.com/HuXin0817/dots-chain/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides ListenOn")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Mode != service.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	srv := &http.Server{Addr: c.ListenOn, Handler: router}

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		fmt.Printf("Starting server at %s...\n", c.ListenOn)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("listen: %v", err)
			cancel()
		}
	}()

	<-stop.Done()

	shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdown); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}
