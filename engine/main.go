package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/dots-chain/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	c := initConfig()
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.ProfileAddr != "" {
		srv := pprof.Serve(c.ProfileAddr)
		defer srv.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := newPersister(c)
	err := run(ctx, c, p, os.Stdout, os.Stderr)
	if cerr := p.Close(); cerr != nil {
		logx.Errorf("flush game records: %v", cerr)
	}
	if err != nil {
		logx.Errorf("engine: %v", err)
		logx.Close()
		os.Exit(1)
	}
}
