package main

import (
	"flag"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Log              logx.LogConf    `json:",optional"`
	BoardSize        int             `json:",default=6"`
	Games            int             `json:",default=1000"`
	Seed             int64           `json:",optional"`
	Workers          int             `json:",optional"`
	PlayerA          string          `json:",default=chain,options=chain|random|greedy"`
	PlayerB          string          `json:",default=random,options=chain|random|greedy"`
	SinglePlayFile   string          `json:",default=single_play.txt"`
	MultiplePlayFile string          `json:",default=multiple_play.txt"`
	Color            bool            `json:",optional"`
	ProgressBar      bool            `json:",default=true"`
	ProfileAddr      string          `json:",optional"`
	Redis            redis.RedisConf `json:",optional"`
	MongoConf        struct {
		Url           string        `json:",optional"`
		DataBaseName  string        `json:",default=dots_chain"`
		Collection    string        `json:",optional"`
		FlushInterval time.Duration `json:",default=1s"`
	} `json:",optional"`
}

var (
	configFile = flag.String("f", "etc/engine.yaml", "the config file")
	boardSize  = flag.Int("n", 0, "boxes per row, overrides BoardSize")
	games      = flag.Int("games", 0, "number of games, overrides Games")
	seed       = flag.Int64("seed", -1, "random seed, overrides Seed")
)

func initConfig() (c Config) {
	flag.Parse()
	conf.MustLoad(*configFile, &c)

	if *boardSize > 0 {
		c.BoardSize = *boardSize
	}
	if *games > 0 {
		c.Games = *games
	}
	if *seed >= 0 {
		c.Seed = *seed
	}

	return
}
