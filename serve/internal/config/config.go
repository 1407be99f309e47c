package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Name         string          `json:",default=dots-chain"`
	ListenOn     string          `json:",default=0.0.0.0:8000"`
	Mode         string          `json:",default=pro,options=dev|test|pro"`
	Log          logx.LogConf    `json:",optional"`
	Profile      bool            `json:",optional"`
	MaxBoardSize int             `json:",default=10"`
	SessionTTL   time.Duration   `json:",default=30m"`
	Redis        redis.RedisConf `json:",optional"`
	MongoConf    struct {
		Url           string        `json:",optional"`
		DataBaseName  string        `json:",default=dots_chain"`
		Collection    string        `json:",optional"`
		FlushInterval time.Duration `json:",default=1s"`
	} `json:",optional"`
}
