package main

import (
	"flag"
	"fmt"

	"github.com/eesast/sast-api/internal/conf"
	"github.com/eesast/sast-api/internal/dao"
	"github.com/eesast/sast-api/internal/server"
	"github.com/eesast/sast-api/internal/service/arena"
	"github.com/eesast/sast-api/pkg/jwt"
	"github.com/eesast/sast-api/pkg/logging"
	"github.com/eesast/sast-api/pkg/snowflake"
)

var confPath = flag.String("conf", "./config/config.yaml", "配置文件路径")

func main() {
	// 加载配置
	flag.Parse()
	cfg := conf.Load(*confPath)
	if err := conf.ValidateConfig(cfg); err != nil {
		panic(err)
	}

	// 初始化日志
	logger, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Printf("init logger failed, err:%v\n", err)
		return
	}
	defer logger.Sync()

	dao.MustInitPostgres(cfg) // 初始化 Postgres 连接
	dao.MustInitRedis(cfg)    // 初始化 Redis
	dao.MustInitMinIO(cfg)    // 初始化 MinIO 连接
	jwt.MustInit(cfg)         // 初始化 jwt
	snowflake.MustInit(cfg)   // 初始化 snowflake
	arena.MustInit(cfg)       // 组装房间创建流水线

	// 初始化路由
	r := server.SetupRoutes(cfg)
	// 启动服务
	err = r.Run(fmt.Sprintf(":%d", cfg.GetInt("server.port")))
	if err != nil {
		panic(err)
	}
}
