package server

import (
	"net/http"

	"github.com/eesast/sast-api/internal/handler"
	"github.com/eesast/sast-api/internal/middleware"
	"github.com/eesast/sast-api/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func SetupRoutes(cfg *viper.Viper) *gin.Engine {
	if cfg.GetString("server.mode") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logging.GinLogger(), logging.GinRecovery(true)) // 日志中间件，记录请求日志
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowAllOrigins = true
	r.Use(cors.New(corsCfg)) // CORS 跨域中间件，简单粗暴，直接放行所有跨域请求

	// 健康检查和监控端点（不需要认证）
	r.GET("/health", handler.HealthCheckHandler)
	r.GET("/metrics", handler.MetricsHandler)
	r.GET("/system", handler.SystemInfoHandler)

	apiV1 := r.Group("/v1")
	{
		arenaGroup := apiV1.Group("/arena", middleware.Auth())
		arenaGroup.POST("/create", handler.CreateRoomHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"msg": "404",
		})
	})
	return r
}
