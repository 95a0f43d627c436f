package handler

import (
	"runtime"
	"time"

	"github.com/eesast/sast-api/api"
	"github.com/eesast/sast-api/internal/service/arena"
	"github.com/gin-gonic/gin"
)

// HealthCheckHandler 健康检查接口
func HealthCheckHandler(c *gin.Context) {
	api.ResponseSuccess(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "sast-api",
	})
}

// MetricsHandler 获取房间创建统计信息
func MetricsHandler(c *gin.Context) {
	snapshot := arena.GetMetrics().GetSnapshot()
	if q := arena.DefaultQueue(); q != nil {
		snapshot["queue_depth"] = q.Len()
		snapshot["queue_capacity"] = q.Cap()
	}
	if cc := arena.DefaultCache(); cc != nil {
		hits, misses := cc.Stats()
		snapshot["cache_hits"] = hits
		snapshot["cache_misses"] = misses
	}
	api.ResponseSuccess(c, snapshot)
}

// SystemInfoHandler 获取系统信息
func SystemInfoHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	info := gin.H{
		// Go运行时信息
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
		"cpu_cores":  runtime.NumCPU(),

		// 内存信息
		"memory": gin.H{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"gc_count":       m.NumGC,
		},

		// 流水线统计
		"arena_stats": arena.GetMetrics().GetSnapshot(),
	}

	api.ResponseSuccess(c, info)
}
