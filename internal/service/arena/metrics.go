package arena

import (
	"sync/atomic"
	"time"

	apperrors "github.com/eesast/sast-api/pkg/errors"
)

// PipelineMetrics 房间创建流水线统计指标
type PipelineMetrics struct {
	// 计数器
	TotalRequests int64 // 总请求数
	RoomsCreated  int64 // 成功创建的房间数

	// 各失败类别统计
	ValidationFailures  int64 // 参数错误
	NotFoundFailures    int64 // 资源不存在
	ForbiddenFailures   int64 // 无权限/未开放/代码不合格
	RateLimitedFailures int64 // 准入限流
	InternalFailures    int64 // 内部错误

	// 队列
	EnqueueRejected int64 // 执行队列拒绝次数

	// 时间戳
	StartTime time.Time // 启动时间
}

var globalMetrics = &PipelineMetrics{StartTime: time.Now()}

func metrics() *PipelineMetrics {
	return globalMetrics
}

// GetMetrics 获取全局统计实例
func GetMetrics() *PipelineMetrics {
	return globalMetrics
}

// RecordRequest 记录请求
func (m *PipelineMetrics) RecordRequest() {
	atomic.AddInt64(&m.TotalRequests, 1)
}

// RecordRoomCreated 记录成功创建
func (m *PipelineMetrics) RecordRoomCreated() {
	atomic.AddInt64(&m.RoomsCreated, 1)
}

// RecordEnqueueRejected 记录入队被拒
func (m *PipelineMetrics) RecordEnqueueRejected() {
	atomic.AddInt64(&m.EnqueueRejected, 1)
}

// RecordFailure 按错误类别记录失败
func (m *PipelineMetrics) RecordFailure(kind apperrors.Kind) {
	switch kind {
	case apperrors.KindValidation:
		atomic.AddInt64(&m.ValidationFailures, 1)
	case apperrors.KindNotFound:
		atomic.AddInt64(&m.NotFoundFailures, 1)
	case apperrors.KindForbidden:
		atomic.AddInt64(&m.ForbiddenFailures, 1)
	case apperrors.KindRateLimited:
		atomic.AddInt64(&m.RateLimitedFailures, 1)
	default:
		atomic.AddInt64(&m.InternalFailures, 1)
	}
}

// GetSnapshot 获取当前统计快照
func (m *PipelineMetrics) GetSnapshot() map[string]any {
	return map[string]any{
		"total_requests":        atomic.LoadInt64(&m.TotalRequests),
		"rooms_created":         atomic.LoadInt64(&m.RoomsCreated),
		"validation_failures":   atomic.LoadInt64(&m.ValidationFailures),
		"not_found_failures":    atomic.LoadInt64(&m.NotFoundFailures),
		"forbidden_failures":    atomic.LoadInt64(&m.ForbiddenFailures),
		"rate_limited_failures": atomic.LoadInt64(&m.RateLimitedFailures),
		"internal_failures":     atomic.LoadInt64(&m.InternalFailures),
		"enqueue_rejected":      atomic.LoadInt64(&m.EnqueueRejected),
		"uptime_seconds":        int64(time.Since(m.StartTime).Seconds()),
	}
}
