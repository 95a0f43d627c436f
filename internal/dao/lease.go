package dao

import (
	"context"
	"fmt"

	"github.com/eesast/sast-api/internal/constants"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LeaseDao 队伍开房租约，流水线运行期间独占
// 用 Redis SET NX EX 实现，替代纯粹的先查后插准入判断
type LeaseDao struct {
	client *redis.Client
}

func NewLeaseDao() *LeaseDao {
	return &LeaseDao{client: RedisClient}
}

func leaseKey(contestID, teamID string) string {
	return fmt.Sprintf("arena:lease:%s:%s", contestID, teamID)
}

// Acquire 获取租约；已被占用时返回 false
// 成功时返回释放函数，流水线结束后必须调用
func (d *LeaseDao) Acquire(ctx context.Context, contestID, teamID string) (bool, func(), error) {
	key := leaseKey(contestID, teamID)
	ok, err := d.client.SetNX(ctx, key, "1", constants.TeamLeaseTTL).Result()
	if err != nil {
		return false, nil, err
	}
	if !ok {
		return false, nil, nil
	}
	release := func() {
		// 释放用独立的 context：请求被取消时租约也要还回去
		if err := d.client.Del(context.Background(), key).Err(); err != nil {
			zap.L().Warn("释放队伍租约失败", zap.String("key", key), zap.Error(err))
		}
	}
	return true, release, nil
}
