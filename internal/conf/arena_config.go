package conf

import (
	"github.com/eesast/sast-api/internal/constants"
	"github.com/spf13/viper"
)

// ArenaConfig 对战房间创建配置
type ArenaConfig struct {
	BaseDir        string // 比赛文件根目录
	Bucket         string // 代码对象存储桶
	MaxActiveRooms int    // 单队伍最大活跃房间数
	QueueSize      int    // 执行队列容量
}

// LoadArenaConfig 从配置文件加载对战配置
func LoadArenaConfig(cfg *viper.Viper) *ArenaConfig {
	ac := &ArenaConfig{
		BaseDir:        cfg.GetString("arena.base_dir"),
		Bucket:         cfg.GetString("arena.bucket"),
		MaxActiveRooms: cfg.GetInt("arena.max_active_rooms"),
		QueueSize:      cfg.GetInt("arena.queue_size"),
	}
	if ac.MaxActiveRooms <= 0 {
		ac.MaxActiveRooms = constants.MaxActiveRoomsPerTeam
	}
	if ac.QueueSize <= 0 {
		ac.QueueSize = constants.DefaultMatchQueueSize
	}
	return ac
}
