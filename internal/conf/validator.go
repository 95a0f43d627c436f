package conf

import (
	"fmt"

	"github.com/spf13/viper"
)

// ValidateConfig 验证配置文件
func ValidateConfig(cfg *viper.Viper) error {
	// 验证服务器配置
	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("服务器配置错误: %w", err)
	}

	// 验证对战配置
	if err := validateArenaConfig(cfg); err != nil {
		return fmt.Errorf("对战配置错误: %w", err)
	}

	return nil
}

// validateServerConfig 验证服务器配置
func validateServerConfig(cfg *viper.Viper) error {
	port := cfg.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("端口号无效: %d (应在1-65535之间)", port)
	}

	mode := cfg.GetString("server.mode")
	if mode != "dev" && mode != "prod" && mode != "test" {
		return fmt.Errorf("运行模式无效: %s (应为dev/prod/test)", mode)
	}

	return nil
}

// validateArenaConfig 验证对战配置
func validateArenaConfig(cfg *viper.Viper) error {
	if cfg.GetString("arena.base_dir") == "" {
		return fmt.Errorf("比赛文件根目录未配置")
	}
	if cfg.GetString("arena.bucket") == "" {
		return fmt.Errorf("对象存储桶未配置")
	}
	if n := cfg.GetInt("arena.max_active_rooms"); n < 0 {
		return fmt.Errorf("单队伍最大活跃房间数无效: %d", n)
	}
	if n := cfg.GetInt("arena.queue_size"); n < 0 {
		return fmt.Errorf("执行队列容量无效: %d", n)
	}
	return nil
}
