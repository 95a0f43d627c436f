package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB          *gorm.DB      // 全局数据库连接
	RedisClient *redis.Client // 全局 Redis 连接
	MinIOClient *minio.Client // 全局 MinIO 连接
)

// MustInitPostgres 初始化 Postgres 连接
func MustInitPostgres(cfg *viper.Viper) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.GetString("postgres.host"),
		cfg.GetString("postgres.user"),
		cfg.GetString("postgres.password"),
		cfg.GetString("postgres.dbname"),
		cfg.GetInt("postgres.port"),
	)
	db, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		panic(fmt.Errorf("connect db fail: %w", err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Errorf("connect db fail: %w", err))
	}
	// 设置连接池参数
	sqlDB.SetMaxIdleConns(cfg.GetInt("postgres.max_idle_conns"))
	sqlDB.SetMaxOpenConns(cfg.GetInt("postgres.max_open_conns"))
	sqlDB.SetConnMaxLifetime(cfg.GetDuration("postgres.max_lifetime"))
	DB = db
}

// MustInitRedis 初始化 Redis 连接
func MustInitRedis(conf *viper.Viper) {
	addr := fmt.Sprintf("%s:%d", conf.GetString("redis.host"), conf.GetInt("redis.port"))
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.GetString("redis.password"),
		DB:       conf.GetInt("redis.db"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		panic(fmt.Errorf("init redis failed, err:%w", err))
	}
	RedisClient = rdb
}

// MustInitMinIO 初始化 MinIO 连接
func MustInitMinIO(cfg *viper.Viper) {
	client, err := minio.New(cfg.GetString("minio.endpoint"), &minio.Options{
		Creds: credentials.NewStaticV4(
			cfg.GetString("minio.access_key"),
			cfg.GetString("minio.secret_key"),
			"",
		),
		Secure: cfg.GetBool("minio.use_ssl"),
	})
	if err != nil {
		panic(fmt.Errorf("init minio failed, err:%w", err))
	}
	MinIOClient = client
}
