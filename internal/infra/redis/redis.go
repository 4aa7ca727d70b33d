package redis

import (
	"context"
	"fmt"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Client *redis.Client

// Init 初始化 Redis 客户端并验证连通性
func Init(cfg *config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	Client = c
	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)
	return nil
}

// Close 关闭 Redis 连接
func Close() error {
	if Client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return Client.Close()
}

// Get 获取 Redis 客户端实例
func Get() *redis.Client {
	return Client
}
