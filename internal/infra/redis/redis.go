package redis

import (
	"context"
	"fmt"
	"time"

	"kulina-go/internal/config"
	"kulina-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Client *redis.Client

// 登出令牌黑名单的键前缀
const tokenDenyPrefix = "auth:denylist:"

// Init 初始化Redis客户端
func Init(cfg *config.RedisConfig) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return nil
}

// DenyToken 将令牌 jti 拉黑至其过期时刻
func DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(ctx, tokenDenyPrefix+jti, 1, ttl).Err()
}

// IsTokenDenied 检查令牌 jti 是否已被拉黑
// Redis 未初始化时放行，认证本身仍由 JWT 校验保证
func IsTokenDenied(ctx context.Context, jti string) bool {
	if Client == nil || jti == "" {
		return false
	}
	n, err := Client.Exists(ctx, tokenDenyPrefix+jti).Result()
	if err != nil {
		logger.Warn("Redis denylist check failed", zap.Error(err))
		return false
	}
	return n > 0
}

// Close 关闭Redis连接
func Close() error {
	if Client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return Client.Close()
}

// Get 获取Redis客户端实例
func Get() *redis.Client {
	return Client
}
