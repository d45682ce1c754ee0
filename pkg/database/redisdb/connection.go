package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"facilities-console/pkg/config"
)

// Connect открывает клиент Redis. Пустой адрес означает, что кеш выключен:
// возвращается (nil, nil).
func Connect(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Address == "" {
		logger.Info("REDIS_ADDRESS не задан, кеш реестра имущества выключен")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("не удалось подключиться к Redis %s: %w", cfg.Address, err)
	}

	logger.Info("✅ Подключено к Redis", zap.String("address", cfg.Address))
	return client, nil
}
