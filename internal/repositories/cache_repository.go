package repositories

import (
	"context"
	"time"

	apperrors "facilities-console/pkg/errors"
)

// CacheRepositoryInterface - кеш ответов внешнего реестра.
// Промах возвращается как apperrors.ErrNotFound.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// NoopCacheRepository используется, когда REDIS_ADDRESS не задан.
type NoopCacheRepository struct{}

func NewNoopCacheRepository() CacheRepositoryInterface { return NoopCacheRepository{} }

func (NoopCacheRepository) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCacheRepository) Get(context.Context, string) (string, error) {
	return "", apperrors.ErrNotFound
}

func (NoopCacheRepository) Del(context.Context, ...string) error { return nil }
