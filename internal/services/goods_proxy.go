package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"facilities-console/internal/entities"
	"facilities-console/internal/integrations"
	"facilities-console/internal/integrations/goods"
	"facilities-console/internal/repositories"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/validation"
)

// UpstreamError - реестр ответил не-2xx. Прокси отдаёт статус и тело как есть.
type UpstreamError struct {
	Response *integrations.UpstreamResponse
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("реестр имущества ответил %d", e.Response.Status)
}

type GoodsProxyServiceInterface interface {
	Fetch(ctx context.Context, nia string) ([]entities.Good, error)
}

type GoodsProxyService struct {
	registry integrations.RegistryInterface
	cache    repositories.CacheRepositoryInterface
	validate *validation.CustomValidator
	ttl      time.Duration
	logger   *zap.Logger
}

func NewGoodsProxyService(
	registry integrations.RegistryInterface,
	cache repositories.CacheRepositoryInterface,
	validate *validation.CustomValidator,
	ttl time.Duration,
	logger *zap.Logger,
) GoodsProxyServiceInterface {
	return &GoodsProxyService{
		registry: registry,
		cache:    cache,
		validate: validate,
		ttl:      ttl,
		logger:   logger.Named("goods_proxy"),
	}
}

// Fetch проверяет конфигурацию раньше идентификатора: без базового URL
// запрос не уходит никуда.
func (s *GoodsProxyService) Fetch(ctx context.Context, nia string) ([]entities.Good, error) {
	provider, err := s.registry.GetActive()
	if err != nil {
		s.logger.Error("реестр имущества не настроен", zap.Error(err))
		return nil, err
	}

	nia = strings.TrimSpace(nia)
	if nia == "" {
		return nil, fmt.Errorf("%w: NIA requerido", apperrors.ErrBadRequest)
	}

	if cached, ok := s.fromCache(ctx, nia); ok {
		return cached, nil
	}

	resp, err := provider.FetchGoods(ctx, nia)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		s.logger.Warn("реестр вернул ошибку", zap.String("nia", nia), zap.Int("status", resp.Status))
		return nil, &UpstreamError{Response: resp}
	}

	result, err := goods.Decode(resp.Body, s.validate)
	if err != nil {
		s.logger.Warn("ответ реестра не прошёл проверку схемы", zap.String("nia", nia), zap.Error(err))
		return nil, err
	}

	s.toCache(ctx, nia, result)
	return result, nil
}

func (s *GoodsProxyService) fromCache(ctx context.Context, nia string) ([]entities.Good, bool) {
	raw, err := s.cache.Get(ctx, nia)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("ошибка чтения кеша", zap.String("nia", nia), zap.Error(err))
		}
		return nil, false
	}
	var result []entities.Good
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *GoodsProxyService) toCache(ctx context.Context, nia string, result []entities.Good) {
	if s.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, nia, payload, s.ttl); err != nil {
		s.logger.Warn("ошибка записи в кеш", zap.String("nia", nia), zap.Error(err))
	}
}
