package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"facilities-console/internal/entities"
	"facilities-console/internal/integrations/goods"
	"facilities-console/pkg/apiclient"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/validation"
)

type GoodsLookupServiceInterface interface {
	Lookup(ctx context.Context, nia string) ([]entities.Good, error)
}

// GoodsLookupService ищет записи реестра через собственный прокси консоли /api/goods.
type GoodsLookupService struct {
	client   *apiclient.Client
	validate *validation.CustomValidator
	logger   *zap.Logger
}

func NewGoodsLookupService(client *apiclient.Client, validate *validation.CustomValidator, logger *zap.Logger) GoodsLookupServiceInterface {
	return &GoodsLookupService{client: client, validate: validate, logger: logger.Named("goods_lookup")}
}

// Lookup: пустой NIA - пустой результат без запроса; несовпадение схемы - тоже
// пустой результат; ошибка прокси возвращается вызывающему.
func (s *GoodsLookupService) Lookup(ctx context.Context, nia string) ([]entities.Good, error) {
	nia = strings.TrimSpace(nia)
	if nia == "" {
		return []entities.Good{}, nil
	}

	var raw json.RawMessage
	err := s.client.RequestInto(ctx, "/api/goods/"+url.PathEscape(nia), apiclient.Options{}, &raw)
	if errors.Is(err, apperrors.ErrSchemaMismatch) {
		s.logger.Warn("ответ прокси не в формате JSON", zap.String("nia", nia), zap.Error(err))
		return []entities.Good{}, nil
	}
	if err != nil {
		return nil, err
	}

	result, err := goods.Decode(raw, s.validate)
	if err != nil {
		s.logger.Warn("ответ прокси не прошёл проверку схемы", zap.String("nia", nia), zap.Error(err))
		return []entities.Good{}, nil
	}
	return result, nil
}
