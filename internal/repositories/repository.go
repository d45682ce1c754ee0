package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"facilities-console/pkg/apiclient"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/types"
	"facilities-console/pkg/utils"
)

// apiResource - общий CRUD над одним ресурсом backend API.
// Репозитории сущностей лишь задают путь и тип.
type apiResource[T any] struct {
	client *apiclient.Client
	path   string
	logger *zap.Logger
}

func newAPIResource[T any](client *apiclient.Client, path string, logger *zap.Logger) apiResource[T] {
	return apiResource[T]{client: client, path: path, logger: logger}
}

func (r apiResource[T]) itemPath(id uint64) string {
	return r.path + "/" + strconv.FormatUint(id, 10)
}

func (r apiResource[T]) list(ctx context.Context, q types.ListQuery) (types.ListResponse[T], error) {
	var resp types.ListResponse[T]
	if err := r.client.RequestInto(ctx, utils.WithQuery(r.path, q), apiclient.Options{}, &resp); err != nil {
		return types.ListResponse[T]{}, err
	}
	if resp.Items == nil {
		resp.Items = []T{}
	}
	return resp, nil
}

// all читает справочник целиком. Часть ресурсов отдаёт голый массив,
// часть - конверт {items, meta}; принимаем оба варианта.
func (r apiResource[T]) all(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	path := utils.WithQuery(r.path, types.ListQuery{Page: 1, Limit: utils.MaxLimit})
	if err := r.client.RequestInto(ctx, path, apiclient.Options{}, &raw); err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var envelope types.ListResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrSchemaMismatch, r.path, err)
	}
	if envelope.Items == nil {
		envelope.Items = []T{}
	}
	return envelope.Items, nil
}

func (r apiResource[T]) find(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.client.RequestInto(ctx, r.itemPath(id), apiclient.Options{}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r apiResource[T]) create(ctx context.Context, payload interface{}) error {
	_, err := r.client.Request(ctx, r.path, apiclient.Options{Method: http.MethodPost, JSON: payload})
	return err
}

func (r apiResource[T]) update(ctx context.Context, id uint64, payload interface{}) error {
	_, err := r.client.Request(ctx, r.itemPath(id), apiclient.Options{Method: http.MethodPatch, JSON: payload})
	return err
}

func (r apiResource[T]) delete(ctx context.Context, id uint64) error {
	_, err := r.client.Request(ctx, r.itemPath(id), apiclient.Options{Method: http.MethodDelete})
	if err != nil {
		r.logger.Warn("ошибка удаления", zap.String("path", r.itemPath(id)), zap.Error(err))
	}
	return err
}
