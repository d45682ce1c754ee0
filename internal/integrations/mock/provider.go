package mock

import (
	"context"
	"encoding/json"
	"net/http"

	"facilities-console/internal/entities"
	"facilities-console/internal/integrations"
)

// MockProvider отвечает фиксированными записями. Включается GOODS_PROVIDER=mock
// для локальной разработки без доступа к реестру.
type MockProvider struct {
	Goods      map[string][]entities.Good
	ShouldFail bool
}

func NewMockProvider(goods map[string][]entities.Good) *MockProvider {
	if goods == nil {
		goods = map[string][]entities.Good{}
	}
	return &MockProvider{Goods: goods}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) FetchGoods(ctx context.Context, nia string) (*integrations.UpstreamResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ShouldFail {
		return &integrations.UpstreamResponse{
			Status:      http.StatusServiceUnavailable,
			ContentType: "application/json",
			Body:        []byte(`{"message":"Registro no disponible"}`),
		}, nil
	}

	goods := m.Goods[nia]
	if goods == nil {
		goods = []entities.Good{}
	}
	body, err := json.Marshal(goods)
	if err != nil {
		return nil, err
	}
	return &integrations.UpstreamResponse{Status: http.StatusOK, ContentType: "application/json", Body: body}, nil
}
