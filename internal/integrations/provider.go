package integrations

import "context"

// UpstreamResponse - ответ внешнего реестра как есть: статус, тип и тело.
type UpstreamResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

func (r *UpstreamResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// GoodsProvider - источник записей реестра имущества (bienes) по NIA.
type GoodsProvider interface {
	Name() string
	FetchGoods(ctx context.Context, nia string) (*UpstreamResponse, error)
}
