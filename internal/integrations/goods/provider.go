package goods

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"facilities-console/internal/integrations"
	apperrors "facilities-console/pkg/errors"
)

const ProviderName = "bienes"

// Provider ходит во внешний реестр имущества: GET {baseURL}/bienes/{nia}.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) integrations.GoodsProvider {
	return &Provider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.Named("goods_provider"),
	}
}

func (p *Provider) Name() string {
	return ProviderName
}

// FetchGoods возвращает ответ реестра без интерпретации статуса:
// решение о прозрачной передаче ошибки принимает прокси.
func (p *Provider) FetchGoods(ctx context.Context, nia string) (*integrations.UpstreamResponse, error) {
	endpoint := p.baseURL + "/bienes/" + url.PathEscape(nia)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GET-запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: реестр имущества: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: чтение ответа реестра: %v", apperrors.ErrTransport, err)
	}

	p.logger.Debug("ответ реестра имущества",
		zap.String("nia", nia),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &integrations.UpstreamResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
