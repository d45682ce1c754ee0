// Файл: pkg/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "facilities-console/pkg/errors"
)

// Options - параметры одного запроса.
type Options struct {
	Method  string
	JSON    interface{}
	Headers map[string]string
}

// Client - тонкая обёртка над http.Client для JSON API.
// Все не-2xx ответы превращаются в *apperrors.APIError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	raw    []byte
	isJSON bool
}

// Request выполняет запрос и возвращает разобранное тело: JSON (map/slice/...) если
// сервер прислал application/json, строку для остального, nil для пустого тела.
func (c *Client) Request(ctx context.Context, path string, opts Options) (interface{}, error) {
	resp, err := c.do(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return resp.parsed()
}

// RequestInto - то же самое, но JSON раскладывается в out.
func (c *Client) RequestInto(ctx context.Context, path string, opts Options, out interface{}) error {
	resp, err := c.do(ctx, path, opts)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.raw)) == 0 {
		return nil
	}
	if !resp.isJSON {
		return fmt.Errorf("%w: %s no devolvió JSON", apperrors.ErrSchemaMismatch, path)
	}
	if err := json.Unmarshal(resp.raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrSchemaMismatch, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string, opts Options) (*response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.JSON != nil {
		payload, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if opts.JSON != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: чтение ответа %s %s: %v", apperrors.ErrTransport, method, path, err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	r := &response{
		status: resp.StatusCode,
		raw:    raw,
		isJSON: strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "application/json"),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, r.toError()
	}
	return r, nil
}

func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (r *response) parsed() (interface{}, error) {
	if len(bytes.TrimSpace(r.raw)) == 0 {
		return nil, nil
	}
	if !r.isJSON {
		return string(r.raw), nil
	}
	var v interface{}
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSchemaMismatch, err)
	}
	return v, nil
}

// toError нормализует тело ошибки: message (строка) > error > текст статуса.
// Если message - массив, это ошибки валидации, они уходят в Details.
func (r *response) toError() *apperrors.APIError {
	apiErr := &apperrors.APIError{Status: r.status, Message: http.StatusText(r.status)}
	if apiErr.Message == "" {
		apiErr.Message = "HTTP " + strconv.Itoa(r.status)
	}

	text := strings.TrimSpace(string(r.raw))
	if text == "" {
		return apiErr
	}
	if !r.isJSON {
		apiErr.Raw = text
		return apiErr
	}

	var body interface{}
	if err := json.Unmarshal(r.raw, &body); err != nil {
		apiErr.Raw = text
		return apiErr
	}
	apiErr.Raw = body

	obj, ok := body.(map[string]interface{})
	if !ok {
		return apiErr
	}

	switch msg := obj["message"].(type) {
	case string:
		if msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	case []interface{}:
		for _, item := range msg {
			apiErr.Details = append(apiErr.Details, fmt.Sprint(item))
		}
		if len(apiErr.Details) > 0 {
			apiErr.Message = strings.Join(apiErr.Details, "; ")
			return apiErr
		}
	}

	if e, ok := obj["error"].(string); ok && e != "" {
		apiErr.Message = e
	}
	return apiErr
}
