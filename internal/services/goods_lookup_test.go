package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facilities-console/pkg/apiclient"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/validation"
)

func newLookup(t *testing.T, status int, contentType, body string) (GoodsLookupServiceInterface, *int32, *atomic.Value) {
	t.Helper()
	var calls int32
	var path atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		path.Store(r.URL.EscapedPath())
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewGoodsLookupService(apiclient.New(srv.URL), validation.New(), zap.NewNop()), &calls, &path
}

func TestGoodsLookup_BlankNIAShortCircuits(t *testing.T) {
	lookup, calls, _ := newLookup(t, http.StatusOK, "application/json", `[]`)

	for _, nia := range []string{"", "   ", "\t\n"} {
		result, err := lookup.Lookup(context.Background(), nia)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	}
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestGoodsLookup_Success(t *testing.T) {
	lookup, calls, path := newLookup(t, http.StatusOK, "application/json",
		`[{"nia":"000123","descripcion":"Proyector","estado":"Bueno"}]`)

	result, err := lookup.Lookup(context.Background(), " 000123 ")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Proyector", result[0].Description)
	assert.Equal(t, "/api/goods/000123", path.Load())
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGoodsLookup_SchemaMismatchIsEmpty(t *testing.T) {
	for _, tc := range []struct{ contentType, body string }{
		{"application/json", `[{"nia":"1"}]`},
		{"application/json", `{"items":[]}`},
		{"text/html", `<html></html>`},
	} {
		lookup, _, _ := newLookup(t, http.StatusOK, tc.contentType, tc.body)
		result, err := lookup.Lookup(context.Background(), "1")
		require.NoError(t, err, tc.body)
		assert.Empty(t, result, tc.body)
	}
}

func TestGoodsLookup_ProxyErrorIsReturned(t *testing.T) {
	lookup, _, _ := newLookup(t, http.StatusBadGateway, "application/json", `{"message":"Respuesta inválida del registro"}`)

	_, err := lookup.Lookup(context.Background(), "1")
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Respuesta inválida del registro", apiErr.Message)
}
