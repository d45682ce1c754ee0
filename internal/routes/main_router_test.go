// Файл: internal/routes/main_router_test.go
package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/listeners"
	"facilities-console/internal/services"
	"facilities-console/internal/views"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/config"
	"facilities-console/pkg/eventbus"
	"facilities-console/pkg/validation"
	"facilities-console/pkg/websocket"
)

// recorder запоминает запросы фейкового сервера: "GET /campus?limit=8&page=1".
type recorder struct {
	mu       sync.Mutex
	requests []string
}

func (r *recorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := req.Method + " " + req.URL.Path
	if req.URL.RawQuery != "" {
		line += "?" + req.URL.RawQuery
	}
	r.requests = append(r.requests, line)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = nil
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

// count считает запросы с данным методом и путём без учёта query.
func (r *recorder) count(method, path string) int {
	n := 0
	for _, line := range r.all() {
		target := strings.SplitN(strings.TrimPrefix(line, method+" "), "?", 2)[0]
		if strings.HasPrefix(line, method+" ") && target == path {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

const campusPage = `{"items":[
	{"id":1,"codigo":"C-01","nombre":"Central","direccion":"Av. Busch","lat":-17.78,"lng":-63.18,"activo":true},
	{"id":2,"codigo":"C-02","nombre":"Norte","direccion":"Km 9","lat":-17.70,"lng":-63.16,"activo":true}
],"meta":{"page":1,"take":8,"total":17}}`

func backendHandler(rec *recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch r.Method + " " + r.URL.Path {
		case "GET /campus":
			if r.URL.Query().Get("search") == "norte" {
				writeJSON(w, http.StatusOK, `{"items":[{"id":2,"codigo":"C-02","nombre":"Norte","direccion":"Km 9","lat":-17.7,"lng":-63.16,"activo":true}],"meta":{"page":1,"take":8,"total":1}}`)
				return
			}
			writeJSON(w, http.StatusOK, campusPage)
		case "DELETE /campus/1":
			w.WriteHeader(http.StatusNoContent)
		case "DELETE /campus/2":
			writeJSON(w, http.StatusConflict, `{"message":"Campus en uso por 3 facultades"}`)
		case "GET /facultades":
			writeJSON(w, http.StatusOK, `[{"id":1,"codigo":"FCET","nombre":"Tecnología","campus_id":1}]`)
		case "GET /tipo_bloques":
			writeJSON(w, http.StatusOK, `{"items":[{"id":1,"nombre":"Aulas"}],"meta":{"page":1}}`)
		case "GET /bloques":
			writeJSON(w, http.StatusOK, `{"items":[],"meta":{"page":1,"take":8,"total":0}}`)
		case "POST /bloques":
			writeJSON(w, http.StatusCreated, `{"id":9}`)
		case "GET /activos":
			writeJSON(w, http.StatusOK, `{"items":[{"id":5,"nia":"100","nombre":"Proyector aula 12","ambiente_codigo":"A-12"}],"meta":{"page":1,"take":8,"hasNextPage":false}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"Not Found"}`)
		}
	}
}

func upstreamHandler(rec *recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch r.URL.Path {
		case "/bienes/100":
			writeJSON(w, http.StatusOK, `[{"nia":"100","descripcion":"Proyector Epson","estado":"Bueno","valorInicial":4850}]`)
		case "/bienes/bad":
			writeJSON(w, http.StatusOK, `[{"nia":"bad"}]`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"NIA no existe"}`)
		}
	}
}

// console - собранная консоль поверх фейковых backend и реестра.
type console struct {
	echo   *echo.Echo
	server *httptest.Server
	bus    *eventbus.Bus
}

func newConsole(t *testing.T, backendURL, goodsURL string) *console {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{
		Env:   config.EnvTest,
		API:   config.APIConfig{Timeout: 5 * time.Second},
		Goods: config.GoodsConfig{BaseURL: goodsURL, Provider: "bienes"},
		List:  config.ListConfig{PageSize: 8},
	}

	e := echo.New()
	server := httptest.NewServer(e)

	registry, err := NewGoodsRegistry(cfg, logger)
	require.NoError(t, err)
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	bus := eventbus.New(logger)
	listeners.NewAuditListener(logger).Register(bus)
	listeners.NewLiveListListener(hub, logger).Register(bus)

	InitRouter(e, Dependencies{
		Config:        cfg,
		API:           apiclient.New(backendURL),
		Self:          apiclient.New(server.URL),
		Hub:           hub,
		Bus:           bus,
		Validator:     validation.New(dto.CoordinateTypes()...),
		Renderer:      renderer,
		Notifications: services.NewNotificationService(logger),
		Goods:         registry,
	}, &Loggers{Main: logger, Goods: logger, Live: logger})

	c := &console{echo: e, server: server, bus: bus}
	t.Cleanup(func() {
		bus.Wait()
		cancel()
		server.Close()
	})
	return c
}

type ConsoleTestSuite struct {
	suite.Suite
	backend     *httptest.Server
	backendLog  *recorder
	upstream    *httptest.Server
	upstreamLog *recorder
	console     *console
	browser     *http.Client
}

func (s *ConsoleTestSuite) SetupTest() {
	s.backendLog = &recorder{}
	s.backend = httptest.NewServer(backendHandler(s.backendLog))
	s.upstreamLog = &recorder{}
	s.upstream = httptest.NewServer(upstreamHandler(s.upstreamLog))
	s.console = newConsole(s.T(), s.backend.URL, s.upstream.URL)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.browser = &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.backend.Close()
	s.upstream.Close()
}

func (s *ConsoleTestSuite) get(path string) (int, string) {
	resp, err := s.browser.Get(s.console.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *ConsoleTestSuite) postForm(path string, form url.Values) (*http.Response, string) {
	resp, err := s.browser.PostForm(s.console.server.URL+path, form)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, string(body)
}

func (s *ConsoleTestSuite) TestCampusListRendersRowsAndPages() {
	status, body := s.get("/campus")

	s.Equal(http.StatusOK, status)
	s.Contains(body, "Central")
	s.Contains(body, "Norte")
	s.Contains(body, "Página 1 de 3")
	s.Contains(body, `href="/campus/1/delete"`)
	s.Equal([]string{"GET /campus?limit=8&page=1"}, s.backendLog.all())
}

func (s *ConsoleTestSuite) TestCampusListSortsCurrentPage() {
	_, body := s.get("/campus?sort=-nombre")
	s.Less(strings.Index(body, "Norte"), strings.Index(body, "Central"))
	s.Contains(body, "▼")
}

func (s *ConsoleTestSuite) TestSearchIsForwardedToBackend() {
	_, body := s.get("/campus?search=norte&page=1")
	s.Contains(body, "Norte")
	s.NotContains(body, "Central")
	s.Equal([]string{"GET /campus?limit=8&page=1&search=norte"}, s.backendLog.all())
}

func (s *ConsoleTestSuite) TestDeleteSuccessRefetchesOnceAndShowsToast() {
	resp, body := s.postForm("/campus/1/delete?page=2", nil)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("/campus", resp.Request.URL.Path)
	s.Equal("2", resp.Request.URL.Query().Get("page"))
	s.Contains(body, "Campus eliminado")
	s.Equal(1, s.backendLog.count(http.MethodDelete, "/campus/1"))
	s.Equal(1, s.backendLog.count(http.MethodGet, "/campus"))

	// тост показывается один раз
	_, again := s.get("/campus")
	s.NotContains(again, "Campus eliminado")
}

func (s *ConsoleTestSuite) TestDeleteFailureShowsUpstreamMessage() {
	resp, body := s.postForm("/campus/2/delete", nil)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, "Campus en uso por 3 facultades")
	s.NotContains(body, "Campus eliminado")
	s.Contains(body, "Central")
}

func (s *ConsoleTestSuite) TestDeleteConfirmationDialog() {
	status, body := s.get("/campus/1/delete?page=2")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `action="/campus/1/delete?page=2"`)
	s.Contains(body, `href="/campus?page=2"`)
	s.Equal(0, s.backendLog.count(http.MethodDelete, "/campus/1"))
}

func (s *ConsoleTestSuite) TestBlockFormLatitudeWithoutLongitude() {
	resp, body := s.postForm("/bloques", url.Values{
		"codigo":         {"B-10"},
		"nombre":         {"Bloque 10"},
		"pisos":          {"3"},
		"lat":            {"-17,78"},
		"facultad_id":    {"1"},
		"tipo_bloque_id": {"1"},
	})

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Contains(body, validation.CoordsPairMessage)
	s.Equal(0, s.backendLog.count(http.MethodPost, "/bloques"))
	s.ElementsMatch([]string{"GET /facultades?limit=100&page=1", "GET /tipo_bloques?limit=100&page=1"}, s.backendLog.all())
}

func (s *ConsoleTestSuite) TestBlockFormValidSubmitsOnce() {
	resp, body := s.postForm("/bloques", url.Values{
		"codigo":         {"B-10"},
		"nombre":         {"Bloque 10"},
		"pisos":          {"3"},
		"lat":            {"-17.78"},
		"lng":            {"-63.18"},
		"facultad_id":    {"1"},
		"tipo_bloque_id": {"1"},
	})

	s.Equal("/bloques", resp.Request.URL.Path)
	s.Contains(body, "Bloque creado")
	s.Equal(1, s.backendLog.count(http.MethodPost, "/bloques"))
}

func (s *ConsoleTestSuite) TestGoodsProxy() {
	s.Run("valid payload", func() {
		status, body := s.get("/api/goods/100")
		s.Equal(http.StatusOK, status)
		s.Contains(body, "Proyector Epson")
	})
	s.Run("blank nia", func() {
		status, _ := s.get("/api/goods/%20")
		s.Equal(http.StatusBadRequest, status)
		status, _ = s.get("/api/goods/")
		s.Equal(http.StatusBadRequest, status)
	})
	s.Run("upstream error passthrough", func() {
		status, body := s.get("/api/goods/999")
		s.Equal(http.StatusNotFound, status)
		s.JSONEq(`{"message":"NIA no existe"}`, body)
	})
	s.Run("schema mismatch", func() {
		status, _ := s.get("/api/goods/bad")
		s.Equal(http.StatusBadGateway, status)
	})
}

func (s *ConsoleTestSuite) TestGoodsOverlayGoesThroughProxy() {
	status, body := s.get("/activos/bienes/100")
	s.Equal(http.StatusOK, status)
	s.Contains(body, "Proyector Epson")
	s.Contains(body, "4850.00")
	s.Contains(body, "Proyector aula 12")
	s.Equal(1, s.upstreamLog.count(http.MethodGet, "/bienes/100"))
}

func (s *ConsoleTestSuite) TestGoodsOverlayShowsProxyError() {
	_, body := s.get("/activos/bienes/999")
	s.Contains(body, "NIA no existe")
}

func (s *ConsoleTestSuite) TestExportReturnsWorkbook() {
	resp, err := s.browser.Get(s.console.server.URL + "/activos/export")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Disposition"), "activos_")
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.True(len(data) > 2 && string(data[:2]) == "PK")
}

func (s *ConsoleTestSuite) TestHealthz() {
	status, body := s.get("/healthz")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"liveClients"`)
}

func (s *ConsoleTestSuite) TestUnknownPageRendersErrorPage() {
	status, body := s.get("/campus/abc/edit")
	s.Equal(http.StatusNotFound, status)
	s.Contains(body, "Registro no encontrado")
}

type tableMessage struct {
	Type    string                  `json:"type"`
	Payload websocket.TablePayload `json:"payload"`
}

// readTable читает сообщения, пока не придёт загруженная таблица.
func readTable(t *testing.T, conn *gorillaws.Conn) websocket.TablePayload {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg tableMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		if msg.Type == websocket.TypeTable && msg.Payload.Status == "loaded" {
			return msg.Payload
		}
	}
}

func (s *ConsoleTestSuite) TestLiveListSearchAndReloadOnMutation() {
	wsURL := "ws" + strings.TrimPrefix(s.console.server.URL, "http") + "/ws/list/campus"
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "search", "search": "norte"}))
	table := readTable(s.T(), conn)
	s.Equal("norte", table.Search)
	s.Equal(1, table.Page)
	s.Contains(table.HTML, "Norte")
	s.NotContains(table.HTML, "Central")

	s.backendLog.reset()
	s.postForm("/campus/1/delete", nil)
	s.console.bus.Wait()

	table = readTable(s.T(), conn)
	s.Contains(table.HTML, "Norte")
	assert.Eventually(s.T(), func() bool {
		return s.backendLog.count(http.MethodGet, "/campus") >= 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func TestGoodsProxyWithoutBaseURL(t *testing.T) {
	upstreamLog := &recorder{}
	upstream := httptest.NewServer(upstreamHandler(upstreamLog))
	defer upstream.Close()

	c := newConsole(t, "http://127.0.0.1:1", "")

	rec := httptest.NewRecorder()
	c.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goods/100", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GOODS_API_BASE_URL")
	assert.Empty(t, upstreamLog.all())
}
