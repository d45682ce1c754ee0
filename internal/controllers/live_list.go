package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/listing"
	"facilities-console/internal/services"
	"facilities-console/internal/views"
	"facilities-console/pkg/utils"
	appwebsocket "facilities-console/pkg/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// PartialRenderer - то, что нужно для отрисовки таблицы вне HTTP-ответа.
type PartialRenderer interface {
	RenderPartial(name string, data interface{}) (string, error)
}

// LiveListController держит по сессии списка на каждое websocket-соединение.
// Сессия живёт, пока открыта страница: закрытие соединения отменяет её запросы.
type LiveListController struct {
	hub      *appwebsocket.Hub
	lists    map[string]LiveList
	renderer PartialRenderer
	pageSize int
	debounce time.Duration
	logger   *zap.Logger
}

func NewLiveListController(
	hub *appwebsocket.Hub,
	renderer PartialRenderer,
	pageSize int,
	debounce time.Duration,
	logger *zap.Logger,
	lists ...LiveList,
) *LiveListController {
	byEntity := make(map[string]LiveList, len(lists))
	for _, l := range lists {
		byEntity[l.EntityName()] = l
	}
	if pageSize <= 0 {
		pageSize = utils.DefaultLimit
	}
	return &LiveListController{
		hub:      hub,
		lists:    byEntity,
		renderer: renderer,
		pageSize: pageSize,
		debounce: debounce,
		logger:   logger.Named("live_list"),
	}
}

// clientNotifier отправляет ошибки загрузки тостом в ту же страницу.
type clientNotifier struct {
	client *appwebsocket.Client
}

func (n clientNotifier) Error(message string) {
	n.client.Push(appwebsocket.Envelope{
		Type:    appwebsocket.TypeToast,
		Payload: appwebsocket.ToastPayload{Kind: string(services.ToastError), Message: message},
	})
}

func (ctrl *LiveListController) ServeWs(c echo.Context) error {
	list, ok := ctrl.lists[c.Param("entity")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Lista desconocida")
	}
	params := utils.ParseListParams(c.QueryParams(), ctrl.pageSize)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctrl.logger.Error("WebSocket: не удалось улучшить соединение", zap.Error(err))
		return nil
	}

	client := appwebsocket.NewClient(ctrl.hub, conn, uuid.NewString(), list.EntityName(), ctrl.logger)

	// контекст запроса закончится вместе с обработчиком, сессии нужен свой
	ctx, cancel := context.WithCancel(context.Background())
	session := list.Open(ctx, params, ctrl.debounce, clientNotifier{client: client}, ctrl.logger, func(u TableUpdate) {
		ctrl.push(client, u)
	})

	client.OnCommand = func(msg appwebsocket.ClientMessage) {
		switch msg.Type {
		case appwebsocket.CommandSearch:
			session.SetSearchInput(msg.Search)
		case appwebsocket.CommandPage:
			session.SetPage(msg.Page)
		case appwebsocket.CommandReload:
			session.Reload()
		}
	}
	client.OnEvent = func(env appwebsocket.Envelope) {
		if env.Type == appwebsocket.TypeEntityMutated {
			session.Reload()
		}
	}

	ctrl.hub.Register(client)
	go client.WritePump()
	go func() {
		client.ReadPump()
		session.Close()
		cancel()
	}()

	ctrl.logger.Info("WebSocket: живой список открыт", zap.String("client", client.ID), zap.String("entity", client.Topic))
	return nil
}

func (ctrl *LiveListController) push(client *appwebsocket.Client, u TableUpdate) {
	payload := appwebsocket.TablePayload{
		Status: string(u.Status),
		Page:   u.Page,
		Pages:  u.Pages,
		Search: u.Search,
	}
	if u.Fragment != nil {
		html, err := ctrl.renderer.RenderPartial(views.PartialTable, *u.Fragment)
		if err != nil {
			ctrl.logger.Error("ошибка отрисовки таблицы", zap.String("client", client.ID), zap.Error(err))
			return
		}
		payload.HTML = html
	}
	client.Push(appwebsocket.Envelope{Type: appwebsocket.TypeTable, Payload: payload})
}

var _ listing.Notifier = clientNotifier{}
