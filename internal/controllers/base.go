package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/services"
	"facilities-console/internal/views"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/middleware"
	"facilities-console/pkg/utils"
)

var navigation = []views.NavItem{
	{Label: "Campus", Href: "/campus"},
	{Label: "Facultades", Href: "/facultades"},
	{Label: "Bloques", Href: "/bloques"},
	{Label: "Activos", Href: "/activos"},
}

// Base - общее для всех страничных контроллеров: уведомления, размер страницы, логгер.
type Base struct {
	notifications services.NotificationServiceInterface
	pageSize      int
	logger        *zap.Logger
}

func NewBase(notifications services.NotificationServiceInterface, pageSize int, logger *zap.Logger) *Base {
	if pageSize <= 0 {
		pageSize = utils.DefaultLimit
	}
	return &Base{notifications: notifications, pageSize: pageSize, logger: logger}
}

func (b *Base) notifier(c echo.Context) services.Notifier {
	return b.notifications.For(middleware.SessionID(c.Request().Context()))
}

// layout забирает накопленные уведомления, поэтому вызывается последним перед Render.
func (b *Base) layout(c echo.Context, title, active string) views.Layout {
	nav := make([]views.NavItem, len(navigation))
	copy(nav, navigation)
	for i := range nav {
		nav[i].Active = nav[i].Href == active
	}

	var toasts []views.Toast
	for _, t := range b.notifications.Drain(middleware.SessionID(c.Request().Context())) {
		toasts = append(toasts, views.Toast{Kind: string(t.Kind), Message: t.Message})
	}
	return views.Layout{Title: title, Nav: nav, Toasts: toasts}
}

func (b *Base) listParams(c echo.Context) utils.ListParams {
	return utils.ParseListParams(c.QueryParams(), b.pageSize)
}

// backTo - адрес списка с тем же состоянием (страница, поиск, сортировка), из которого пришли.
func (b *Base) backTo(c echo.Context, basePath string) string {
	return utils.PageURL(basePath, b.listParams(c))
}

// querySuffix - query string текущего списка, которую действия строк передают дальше.
func querySuffix(p utils.ListParams) string {
	return utils.PageURL("", p)
}

func parseID(c echo.Context) (uint64, error) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		return 0, apperrors.NewHttpError(http.StatusNotFound, "Registro no encontrado", apperrors.ErrNotFound, nil)
	}
	return id, nil
}

// finishMutation: тост по результату и редирект на список, который перечитает данные.
func (b *Base) finishMutation(c echo.Context, err error, success, back string) error {
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		b.notifier(c).Error(apperrors.UserMessage(err))
	} else {
		b.notifier(c).Success(success)
	}
	return c.Redirect(http.StatusSeeOther, back)
}

// failureStatus - статус страницы формы после отказа backend.
func failureStatus(err error) int {
	if apiErr, ok := apperrors.AsAPIError(err); ok && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func (b *Base) renderError(c echo.Context, status int, message, back string) error {
	page := views.ErrorPage{Status: status, Message: message, BackURL: back}
	page.Layout = b.layout(c, "Error", back)
	return c.Render(status, views.PageError, page)
}
