package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/middleware"
	"facilities-console/pkg/utils"
)

// HTTPErrorHandler: /api отвечает JSON, страницы консоли - HTML-страницей ошибки.
func HTTPErrorHandler(base *Base) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed || apperrors.IsCanceled(err) {
			return
		}
		logger := middleware.FromContext(c, base.logger)

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				err = apperrors.NewHttpError(he.Code, http.StatusText(he.Code), nil, nil)
			}
			if rerr := utils.ErrorResponse(c, err, logger); rerr != nil {
				logger.Error("ошибка отправки ответа", zap.Error(rerr))
			}
			return
		}

		status, message := pageError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("ошибка страницы", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}
		back := "/"
		if section := strings.SplitN(strings.TrimPrefix(c.Request().URL.Path, "/"), "/", 2)[0]; section != "" {
			back = "/" + section
		}
		if rerr := base.renderError(c, status, message, back); rerr != nil {
			logger.Error("ошибка отрисовки страницы ошибки", zap.Error(rerr))
			_ = c.String(status, message)
		}
	}
}

func pageError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		if apiErr.Status == http.StatusNotFound {
			return http.StatusNotFound, "Registro no encontrado"
		}
		return http.StatusBadGateway, apiErr.Message
	}
	if errors.Is(err, apperrors.ErrTransport) {
		return http.StatusBadGateway, apperrors.UserMessage(err)
	}
	return http.StatusInternalServerError, "Ocurrió un error inesperado"
}
