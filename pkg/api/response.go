package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

// SuccessOne - для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// Passthrough отдаёт чужой ответ без изменений. Пустой Content-Type заменяется на octet-stream.
func Passthrough(c echo.Context, status int, contentType string, body []byte) error {
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if status == 0 {
		status = http.StatusBadGateway
	}
	return c.Blob(status, contentType, body)
}
