package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = fmt.Errorf("registro no encontrado")
	ErrBadRequest     = fmt.Errorf("solicitud inválida")
	ErrTransport      = fmt.Errorf("error de red al contactar el servicio")
	ErrConfigMissing  = fmt.Errorf("configuración incompleta")
	ErrSchemaMismatch = fmt.Errorf("respuesta con formato inesperado")
)

// HttpError - ошибка, которую контроллер отдаёт клиенту как есть.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

// APIError - нормализованный не-2xx ответ backend API.
// Details заполняется, когда поле message в теле ответа - массив (ошибки валидации).
type APIError struct {
	Status  int
	Message string
	Details []string
	Raw     interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// AsAPIError достаёт APIError из цепочки.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCanceled отличает отмену запроса от настоящей ошибки.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// UserMessage - текст для тоста.
func UserMessage(err error) string {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Message
	}
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	if errors.Is(err, ErrTransport) {
		return "No se pudo conectar con el servidor. Intente nuevamente."
	}
	return "Ocurrió un error inesperado"
}
