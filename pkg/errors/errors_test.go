package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_IsNotFound(t *testing.T) {
	err := fmt.Errorf("find campus: %w", &APIError{Status: http.StatusNotFound, Message: "Not Found"})

	assert.True(t, errors.Is(err, ErrNotFound))
	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, IsCanceled(fmt.Errorf("get: %w", context.Canceled)))
	assert.False(t, IsCanceled(ErrTransport))
	assert.False(t, IsCanceled(nil))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Campus en uso", UserMessage(&APIError{Status: 409, Message: "Campus en uso"}))
	assert.Equal(t, "NIA requerido", UserMessage(NewBadRequestError("NIA requerido")))
	assert.Contains(t, UserMessage(fmt.Errorf("dial: %w", ErrTransport)), "No se pudo conectar")
	assert.Equal(t, "Ocurrió un error inesperado", UserMessage(errors.New("boom")))
}
