package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"facilities-console/pkg/customvalidator"
)

// FieldErrors - сообщения по полям формы (ключ - json-имя поля).
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

const CoordsPairMessage = "La latitud y la longitud deben indicarse juntas"

// Translate переводит ошибки validator в сообщения для пользователя.
// Сообщение о паре координат важнее остальных ошибок validator того же поля,
// но ошибки приведения типов, уже лежащие в into, не перетирает.
func Translate(err error, into FieldErrors) FieldErrors {
	if into == nil {
		into = FieldErrors{}
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return into
	}
	coerced := make(map[string]bool, len(into))
	for field := range into {
		coerced[field] = true
	}
	for _, fe := range validationErrors {
		msg := messageFor(fe)
		if fe.Tag() == customvalidator.TagCoordsPair {
			if !coerced[fe.Field()] {
				into[fe.Field()] = msg
			}
			continue
		}
		into.Add(fe.Field(), msg)
	}
	return into
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", TagNotBlank:
		return "Este campo es obligatorio"
	case "max":
		return fmt.Sprintf("Máximo %s caracteres", fe.Param())
	case "min":
		return fmt.Sprintf("Mínimo %s caracteres", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s", fe.Param())
	case "lat_range":
		return "La latitud debe estar entre -90 y 90"
	case "lng_range":
		return "La longitud debe estar entre -180 y 180"
	case customvalidator.TagCoordsPair:
		return CoordsPairMessage
	}
	return fmt.Sprintf("Valor inválido (%s)", fe.Tag())
}
