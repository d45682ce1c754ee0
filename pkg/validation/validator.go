package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"facilities-console/pkg/customvalidator"
)

// CustomValidator - обертка для использования в Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate реализует интерфейс echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New создает и настраивает валидатор. coordinateTypes - DTO, к которым
// применяется правило пары координат.
func New(coordinateTypes ...interface{}) *CustomValidator {
	v := validator.New()

	// Ошибки адресуем по json-именам, так же называются поля форм.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("ошибка регистрации правил: " + err.Error())
	}

	if err := customvalidator.RegisterCustomValidations(v, coordinateTypes...); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
