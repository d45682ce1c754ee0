// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

const TagCoordsPair = "coords_pair"

// CoordinatePair реализуют DTO с необязательной парой координат.
type CoordinatePair interface {
	Coordinates() (lat, lng null.Float64)
}

// RegisterCustomValidations регистрирует алиасы диапазонов координат и правило
// "широта и долгота вместе или никак" для перечисленных типов.
func RegisterCustomValidations(v *validator.Validate, coordinateTypes ...interface{}) error {
	v.RegisterAlias("lat_range", "gte=-90,lte=90")
	v.RegisterAlias("lng_range", "gte=-180,lte=180")

	if len(coordinateTypes) > 0 {
		v.RegisterStructValidation(validateCoordinatePair, coordinateTypes...)
	}
	return nil
}

func validateCoordinatePair(sl validator.StructLevel) {
	pair, ok := sl.Current().Interface().(CoordinatePair)
	if !ok {
		return
	}
	lat, lng := pair.Coordinates()
	if lat.Valid == lng.Valid {
		return
	}
	if lat.Valid {
		sl.ReportError(lng, "lng", "Lng", TagCoordsPair, "")
		return
	}
	sl.ReportError(lat, "lat", "Lat", TagCoordsPair, "")
}
