package dto

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"facilities-console/internal/entities"
	"facilities-console/pkg/validation"
)

// CampusPayload - тело POST/PATCH /campus.
type CampusPayload struct {
	Code    string       `json:"codigo" validate:"required,max=20"`
	Name    string       `json:"nombre" validate:"required,max=120"`
	Address string       `json:"direccion" validate:"required,max=200"`
	Lat     null.Float64 `json:"lat" validate:"required,lat_range"`
	Lng     null.Float64 `json:"lng" validate:"required,lng_range"`
	Active  bool         `json:"activo"`
}

func (p CampusPayload) Coordinates() (null.Float64, null.Float64) { return p.Lat, p.Lng }

// CampusForm - сырые значения HTML-формы.
type CampusForm struct {
	Code    string `form:"codigo"`
	Name    string `form:"nombre"`
	Address string `form:"direccion"`
	Lat     string `form:"lat"`
	Lng     string `form:"lng"`
	Active  string `form:"activo"`
}

// Payload приводит типы. Ошибки приведения возвращаются сразу, до validator.
func (f CampusForm) Payload() (CampusPayload, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	p := CampusPayload{
		Code:    strings.TrimSpace(f.Code),
		Name:    strings.TrimSpace(f.Name),
		Address: strings.TrimSpace(f.Address),
		Lat:     parseFloatField(f.Lat, "lat", fe),
		Lng:     parseFloatField(f.Lng, "lng", fe),
		Active:  parseCheckbox(f.Active),
	}
	return p, fe
}

func CampusFormFrom(c entities.Campus) CampusForm {
	return CampusForm{
		Code:    c.Code,
		Name:    c.Name,
		Address: c.Address,
		Lat:     strconv.FormatFloat(c.Lat, 'f', -1, 64),
		Lng:     strconv.FormatFloat(c.Lng, 'f', -1, 64),
		Active:  formatCheckbox(c.Active),
	}
}
