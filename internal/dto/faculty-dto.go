package dto

import (
	"strings"

	"github.com/aarondl/null/v8"

	"facilities-console/internal/entities"
	"facilities-console/pkg/utils"
	"facilities-console/pkg/validation"
)

type FacultyPayload struct {
	Code      string       `json:"codigo" validate:"required,max=20"`
	Name      string       `json:"nombre" validate:"required,max=120"`
	ShortName string       `json:"nombre_corto" validate:"omitempty,max=40"`
	CampusID  uint64       `json:"campus_id" validate:"required"`
	Lat       null.Float64 `json:"lat" validate:"omitempty,lat_range"`
	Lng       null.Float64 `json:"lng" validate:"omitempty,lng_range"`
	Active    bool         `json:"activo"`
}

func (p FacultyPayload) Coordinates() (null.Float64, null.Float64) { return p.Lat, p.Lng }

type FacultyForm struct {
	Code      string `form:"codigo"`
	Name      string `form:"nombre"`
	ShortName string `form:"nombre_corto"`
	CampusID  string `form:"campus_id"`
	Lat       string `form:"lat"`
	Lng       string `form:"lng"`
	Active    string `form:"activo"`
}

func (f FacultyForm) Payload() (FacultyPayload, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	p := FacultyPayload{
		Code:      strings.TrimSpace(f.Code),
		Name:      strings.TrimSpace(f.Name),
		ShortName: strings.TrimSpace(f.ShortName),
		CampusID:  parseIDField(f.CampusID, "campus_id", fe),
		Lat:       parseFloatField(f.Lat, "lat", fe),
		Lng:       parseFloatField(f.Lng, "lng", fe),
		Active:    parseCheckbox(f.Active),
	}
	return p, fe
}

func FacultyFormFrom(f entities.Faculty) FacultyForm {
	return FacultyForm{
		Code:      f.Code,
		Name:      f.Name,
		ShortName: f.ShortName,
		CampusID:  formatID(f.CampusID),
		Lat:       utils.FormatFloat(f.Lat),
		Lng:       utils.FormatFloat(f.Lng),
		Active:    formatCheckbox(f.Active),
	}
}
