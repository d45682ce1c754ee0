package dto

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"facilities-console/internal/entities"
	"facilities-console/pkg/utils"
	"facilities-console/pkg/validation"
)

// BlockPayload - тело POST/PATCH /bloques. Координаты необязательные, но только парой.
type BlockPayload struct {
	Code        string       `json:"codigo" validate:"required,max=20"`
	Name        string       `json:"nombre" validate:"required,max=120"`
	ShortName   string       `json:"nombre_corto" validate:"omitempty,max=40"`
	Floors      int          `json:"pisos" validate:"gte=1,lte=60"`
	Lat         null.Float64 `json:"lat" validate:"omitempty,lat_range"`
	Lng         null.Float64 `json:"lng" validate:"omitempty,lng_range"`
	FacultyID   uint64       `json:"facultad_id" validate:"required"`
	BlockTypeID uint64       `json:"tipo_bloque_id" validate:"required"`
	Active      bool         `json:"activo"`
}

func (p BlockPayload) Coordinates() (null.Float64, null.Float64) { return p.Lat, p.Lng }

type BlockForm struct {
	Code        string `form:"codigo"`
	Name        string `form:"nombre"`
	ShortName   string `form:"nombre_corto"`
	Floors      string `form:"pisos"`
	Lat         string `form:"lat"`
	Lng         string `form:"lng"`
	FacultyID   string `form:"facultad_id"`
	BlockTypeID string `form:"tipo_bloque_id"`
	Active      string `form:"activo"`
}

func (f BlockForm) Payload() (BlockPayload, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	p := BlockPayload{
		Code:        strings.TrimSpace(f.Code),
		Name:        strings.TrimSpace(f.Name),
		ShortName:   strings.TrimSpace(f.ShortName),
		Floors:      parseIntField(f.Floors, "pisos", fe),
		Lat:         parseFloatField(f.Lat, "lat", fe),
		Lng:         parseFloatField(f.Lng, "lng", fe),
		FacultyID:   parseIDField(f.FacultyID, "facultad_id", fe),
		BlockTypeID: parseIDField(f.BlockTypeID, "tipo_bloque_id", fe),
		Active:      parseCheckbox(f.Active),
	}
	return p, fe
}

func BlockFormFrom(b entities.Block) BlockForm {
	return BlockForm{
		Code:        b.Code,
		Name:        b.Name,
		ShortName:   b.ShortName,
		Floors:      strconv.Itoa(b.Floors),
		Lat:         utils.FormatFloat(b.Lat),
		Lng:         utils.FormatFloat(b.Lng),
		FacultyID:   formatID(b.FacultyID),
		BlockTypeID: formatID(b.BlockTypeID),
		Active:      formatCheckbox(b.Active),
	}
}
