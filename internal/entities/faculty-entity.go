package entities

import "github.com/aarondl/null/v8"

type Faculty struct {
	ID        uint64       `json:"id"`
	Code      string       `json:"codigo"`
	Name      string       `json:"nombre"`
	ShortName string       `json:"nombre_corto"`
	CampusID  uint64       `json:"campus_id"`
	Lat       null.Float64 `json:"lat"`
	Lng       null.Float64 `json:"lng"`
	Active    bool         `json:"activo"`
}
