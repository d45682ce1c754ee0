package entities

import "github.com/aarondl/null/v8"

type Campus struct {
	ID        uint64    `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Active    bool      `json:"activo"`
	CreatedAt null.Time `json:"creado_en"`
}
