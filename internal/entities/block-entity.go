package entities

import "github.com/aarondl/null/v8"

type Block struct {
	ID          uint64       `json:"id"`
	Code        string       `json:"codigo"`
	Name        string       `json:"nombre"`
	ShortName   string       `json:"nombre_corto"`
	Floors      int          `json:"pisos"`
	Lat         null.Float64 `json:"lat"`
	Lng         null.Float64 `json:"lng"`
	FacultyID   uint64       `json:"facultad_id"`
	BlockTypeID uint64       `json:"tipo_bloque_id"`
	Active      bool         `json:"activo"`
}

// BlockType - справочник типов блоков (/tipo_bloques).
type BlockType struct {
	ID   uint64 `json:"id"`
	Name string `json:"nombre"`
}
