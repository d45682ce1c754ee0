package entities

import "github.com/aarondl/null/v8"

// Good - запись внешнего реестра имущества (bienes). Только чтение.
type Good struct {
	NIA               string       `json:"nia"`
	Description       string       `json:"descripcion"`
	Status            null.String  `json:"estado"`
	Brand             null.String  `json:"marca"`
	Model             null.String  `json:"modelo"`
	Serial            null.String  `json:"serie"`
	InitialValue      null.Float64 `json:"valorInicial"`
	PurchaseDate      null.String  `json:"fechaCompra"`
	IncorporationDate null.String  `json:"fechaIncorporacion"`
}
