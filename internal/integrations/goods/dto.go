package goods

import "github.com/aarondl/null/v8"

// GoodDTO - одна запись ответа реестра. Схема: массив объектов,
// nia и descripcion обязательны, остальное может отсутствовать.
type GoodDTO struct {
	NIA               string       `json:"nia" validate:"required,not_blank"`
	Description       string       `json:"descripcion" validate:"required,not_blank"`
	Status            null.String  `json:"estado"`
	Brand             null.String  `json:"marca"`
	Model             null.String  `json:"modelo"`
	Serial            null.String  `json:"serie"`
	InitialValue      null.Float64 `json:"valorInicial"`
	PurchaseDate      null.String  `json:"fechaCompra"`
	IncorporationDate null.String  `json:"fechaIncorporacion"`
}
