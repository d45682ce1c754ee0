package goods

import (
	"bytes"
	"encoding/json"
	"fmt"

	"facilities-console/internal/entities"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/validation"
)

// Decode проверяет тело ответа по схеме реестра и переводит записи во внутренний тип.
// Любое расхождение со схемой - ErrSchemaMismatch. Валидатор нужен собранный
// через validation.New: схема использует наши теги.
func Decode(raw []byte, v *validation.CustomValidator) ([]entities.Good, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: ожидался массив", apperrors.ErrSchemaMismatch)
	}

	var dtos []GoodDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSchemaMismatch, err)
	}

	goods := make([]entities.Good, 0, len(dtos))
	for i, d := range dtos {
		if err := v.Validate(d); err != nil {
			return nil, fmt.Errorf("%w: запись %d: %v", apperrors.ErrSchemaMismatch, i, err)
		}
		goods = append(goods, mapGoodToInternal(d))
	}
	return goods, nil
}

func mapGoodToInternal(d GoodDTO) entities.Good {
	return entities.Good{
		NIA:               d.NIA,
		Description:       d.Description,
		Status:            d.Status,
		Brand:             d.Brand,
		Model:             d.Model,
		Serial:            d.Serial,
		InitialValue:      d.InitialValue,
		PurchaseDate:      d.PurchaseDate,
		IncorporationDate: d.IncorporationDate,
	}
}
