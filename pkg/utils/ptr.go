package utils

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
)

// FormatFloat печатает необязательную координату для ячейки таблицы или поля формы.
func FormatFloat(v null.Float64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// ParseID разбирает идентификатор из пути. Ноль и мусор считаются ошибкой.
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
