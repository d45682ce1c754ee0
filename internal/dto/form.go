package dto

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"facilities-console/pkg/validation"
)

const notANumber = "Debe ser un número"

// CoordinateTypes - DTO, к которым валидатор применяет правило пары координат.
func CoordinateTypes() []interface{} {
	return []interface{}{CampusPayload{}, BlockPayload{}, FacultyPayload{}}
}

// parseFloatField приводит строку формы к числу. Пустое значение - это "не задано",
// а не ошибка: обязательность проверяет validator.
func parseFloatField(raw, field string, fe validation.FieldErrors) null.Float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return null.Float64{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fe.Add(field, notANumber)
		return null.Float64{}
	}
	return null.Float64From(v)
}

func parseIntField(raw, field string, fe validation.FieldErrors) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fe.Add(field, "Debe ser un número entero")
		return 0
	}
	return v
}

func parseIDField(raw, field string, fe validation.FieldErrors) uint64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fe.Add(field, "Seleccione una opción válida")
		return 0
	}
	return v
}

func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "si", "sí":
		return true
	}
	return false
}

func formatID(id uint64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(id, 10)
}

func formatCheckbox(b bool) string {
	if b {
		return "on"
	}
	return ""
}
