package table

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
)

type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SortSpec struct {
	Key   string
	Order SortOrder
}

func (s SortSpec) Active() bool {
	return s.Key != "" && s.Order != SortNone
}

// Toggle - цикл по одной колонке: нет -> asc -> desc -> нет. Новая колонка начинает с asc.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key != key || !s.Active() {
		return SortSpec{Key: key, Order: SortAsc}
	}
	if s.Order == SortAsc {
		return SortSpec{Key: key, Order: SortDesc}
	}
	return SortSpec{}
}

// ParseSortSpec собирает SortSpec из ключа колонки и направления ("asc" или "desc").
// Пустой ключ - без сортировки, неизвестное направление - по возрастанию.
func ParseSortSpec(key, order string) SortSpec {
	if key == "" {
		return SortSpec{}
	}
	if order == string(SortDesc) {
		return SortSpec{Key: key, Order: SortDesc}
	}
	return SortSpec{Key: key, Order: SortAsc}
}

// SortRows сортирует только переданную страницу и не меняет входной срез.
// Неизвестная или несортируемая колонка оставляет исходный порядок.
func SortRows[T any](rows []T, columns []ColumnSpec[T], spec SortSpec) []T {
	out := slices.Clone(rows)
	if !spec.Active() {
		return out
	}
	col, ok := findColumn(columns, spec.Key)
	if !ok || !col.Sortable || col.Value == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(col.Value(a), col.Value(b))
		if spec.Order == SortDesc {
			return -c
		}
		return c
	})
	return out
}

func findColumn[T any](columns []ColumnSpec[T], key string) (ColumnSpec[T], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnSpec[T]{}, false
}

// compareValues: пустые значения идут первыми, числа сравниваются как числа,
// время хронологически, bool как false < true, остальное без учёта регистра.
func compareValues(a, b interface{}) int {
	a, b = unwrapNull(a), unwrapNull(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func unwrapNull(v interface{}) interface{} {
	switch x := v.(type) {
	case null.Float64:
		if x.Valid {
			return x.Float64
		}
		return nil
	case null.Int:
		if x.Valid {
			return x.Int
		}
		return nil
	case null.String:
		if x.Valid {
			return x.String
		}
		return nil
	case null.Bool:
		if x.Valid {
			return x.Bool
		}
		return nil
	case null.Time:
		if x.Valid {
			return x.Time
		}
		return nil
	}
	return v
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
