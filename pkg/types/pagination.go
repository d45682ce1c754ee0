package types

import "github.com/aarondl/null/v8"

// ListQuery - параметры запроса списка, которые UI передаёт в API.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// ListMeta - метаданные пагинации от backend. Набор полей у разных ресурсов не совпадает,
// поэтому всё, кроме page, необязательное.
type ListMeta struct {
	Page            int       `json:"page"`
	Take            int       `json:"take"`
	Limit           int       `json:"limit"`
	Pages           null.Int  `json:"pages"`
	Total           null.Int  `json:"total"`
	HasNextPage     null.Bool `json:"hasNextPage"`
	HasPreviousPage null.Bool `json:"hasPreviousPage"`
}

// ListResponse - конверт {items, meta}.
type ListResponse[T any] struct {
	Items []T      `json:"items"`
	Meta  ListMeta `json:"meta"`
}

// PageSize возвращает размер страницы, который реально применил backend.
func (m ListMeta) PageSize() int {
	if m.Take > 0 {
		return m.Take
	}
	return m.Limit
}
