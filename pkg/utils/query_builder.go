package utils

import (
	"net/url"
	"strconv"
	"strings"

	"facilities-console/pkg/types"
)

// BuildListQuery превращает состояние списка в query string для backend API.
// Пустой поиск не передаётся вовсе.
func BuildListQuery(q types.ListQuery) string {
	values := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}
	return values.Encode()
}

// WithQuery добавляет query string к пути ресурса.
func WithQuery(path string, q types.ListQuery) string {
	return path + "?" + BuildListQuery(q)
}

// PageURL строит ссылку на страницу консоли, сохраняя поиск, сортировку и скрытые колонки.
func PageURL(basePath string, p ListParams) string {
	values := url.Values{}
	if p.Page > 1 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.SortBy != "" {
		sort := p.SortBy
		if p.SortOrder == "desc" {
			sort = "-" + sort
		}
		values.Set("sort", sort)
	}
	if len(p.Hidden) > 0 {
		values.Set("hide", strings.Join(p.Hidden, ","))
	}
	if len(values) == 0 {
		return basePath
	}
	return basePath + "?" + values.Encode()
}
