package utils

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 8
	MaxLimit     = 100
)

// ListParams - состояние страницы списка, пришедшее из адресной строки.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Hidden    []string
}

// ParseListParams разбирает page/limit/search/sort/hide. Некорректные значения молча
// заменяются значениями по умолчанию.
func ParseListParams(values url.Values, defaultLimit int) ListParams {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	params := ListParams{Page: 1, Limit: defaultLimit}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				params.Limit = MaxLimit
			} else {
				params.Limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}

	params.Search = strings.TrimSpace(values.Get("search"))

	if sort := values.Get("sort"); sort != "" {
		if strings.HasPrefix(sort, "-") {
			params.SortOrder = "desc"
			params.SortBy = sort[1:]
		} else {
			params.SortOrder = "asc"
			params.SortBy = sort
		}
	}

	if hide := values.Get("hide"); hide != "" {
		for _, key := range strings.Split(hide, ",") {
			if key = strings.TrimSpace(key); key != "" {
				params.Hidden = append(params.Hidden, key)
			}
		}
	}

	return params
}
