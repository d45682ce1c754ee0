package listing

import "facilities-console/pkg/types"

// ResolvePageCount вычисляет число страниц по метаданным backend.
//
// Порядок: meta.pages, затем ceil(total/take), затем 1. Результат не меньше 1.
// Если backend говорит hasNextPage, а текущая страница уже последняя по расчёту,
// отдаём page+1, чтобы кнопка "Siguiente" оставалась активной. Это обход
// несогласованных метаданных у части ресурсов, а не общее правило пагинации.
func ResolvePageCount(meta types.ListMeta, page int) int {
	pages := 1
	switch {
	case meta.Pages.Valid && meta.Pages.Int > 0:
		pages = meta.Pages.Int
	case meta.Total.Valid && meta.PageSize() > 0:
		pages = (meta.Total.Int + meta.PageSize() - 1) / meta.PageSize()
	}
	if pages < 1 {
		pages = 1
	}

	if meta.HasNextPage.Valid && meta.HasNextPage.Bool && page >= pages {
		return page + 1
	}
	return pages
}
