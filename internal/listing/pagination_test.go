package listing

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"facilities-console/pkg/types"
)

func TestResolvePageCount(t *testing.T) {
	testCases := []struct {
		name string
		meta types.ListMeta
		page int
		want int
	}{
		{"один элемент", types.ListMeta{Total: null.IntFrom(1), Take: 8}, 1, 1},
		{"семнадцать элементов", types.ListMeta{Total: null.IntFrom(17), Take: 8}, 1, 3},
		{"limit вместо take", types.ListMeta{Total: null.IntFrom(17), Limit: 8}, 2, 3},
		{"pages важнее total", types.ListMeta{Pages: null.IntFrom(5), Total: null.IntFrom(1), Take: 8}, 1, 5},
		{"pages == 0 игнорируется", types.ListMeta{Pages: null.IntFrom(0), Total: null.IntFrom(9), Take: 8}, 1, 2},
		{"пустой список", types.ListMeta{Total: null.IntFrom(0), Take: 8}, 1, 1},
		{"нет метаданных", types.ListMeta{}, 1, 1},
		{"total без размера страницы", types.ListMeta{Total: null.IntFrom(40)}, 1, 1},
		{"hasNextPage на последней странице", types.ListMeta{HasNextPage: null.BoolFrom(true)}, 1, 2},
		{"hasNextPage за пределами расчёта", types.ListMeta{Total: null.IntFrom(17), Take: 8, HasNextPage: null.BoolFrom(true)}, 3, 4},
		{"hasNextPage до последней страницы", types.ListMeta{Total: null.IntFrom(17), Take: 8, HasNextPage: null.BoolFrom(true)}, 1, 3},
		{"hasNextPage false", types.ListMeta{Total: null.IntFrom(8), Take: 8, HasNextPage: null.BoolFrom(false)}, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePageCount(tc.meta, tc.page))
		})
	}
}
