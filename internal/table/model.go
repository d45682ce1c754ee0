package table

import (
	"fmt"
	"slices"
)

// ColumnSpec описывает колонку. Value используется для сортировки,
// Text - для отображения (по умолчанию fmt.Sprint(Value)).
type ColumnSpec[T any] struct {
	Key      string
	Header   string
	Sortable bool
	Hidden   bool
	Value    func(T) interface{}
	Text     func(T) string
}

func (c ColumnSpec[T]) text(row T) string {
	if c.Text != nil {
		return c.Text(row)
	}
	if c.Value == nil {
		return ""
	}
	v := unwrapNull(c.Value(row))
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// RowAction - кнопка в строке (ver, editar, eliminar). Href строит адрес действия.
type RowAction[T any] struct {
	Key     string
	Label   string
	Method  string
	Href    func(T) string
	Visible func(T) bool
}

// State - всё, что нужно для построения ссылки на другое состояние таблицы.
type State struct {
	Page   int
	Sort   SortSpec
	Hidden []string
}

// LinkFunc превращает состояние таблицы в URL страницы.
type LinkFunc func(State) string

// Model - данные одной отрисовки таблицы.
type Model[T any] struct {
	Columns []ColumnSpec[T]
	Rows    []T
	Sort    SortSpec
	Page    int
	Pages   int
	Empty   string
	Actions []RowAction[T]
}

// ToggleColumn скрывает или показывает колонку. Данные не меняются.
func (m *Model[T]) ToggleColumn(key string) {
	for i := range m.Columns {
		if m.Columns[i].Key == key {
			m.Columns[i].Hidden = !m.Columns[i].Hidden
			return
		}
	}
}

// HideColumns применяет список скрытых колонок из URL.
func (m *Model[T]) HideColumns(keys []string) {
	for i := range m.Columns {
		m.Columns[i].Hidden = slices.Contains(keys, m.Columns[i].Key)
	}
}

func (m *Model[T]) VisibleColumns() []ColumnSpec[T] {
	out := make([]ColumnSpec[T], 0, len(m.Columns))
	for _, c := range m.Columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model[T]) hiddenKeys() []string {
	var keys []string
	for _, c := range m.Columns {
		if c.Hidden {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

func (m *Model[T]) Pager() Pager {
	pages := m.Pages
	if pages < 1 {
		pages = 1
	}
	return Pager{Page: m.Page, Pages: pages}
}

type HeaderView struct {
	Key       string
	Label     string
	Sortable  bool
	Indicator string
	Href      string
}

type ActionView struct {
	Key    string
	Label  string
	Method string
	Href   string
}

type RowView struct {
	Cells   []string
	Actions []ActionView
}

type PagerView struct {
	Page     int
	Pages    int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
	PrevHref string
	NextHref string
}

type ToggleView struct {
	Key     string
	Label   string
	Visible bool
	Href    string
}

// View - готовая к шаблону таблица: строки уже отсортированы, ячейки - строки.
type View struct {
	Headers    []HeaderView
	Rows       []RowView
	Empty      bool
	EmptyText  string
	HasActions bool
	Pager      PagerView
	Toggles    []ToggleView
}

func (m *Model[T]) View(link LinkFunc) View {
	hidden := m.hiddenKeys()
	state := State{Page: m.Page, Sort: m.Sort, Hidden: hidden}
	visible := m.VisibleColumns()

	v := View{
		Empty:      len(m.Rows) == 0,
		EmptyText:  m.Empty,
		HasActions: len(m.Actions) > 0,
	}
	if v.EmptyText == "" {
		v.EmptyText = "Sin resultados"
	}

	for _, c := range visible {
		h := HeaderView{Key: c.Key, Label: c.Header, Sortable: c.Sortable}
		if c.Sortable {
			next := state
			next.Sort = m.Sort.Toggle(c.Key)
			h.Href = link(next)
			if m.Sort.Key == c.Key {
				switch m.Sort.Order {
				case SortAsc:
					h.Indicator = "▲"
				case SortDesc:
					h.Indicator = "▼"
				}
			}
		}
		v.Headers = append(v.Headers, h)
	}

	for _, row := range SortRows(m.Rows, m.Columns, m.Sort) {
		rv := RowView{Cells: make([]string, 0, len(visible))}
		for _, c := range visible {
			rv.Cells = append(rv.Cells, c.text(row))
		}
		for _, a := range m.Actions {
			if a.Visible != nil && !a.Visible(row) {
				continue
			}
			method := a.Method
			if method == "" {
				method = "GET"
			}
			rv.Actions = append(rv.Actions, ActionView{Key: a.Key, Label: a.Label, Method: method, Href: a.Href(row)})
		}
		v.Rows = append(v.Rows, rv)
	}

	pager := m.Pager()
	v.Pager = PagerView{Page: pager.Page, Pages: pager.Pages, HasPrev: pager.HasPrev(), HasNext: pager.HasNext()}
	if v.Pager.HasPrev {
		prev := state
		prev.Page = pager.Request(pager.Page - 1)
		v.Pager.PrevPage = prev.Page
		v.Pager.PrevHref = link(prev)
	}
	if v.Pager.HasNext {
		next := state
		// Request ограничивает сверху, а Pages уже учитывает hasNextPage
		next.Page = pager.Request(pager.Page + 1)
		v.Pager.NextPage = next.Page
		v.Pager.NextHref = link(next)
	}

	for _, c := range m.Columns {
		next := state
		next.Hidden = toggled(hidden, c.Key)
		v.Toggles = append(v.Toggles, ToggleView{Key: c.Key, Label: c.Header, Visible: !c.Hidden, Href: link(next)})
	}
	return v
}

func toggled(keys []string, key string) []string {
	if i := slices.Index(keys, key); i >= 0 {
		return slices.Delete(slices.Clone(keys), i, i+1)
	}
	return append(slices.Clone(keys), key)
}
