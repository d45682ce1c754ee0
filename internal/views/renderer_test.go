package views

import (
	"bytes"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/internal/table"
	"facilities-console/pkg/validation"
)

func TestNewRenderer_AllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range []string{PageIndex, PageList, PageCampus, PageFaculty, PageBlock, PageConfirm, PageError} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("nope"))
}

func TestRenderPartial_Table(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderPartial(PartialTable, TableFragment{
		View: table.View{
			Headers: []table.HeaderView{{Key: "codigo", Label: "Código", Sortable: true, Indicator: "▲", Href: "/campus?sort=-codigo"}},
			Rows:    []table.RowView{{Cells: []string{"C-01"}, Actions: []table.ActionView{{Key: "delete", Label: "Eliminar", Href: "/campus/1/delete"}}}},
			Pager:   table.PagerView{Page: 1, Pages: 2, HasNext: true, NextPage: 2, NextHref: "/campus?page=2"},
			HasActions: true,
		},
		Stale: true,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "C-01")
	assert.Contains(t, html, `href="/campus/1/delete"`)
	assert.Contains(t, html, `data-page="2"`)
	assert.Contains(t, html, "Página 1 de 2")
	assert.Contains(t, html, "últimos datos")
}

func TestRenderPartial_EmptyTable(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderPartial(PartialTable, TableFragment{View: table.View{Empty: true, EmptyText: "No hay campus", Pager: table.PagerView{Page: 1, Pages: 1}}})
	require.NoError(t, err)
	assert.Contains(t, html, "No hay campus")
	assert.NotContains(t, html, `rel="next"`)
}

func TestRender_BlockFormWithErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageBlock, FormPage{
		Layout:     Layout{Title: "Nuevo bloque", Toasts: []Toast{{Kind: "error", Message: "Revise el formulario"}}},
		Heading:    "Nuevo bloque",
		Action:     "/bloques",
		CancelHref: "/bloques",
		Form:       dto.BlockForm{Lat: "-17.39", FacultyID: "2"},
		Errors:     validation.FieldErrors{"lng": "Latitud y longitud deben indicarse juntas"},
		Faculties:  []entities.Faculty{{ID: 1, Name: "Ciencias"}, {ID: 2, Name: "Tecnología"}},
		BlockTypes: []entities.BlockType{{ID: 1, Name: "Aulas"}},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Latitud y longitud deben indicarse juntas")
	assert.Contains(t, html, `value="-17.39"`)
	assert.Contains(t, html, `<option value="2" selected>Tecnología</option>`)
	assert.Contains(t, html, "Revise el formulario")
}

func TestRender_CatalogErrorHidesForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageFaculty, FormPage{
		Heading:      "Nueva facultad",
		Form:         dto.FacultyForm{},
		CatalogError: "No se pudieron cargar los campus",
		RetryHref:    "/facultades/new",
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Reintentar")
	assert.NotContains(t, buf.String(), "<form")
}

func TestRender_ListWithGoodsOverlay(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageList, ListPage{
		Layout:   Layout{Title: "Activos"},
		BasePath: "/activos",
		LiveURL:  "/ws/list/activos",
		Table:    TableFragment{View: table.View{Empty: true, EmptyText: "Sin activos", Pager: table.PagerView{Page: 1, Pages: 1}}},
		Overlay: &GoodsOverlay{
			NIA:       "100200",
			CloseHref: "/activos",
			Goods:     []entities.Good{{NIA: "100200", Description: "Proyector", InitialValue: null.Float64From(1500)}},
		},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Proyector")
	assert.Contains(t, html, "1500.00")
	assert.Contains(t, html, `data-live="/ws/list/activos"`)
}
