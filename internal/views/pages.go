package views

import (
	"facilities-console/internal/entities"
	"facilities-console/internal/table"
	"facilities-console/pkg/validation"
)

// Имена страниц соответствуют файлам templates/page_<name>.html.
const (
	PageIndex    = "index"
	PageList     = "list"
	PageCampus   = "campus_form"
	PageFaculty  = "faculty_form"
	PageBlock    = "block_form"
	PageConfirm  = "confirm"
	PageError    = "error"
	PartialTable = "table"
)

type Toast struct {
	Kind    string
	Message string
}

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// Layout - общее для всех страниц.
type Layout struct {
	Title  string
	Nav    []NavItem
	Toasts []Toast
}

type ListPage struct {
	Layout
	Entity     string
	BasePath   string
	NewHref    string
	ExportHref string
	LiveURL    string
	Search     string
	Status     string
	Table      TableFragment
	Overlay    *GoodsOverlay
	Confirm    *ConfirmDialog
}

// TableFragment - то, что перерисовывается и при обычной загрузке, и по websocket.
type TableFragment struct {
	View   table.View
	Status string
	Total  int
	// Stale - ошибка загрузки, показаны строки прошлой загрузки.
	Stale bool
}

type GoodsOverlay struct {
	NIA       string
	Goods     []entities.Good
	Error     string
	CloseHref string
}

type ConfirmDialog struct {
	Message    string
	Action     string
	CancelHref string
}

type ConfirmPage struct {
	Layout
	Dialog ConfirmDialog
}

type FormPage struct {
	Layout
	Heading    string
	Action     string
	CancelHref string
	Editing    bool
	Form       interface{}
	Errors     validation.FieldErrors
	// Ошибка загрузки справочников: форма не показывается, только повтор.
	CatalogError string
	RetryHref    string
	Campuses     []entities.Campus
	Faculties    []entities.Faculty
	BlockTypes   []entities.BlockType
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
	BackURL string
}

type IndexPage struct {
	Layout
	Sections []NavItem
}
