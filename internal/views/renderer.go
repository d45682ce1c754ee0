package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Renderer реализует echo.Renderer. Каждая страница - отдельный набор шаблонов
// layout + partials + страница, чтобы блоки "content" не конфликтовали.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

var funcs = template.FuncMap{
	"selected": func(current string, id uint64) bool {
		return strings.TrimSpace(current) == strconv.FormatUint(id, 10)
	},
	"checked": func(v string) bool { return v != "" },
	"optional": func(v null.String) string {
		if !v.Valid || v.String == "" {
			return "—"
		}
		return v.String
	},
	"money": func(v null.Float64) string {
		if !v.Valid {
			return "—"
		}
		return strconv.FormatFloat(v.Float64, 'f', 2, 64)
	},
}

func NewRenderer() (*Renderer, error) {
	partials, err := template.New("partials").Funcs(funcs).ParseFS(templateFiles, partialsFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора partials: %w", err)
	}

	pageFiles, err := fs.Glob(templateFiles, "templates/page_*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template), partials: partials}
	for _, file := range pageFiles {
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/page_"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFiles, layoutFile, partialsFile, file)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора шаблона %s: %w", file, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("шаблон %q не найден", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// RenderPartial отрисовывает фрагмент (например, таблицу для websocket) в строку.
func (r *Renderer) RenderPartial(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.partials.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
