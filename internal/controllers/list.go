package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/listing"
	"facilities-console/internal/table"
	"facilities-console/internal/views"
	"facilities-console/pkg/utils"
)

// listDefinition - всё, что отличает список одной сущности: колонки, действия строк, загрузка.
type listDefinition[T any] struct {
	Entity     string
	Title      string
	BasePath   string
	NewHref    string
	ExportHref string
	Empty      string
	Columns    func() []table.ColumnSpec[T]
	// Actions получает query string текущего списка, чтобы после действия вернуться туда же.
	Actions func(suffix string) []table.RowAction[T]
	Fetch   listing.Fetcher[T]
}

// load - один экземпляр списка на запрос страницы: первая загрузка и размонтирование.
func (d *listDefinition[T]) load(ctx context.Context, params utils.ListParams, notifier listing.Notifier, logger *zap.Logger) listing.Snapshot[T] {
	session := listing.NewSession(d.Fetch, listing.SessionOptions{
		Page:     params.Page,
		Search:   params.Search,
		Limit:    params.Limit,
		Notifier: notifier,
		Logger:   logger,
		Context:  ctx,
	})
	defer session.Close()
	session.Start()
	session.Wait()
	return session.Snapshot()
}

// fragment строит таблицу из снимка сессии. Ссылки сохраняют поиск, сортировку и скрытые колонки.
func (d *listDefinition[T]) fragment(snap listing.Snapshot[T], params utils.ListParams) views.TableFragment {
	params.Page = snap.Page
	params.Search = snap.Search

	var actions []table.RowAction[T]
	if d.Actions != nil {
		actions = d.Actions(querySuffix(params))
	}
	model := table.Model[T]{
		Columns: d.Columns(),
		Rows:    snap.Rows,
		Sort:    table.ParseSortSpec(params.SortBy, params.SortOrder),
		Page:    snap.Page,
		Pages:   snap.Pages,
		Empty:   d.Empty,
		Actions: actions,
	}
	model.HideColumns(params.Hidden)

	link := func(s table.State) string {
		next := params
		next.Page = s.Page
		next.SortBy, next.SortOrder = "", ""
		if s.Sort.Active() {
			next.SortBy, next.SortOrder = s.Sort.Key, string(s.Sort.Order)
		}
		next.Hidden = s.Hidden
		return utils.PageURL(d.BasePath, next)
	}

	return views.TableFragment{
		View:   model.View(link),
		Status: string(snap.Status),
		Total:  snap.Total,
		Stale:  snap.Status == listing.StatusErrored,
	}
}

// renderList отрисовывает страницу списка; decorate добавляет диалог поверх таблицы.
func renderList[T any](c echo.Context, b *Base, d *listDefinition[T], decorate func(*views.ListPage)) error {
	params := b.listParams(c)
	snap := d.load(c.Request().Context(), params, b.notifier(c), b.logger)

	page := views.ListPage{
		Entity:     d.Entity,
		BasePath:   d.BasePath,
		NewHref:    d.NewHref,
		ExportHref: d.ExportHref,
		LiveURL:    "/ws/list/" + d.Entity,
		Search:     snap.Search,
		Status:     string(snap.Status),
		Table:      d.fragment(snap, params),
	}
	if d.ExportHref != "" && snap.Search != "" {
		page.ExportHref = utils.PageURL(d.ExportHref, utils.ListParams{Search: snap.Search})
	}
	if decorate != nil {
		decorate(&page)
	}
	page.Layout = b.layout(c, d.Title, d.BasePath)
	return c.Render(http.StatusOK, views.PageList, page)
}

// TableUpdate - новое состояние живого списка для отправки странице.
type TableUpdate struct {
	Status   listing.Status
	Page     int
	Pages    int
	Search   string
	Fragment *views.TableFragment
}

// LiveSession - то, что websocket-контроллер делает с сессией списка.
type LiveSession interface {
	SetSearchInput(text string)
	SetPage(page int)
	Reload()
	Close()
}

// LiveList открывает долгоживущую сессию списка для websocket-соединения.
type LiveList interface {
	EntityName() string
	Open(ctx context.Context, params utils.ListParams, debounce time.Duration, notifier listing.Notifier, logger *zap.Logger, onUpdate func(TableUpdate)) LiveSession
}

func (d *listDefinition[T]) EntityName() string { return d.Entity }

func (d *listDefinition[T]) Open(
	ctx context.Context,
	params utils.ListParams,
	debounce time.Duration,
	notifier listing.Notifier,
	logger *zap.Logger,
	onUpdate func(TableUpdate),
) LiveSession {
	session := listing.NewSession(d.Fetch, listing.SessionOptions{
		Page:     params.Page,
		Search:   params.Search,
		Limit:    params.Limit,
		Debounce: debounce,
		Notifier: notifier,
		Logger:   logger,
		Context:  ctx,
	})
	session.OnChange(func(snap listing.Snapshot[T]) {
		update := TableUpdate{Status: snap.Status, Page: snap.Page, Pages: snap.Pages, Search: snap.Search}
		// во время загрузки на странице остаются прежние строки
		if snap.Status != listing.StatusLoading {
			frag := d.fragment(snap, params)
			update.Fragment = &frag
		}
		onUpdate(update)
	})
	return session
}
