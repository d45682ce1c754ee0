package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/entities"
	"facilities-console/internal/events"
	"facilities-console/internal/services"
	"facilities-console/internal/table"
	"facilities-console/internal/views"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/utils"
	"facilities-console/pkg/validation"
)

type BlockController struct {
	*Base
	blockService   services.BlockServiceInterface
	catalogService services.CatalogServiceInterface
	list           *listDefinition[entities.Block]
}

func NewBlockController(
	blockService services.BlockServiceInterface,
	catalogService services.CatalogServiceInterface,
	base *Base,
) *BlockController {
	ctrl := &BlockController{Base: base, blockService: blockService, catalogService: catalogService}
	ctrl.list = &listDefinition[entities.Block]{
		Entity:   events.EntityBlock,
		Title:    "Bloques",
		BasePath: "/bloques",
		NewHref:  "/bloques/new",
		Empty:    "No hay bloques registrados",
		Columns:  blockColumns,
		Actions: func(suffix string) []table.RowAction[entities.Block] {
			return []table.RowAction[entities.Block]{
				{Key: "edit", Label: "Editar", Href: func(b entities.Block) string { return fmt.Sprintf("/bloques/%d/edit%s", b.ID, suffix) }},
				{Key: "delete", Label: "Eliminar", Href: func(b entities.Block) string { return fmt.Sprintf("/bloques/%d/delete%s", b.ID, suffix) }},
			}
		},
		Fetch: blockService.GetBlocks,
	}
	return ctrl
}

func blockColumns() []table.ColumnSpec[entities.Block] {
	return []table.ColumnSpec[entities.Block]{
		{Key: "codigo", Header: "Código", Sortable: true, Value: func(b entities.Block) interface{} { return b.Code }},
		{Key: "nombre", Header: "Nombre", Sortable: true, Value: func(b entities.Block) interface{} { return b.Name }},
		{Key: "nombre_corto", Header: "Sigla", Sortable: true, Value: func(b entities.Block) interface{} { return b.ShortName }},
		{Key: "pisos", Header: "Pisos", Sortable: true, Value: func(b entities.Block) interface{} { return b.Floors }},
		{Key: "facultad_id", Header: "Facultad", Sortable: true, Value: func(b entities.Block) interface{} { return b.FacultyID }},
		{Key: "tipo_bloque_id", Header: "Tipo", Sortable: true, Hidden: true, Value: func(b entities.Block) interface{} { return b.BlockTypeID }},
		{Key: "lat", Header: "Latitud", Sortable: true, Value: func(b entities.Block) interface{} { return b.Lat }, Text: func(b entities.Block) string { return utils.FormatFloat(b.Lat) }},
		{Key: "lng", Header: "Longitud", Sortable: true, Value: func(b entities.Block) interface{} { return b.Lng }, Text: func(b entities.Block) string { return utils.FormatFloat(b.Lng) }},
		{Key: "activo", Header: "Activo", Sortable: true, Value: func(b entities.Block) interface{} { return b.Active }, Text: func(b entities.Block) string { return yesNo(b.Active) }},
	}
}

func (ctrl *BlockController) Live() LiveList { return ctrl.list }

func (ctrl *BlockController) GetBlocks(c echo.Context) error {
	return renderList(c, ctrl.Base, ctrl.list, nil)
}

func (ctrl *BlockController) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return renderList(c, ctrl.Base, ctrl.list, func(p *views.ListPage) {
		p.Confirm = &views.ConfirmDialog{
			Message:    "¿Eliminar este bloque? Esta acción no se puede deshacer.",
			Action:     fmt.Sprintf("/bloques/%d/delete%s", id, querySuffix(ctrl.listParams(c))),
			CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		}
	})
}

func (ctrl *BlockController) DeleteBlock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = ctrl.blockService.DeleteBlock(c.Request().Context(), id)
	if err != nil {
		ctrl.logger.Warn("не удалось удалить блок", zap.Uint64("id", id), zap.Error(err))
	}
	return ctrl.finishMutation(c, err, "Bloque eliminado", ctrl.backTo(c, ctrl.list.BasePath))
}

func (ctrl *BlockController) NewBlock(c echo.Context) error {
	return ctrl.renderForm(c, http.StatusOK, 0, dto.BlockForm{Floors: "1", Active: "on"}, nil)
}

func (ctrl *BlockController) CreateBlock(c echo.Context) error {
	return ctrl.submit(c, 0)
}

func (ctrl *BlockController) EditBlock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	block, err := ctrl.blockService.FindBlock(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctrl.renderForm(c, http.StatusOK, id, dto.BlockFormFrom(*block), nil)
}

func (ctrl *BlockController) UpdateBlock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return ctrl.submit(c, id)
}

func (ctrl *BlockController) submit(c echo.Context, id uint64) error {
	var form dto.BlockForm
	if err := c.Bind(&form); err != nil {
		return apperrors.NewBadRequestError("Formulario inválido")
	}
	payload, fe := form.Payload()
	fe = validation.Translate(c.Validate(payload), fe)
	if !fe.Empty() {
		return ctrl.renderForm(c, http.StatusUnprocessableEntity, id, form, fe)
	}

	ctx := c.Request().Context()
	var err error
	if id == 0 {
		err = ctrl.blockService.CreateBlock(ctx, payload)
	} else {
		err = ctrl.blockService.UpdateBlock(ctx, id, payload)
	}
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		ctrl.notifier(c).Error(apperrors.UserMessage(err))
		return ctrl.renderForm(c, failureStatus(err), id, form, nil)
	}

	msg := "Bloque creado"
	if id != 0 {
		msg = "Bloque actualizado"
	}
	return ctrl.finishMutation(c, nil, msg, ctrl.backTo(c, ctrl.list.BasePath))
}

// renderForm грузит факультеты и типы блоков параллельно; при ошибке форма
// заменяется ссылкой "Reintentar".
func (ctrl *BlockController) renderForm(c echo.Context, status int, id uint64, form dto.BlockForm, fe validation.FieldErrors) error {
	suffix := querySuffix(ctrl.listParams(c))
	page := views.FormPage{
		Heading:    "Nuevo bloque",
		Action:     "/bloques" + suffix,
		CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		RetryHref:  "/bloques/new" + suffix,
		Form:       form,
		Errors:     fe,
	}
	if id != 0 {
		page.Heading = "Editar bloque"
		page.Action = "/bloques/" + strconv.FormatUint(id, 10) + "/edit" + suffix
		page.RetryHref = page.Action
		page.Editing = true
	}

	catalog, err := ctrl.catalogService.BlockFormCatalog(c.Request().Context())
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		page.CatalogError = "No se pudieron cargar los catálogos: " + apperrors.UserMessage(err)
	} else {
		page.Faculties = catalog.Faculties
		page.BlockTypes = catalog.BlockTypes
	}

	page.Layout = ctrl.layout(c, page.Heading, ctrl.list.BasePath)
	return c.Render(status, views.PageBlock, page)
}
