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
	"facilities-console/pkg/validation"
)

type CampusController struct {
	*Base
	campusService services.CampusServiceInterface
	list          *listDefinition[entities.Campus]
}

func NewCampusController(campusService services.CampusServiceInterface, base *Base) *CampusController {
	ctrl := &CampusController{Base: base, campusService: campusService}
	ctrl.list = &listDefinition[entities.Campus]{
		Entity:   events.EntityCampus,
		Title:    "Campus",
		BasePath: "/campus",
		NewHref:  "/campus/new",
		Empty:    "No hay campus registrados",
		Columns:  campusColumns,
		Actions: func(suffix string) []table.RowAction[entities.Campus] {
			return []table.RowAction[entities.Campus]{
				{Key: "edit", Label: "Editar", Href: func(c entities.Campus) string { return fmt.Sprintf("/campus/%d/edit%s", c.ID, suffix) }},
				{Key: "delete", Label: "Eliminar", Href: func(c entities.Campus) string { return fmt.Sprintf("/campus/%d/delete%s", c.ID, suffix) }},
			}
		},
		Fetch: campusService.GetCampuses,
	}
	return ctrl
}

func campusColumns() []table.ColumnSpec[entities.Campus] {
	return []table.ColumnSpec[entities.Campus]{
		{Key: "codigo", Header: "Código", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Code }},
		{Key: "nombre", Header: "Nombre", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Name }},
		{Key: "direccion", Header: "Dirección", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Address }},
		{Key: "lat", Header: "Latitud", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Lat }},
		{Key: "lng", Header: "Longitud", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Lng }},
		{Key: "activo", Header: "Activo", Sortable: true, Value: func(c entities.Campus) interface{} { return c.Active }, Text: func(c entities.Campus) string { return yesNo(c.Active) }},
		{Key: "creado_en", Header: "Creado", Sortable: true, Hidden: true, Value: func(c entities.Campus) interface{} { return c.CreatedAt },
			Text: func(c entities.Campus) string {
				if !c.CreatedAt.Valid {
					return ""
				}
				return c.CreatedAt.Time.Format("02/01/2006")
			}},
	}
}

func (ctrl *CampusController) Live() LiveList { return ctrl.list }

func (ctrl *CampusController) GetCampuses(c echo.Context) error {
	return renderList(c, ctrl.Base, ctrl.list, nil)
}

func (ctrl *CampusController) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return renderList(c, ctrl.Base, ctrl.list, func(p *views.ListPage) {
		p.Confirm = &views.ConfirmDialog{
			Message:    "¿Eliminar este campus? Esta acción no se puede deshacer.",
			Action:     fmt.Sprintf("/campus/%d/delete%s", id, querySuffix(ctrl.listParams(c))),
			CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		}
	})
}

func (ctrl *CampusController) DeleteCampus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = ctrl.campusService.DeleteCampus(c.Request().Context(), id)
	if err != nil {
		ctrl.logger.Warn("не удалось удалить кампус", zap.Uint64("id", id), zap.Error(err))
	}
	return ctrl.finishMutation(c, err, "Campus eliminado", ctrl.backTo(c, ctrl.list.BasePath))
}

func (ctrl *CampusController) NewCampus(c echo.Context) error {
	return ctrl.renderForm(c, http.StatusOK, 0, dto.CampusForm{Active: "on"}, nil)
}

func (ctrl *CampusController) CreateCampus(c echo.Context) error {
	return ctrl.submit(c, 0)
}

func (ctrl *CampusController) EditCampus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	campus, err := ctrl.campusService.FindCampus(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctrl.renderForm(c, http.StatusOK, id, dto.CampusFormFrom(*campus), nil)
}

func (ctrl *CampusController) UpdateCampus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return ctrl.submit(c, id)
}

// submit: проверка формы без сетевых запросов, затем ровно один POST или PATCH.
func (ctrl *CampusController) submit(c echo.Context, id uint64) error {
	var form dto.CampusForm
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
		err = ctrl.campusService.CreateCampus(ctx, payload)
	} else {
		err = ctrl.campusService.UpdateCampus(ctx, id, payload)
	}
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		ctrl.notifier(c).Error(apperrors.UserMessage(err))
		return ctrl.renderForm(c, failureStatus(err), id, form, nil)
	}

	msg := "Campus creado"
	if id != 0 {
		msg = "Campus actualizado"
	}
	return ctrl.finishMutation(c, nil, msg, ctrl.backTo(c, ctrl.list.BasePath))
}

func (ctrl *CampusController) renderForm(c echo.Context, status int, id uint64, form dto.CampusForm, fe validation.FieldErrors) error {
	suffix := querySuffix(ctrl.listParams(c))
	page := views.FormPage{
		Heading:    "Nuevo campus",
		Action:     "/campus" + suffix,
		CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		Form:       form,
		Errors:     fe,
	}
	if id != 0 {
		page.Heading = "Editar campus"
		page.Action = "/campus/" + strconv.FormatUint(id, 10) + "/edit" + suffix
		page.Editing = true
	}
	page.Layout = ctrl.layout(c, page.Heading, ctrl.list.BasePath)
	return c.Render(status, views.PageCampus, page)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
