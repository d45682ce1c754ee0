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

type FacultyController struct {
	*Base
	facultyService services.FacultyServiceInterface
	catalogService services.CatalogServiceInterface
	list           *listDefinition[entities.Faculty]
}

func NewFacultyController(
	facultyService services.FacultyServiceInterface,
	catalogService services.CatalogServiceInterface,
	base *Base,
) *FacultyController {
	ctrl := &FacultyController{Base: base, facultyService: facultyService, catalogService: catalogService}
	ctrl.list = &listDefinition[entities.Faculty]{
		Entity:   events.EntityFaculty,
		Title:    "Facultades",
		BasePath: "/facultades",
		NewHref:  "/facultades/new",
		Empty:    "No hay facultades registradas",
		Columns:  facultyColumns,
		Actions: func(suffix string) []table.RowAction[entities.Faculty] {
			return []table.RowAction[entities.Faculty]{
				{Key: "edit", Label: "Editar", Href: func(f entities.Faculty) string { return fmt.Sprintf("/facultades/%d/edit%s", f.ID, suffix) }},
				{Key: "delete", Label: "Eliminar", Href: func(f entities.Faculty) string { return fmt.Sprintf("/facultades/%d/delete%s", f.ID, suffix) }},
			}
		},
		Fetch: facultyService.GetFaculties,
	}
	return ctrl
}

func facultyColumns() []table.ColumnSpec[entities.Faculty] {
	return []table.ColumnSpec[entities.Faculty]{
		{Key: "codigo", Header: "Código", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.Code }},
		{Key: "nombre", Header: "Nombre", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.Name }},
		{Key: "nombre_corto", Header: "Sigla", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.ShortName }},
		{Key: "campus_id", Header: "Campus", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.CampusID }},
		{Key: "lat", Header: "Latitud", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.Lat }, Text: func(f entities.Faculty) string { return utils.FormatFloat(f.Lat) }},
		{Key: "lng", Header: "Longitud", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.Lng }, Text: func(f entities.Faculty) string { return utils.FormatFloat(f.Lng) }},
		{Key: "activo", Header: "Activo", Sortable: true, Value: func(f entities.Faculty) interface{} { return f.Active }, Text: func(f entities.Faculty) string { return yesNo(f.Active) }},
	}
}

func (ctrl *FacultyController) Live() LiveList { return ctrl.list }

func (ctrl *FacultyController) GetFaculties(c echo.Context) error {
	return renderList(c, ctrl.Base, ctrl.list, nil)
}

func (ctrl *FacultyController) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return renderList(c, ctrl.Base, ctrl.list, func(p *views.ListPage) {
		p.Confirm = &views.ConfirmDialog{
			Message:    "¿Eliminar esta facultad? Esta acción no se puede deshacer.",
			Action:     fmt.Sprintf("/facultades/%d/delete%s", id, querySuffix(ctrl.listParams(c))),
			CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		}
	})
}

func (ctrl *FacultyController) DeleteFaculty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = ctrl.facultyService.DeleteFaculty(c.Request().Context(), id)
	if err != nil {
		ctrl.logger.Warn("не удалось удалить факультет", zap.Uint64("id", id), zap.Error(err))
	}
	return ctrl.finishMutation(c, err, "Facultad eliminada", ctrl.backTo(c, ctrl.list.BasePath))
}

func (ctrl *FacultyController) NewFaculty(c echo.Context) error {
	return ctrl.renderForm(c, http.StatusOK, 0, dto.FacultyForm{Active: "on"}, nil)
}

func (ctrl *FacultyController) CreateFaculty(c echo.Context) error {
	return ctrl.submit(c, 0)
}

func (ctrl *FacultyController) EditFaculty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	faculty, err := ctrl.facultyService.FindFaculty(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctrl.renderForm(c, http.StatusOK, id, dto.FacultyFormFrom(*faculty), nil)
}

func (ctrl *FacultyController) UpdateFaculty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return ctrl.submit(c, id)
}

func (ctrl *FacultyController) submit(c echo.Context, id uint64) error {
	var form dto.FacultyForm
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
		err = ctrl.facultyService.CreateFaculty(ctx, payload)
	} else {
		err = ctrl.facultyService.UpdateFaculty(ctx, id, payload)
	}
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		ctrl.notifier(c).Error(apperrors.UserMessage(err))
		return ctrl.renderForm(c, failureStatus(err), id, form, nil)
	}

	msg := "Facultad creada"
	if id != 0 {
		msg = "Facultad actualizada"
	}
	return ctrl.finishMutation(c, nil, msg, ctrl.backTo(c, ctrl.list.BasePath))
}

// renderForm каждый раз заново грузит кампусы: без них форму не показать.
func (ctrl *FacultyController) renderForm(c echo.Context, status int, id uint64, form dto.FacultyForm, fe validation.FieldErrors) error {
	suffix := querySuffix(ctrl.listParams(c))
	page := views.FormPage{
		Heading:    "Nueva facultad",
		Action:     "/facultades" + suffix,
		CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		RetryHref:  "/facultades/new" + suffix,
		Form:       form,
		Errors:     fe,
	}
	if id != 0 {
		page.Heading = "Editar facultad"
		page.Action = "/facultades/" + strconv.FormatUint(id, 10) + "/edit" + suffix
		page.RetryHref = page.Action
		page.Editing = true
	}

	catalog, err := ctrl.catalogService.FacultyFormCatalog(c.Request().Context())
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		page.CatalogError = "No se pudieron cargar los campus: " + apperrors.UserMessage(err)
	} else {
		page.Campuses = catalog.Campuses
	}

	page.Layout = ctrl.layout(c, page.Heading, ctrl.list.BasePath)
	return c.Render(status, views.PageFaculty, page)
}
