package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/entities"
	"facilities-console/internal/events"
	"facilities-console/internal/services"
	"facilities-console/internal/table"
	"facilities-console/internal/views"
	apperrors "facilities-console/pkg/errors"
)

type AssetController struct {
	*Base
	assetService  services.AssetServiceInterface
	lookupService services.GoodsLookupServiceInterface
	list          *listDefinition[entities.Asset]
}

func NewAssetController(
	assetService services.AssetServiceInterface,
	lookupService services.GoodsLookupServiceInterface,
	base *Base,
) *AssetController {
	ctrl := &AssetController{Base: base, assetService: assetService, lookupService: lookupService}
	ctrl.list = &listDefinition[entities.Asset]{
		Entity:     events.EntityAsset,
		Title:      "Activos",
		BasePath:   "/activos",
		ExportHref: "/activos/export",
		Empty:      "No hay activos registrados",
		Columns:    assetColumns,
		Actions: func(suffix string) []table.RowAction[entities.Asset] {
			return []table.RowAction[entities.Asset]{
				{
					Key:     "goods",
					Label:   "Ver bienes",
					Href:    func(a entities.Asset) string { return "/activos/bienes/" + url.PathEscape(a.NIA) + suffix },
					Visible: func(a entities.Asset) bool { return a.NIA != "" },
				},
				{Key: "delete", Label: "Eliminar", Href: func(a entities.Asset) string { return fmt.Sprintf("/activos/%d/delete%s", a.ID, suffix) }},
			}
		},
		Fetch: assetService.GetAssets,
	}
	return ctrl
}

func assetColumns() []table.ColumnSpec[entities.Asset] {
	return []table.ColumnSpec[entities.Asset]{
		{Key: "nia", Header: "NIA", Sortable: true, Value: func(a entities.Asset) interface{} { return a.NIA }},
		{Key: "nombre", Header: "Nombre", Sortable: true, Value: func(a entities.Asset) interface{} { return a.Name }},
		{Key: "descripcion", Header: "Descripción", Value: func(a entities.Asset) interface{} { return a.Description }},
		{Key: "ambiente_codigo", Header: "Código ambiente", Sortable: true, Value: func(a entities.Asset) interface{} { return a.EnvironmentCode }},
		{Key: "ambiente_nombre", Header: "Ambiente", Sortable: true, Value: func(a entities.Asset) interface{} { return a.EnvironmentName }},
	}
}

func (ctrl *AssetController) Live() LiveList { return ctrl.list }

func (ctrl *AssetController) GetAssets(c echo.Context) error {
	return renderList(c, ctrl.Base, ctrl.list, nil)
}

// GetGoods - список активов с окном записей реестра имущества по NIA.
// Ошибка прокси показывается в окне, сама таблица не страдает.
func (ctrl *AssetController) GetGoods(c echo.Context) error {
	nia := c.Param("nia")
	goods, err := ctrl.lookupService.Lookup(c.Request().Context(), nia)
	if err != nil && apperrors.IsCanceled(err) {
		return err
	}

	overlay := &views.GoodsOverlay{
		NIA:       nia,
		Goods:     goods,
		CloseHref: ctrl.backTo(c, ctrl.list.BasePath),
	}
	if err != nil {
		ctrl.logger.Warn("не удалось получить записи реестра", zap.String("nia", nia), zap.Error(err))
		overlay.Error = apperrors.UserMessage(err)
	}
	return renderList(c, ctrl.Base, ctrl.list, func(p *views.ListPage) {
		p.Overlay = overlay
	})
}

func (ctrl *AssetController) ConfirmDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return renderList(c, ctrl.Base, ctrl.list, func(p *views.ListPage) {
		p.Confirm = &views.ConfirmDialog{
			Message:    "¿Eliminar este activo? Esta acción no se puede deshacer.",
			Action:     fmt.Sprintf("/activos/%d/delete%s", id, querySuffix(ctrl.listParams(c))),
			CancelHref: ctrl.backTo(c, ctrl.list.BasePath),
		}
	})
}

func (ctrl *AssetController) DeleteAsset(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = ctrl.assetService.DeleteAsset(c.Request().Context(), id)
	if err != nil {
		ctrl.logger.Warn("не удалось удалить актив", zap.Uint64("id", id), zap.Error(err))
	}
	return ctrl.finishMutation(c, err, "Activo eliminado", ctrl.backTo(c, ctrl.list.BasePath))
}

// Export выгружает все активы текущего поиска в XLSX.
func (ctrl *AssetController) Export(c echo.Context) error {
	ctx := c.Request().Context()
	search := ctrl.listParams(c).Search

	assets, err := ctrl.assetService.CollectAssets(ctx, search)
	if err != nil {
		if apperrors.IsCanceled(err) {
			return err
		}
		ctrl.notifier(c).Error(apperrors.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, ctrl.backTo(c, ctrl.list.BasePath))
	}

	// без справочника ambientes книга всё равно полезна
	environments, err := ctrl.assetService.GetEnvironments(ctx)
	if err != nil {
		ctrl.logger.Warn("справочник ambientes недоступен, лист пропущен", zap.Error(err))
		environments = nil
	}

	book, err := services.BuildAssetWorkbook(assets, environments)
	if err != nil {
		ctrl.logger.Error("ошибка формирования XLSX", zap.Error(err))
		return apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo generar el archivo", err, nil)
	}
	defer book.Close()

	filename := fmt.Sprintf("activos_%s.xlsx", time.Now().Format("20060102_1504"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)
	return book.Write(c.Response())
}
