package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/services"
	"facilities-console/pkg/api"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/utils"
)

// GoodsProxyController - GET /api/goods/:nia. Браузер и сервис поиска ходят сюда,
// а не напрямую во внешний реестр.
type GoodsProxyController struct {
	proxyService services.GoodsProxyServiceInterface
	logger       *zap.Logger
}

func NewGoodsProxyController(proxyService services.GoodsProxyServiceInterface, logger *zap.Logger) *GoodsProxyController {
	return &GoodsProxyController{proxyService: proxyService, logger: logger}
}

func (ctrl *GoodsProxyController) GetGoods(c echo.Context) error {
	goods, err := ctrl.proxyService.Fetch(c.Request().Context(), c.Param("nia"))
	if err == nil {
		return c.JSON(http.StatusOK, goods)
	}

	var upstream *services.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return api.Passthrough(c, upstream.Response.Status, upstream.Response.ContentType, upstream.Response.Body)
	case errors.Is(err, apperrors.ErrConfigMissing):
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError,
			"GOODS_API_BASE_URL no está configurado", err, nil), ctrl.logger)
	case errors.Is(err, apperrors.ErrBadRequest):
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "NIA requerido", err, nil), ctrl.logger)
	case errors.Is(err, apperrors.ErrSchemaMismatch):
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadGateway,
			"Respuesta inválida del sistema de bienes", err, nil), ctrl.logger)
	case errors.Is(err, apperrors.ErrTransport):
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadGateway,
			"No se pudo contactar el sistema de bienes", err, nil), ctrl.logger)
	case apperrors.IsCanceled(err):
		return err
	}
	return utils.ErrorResponse(c, err, ctrl.logger)
}
