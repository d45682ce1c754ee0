package routes

import (
	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/controllers"
	"facilities-console/internal/entities"
	"facilities-console/internal/integrations"
	"facilities-console/internal/integrations/goods"
	"facilities-console/internal/integrations/mock"
	"facilities-console/pkg/config"
)

func runGoodsRouter(api *echo.Group, ctrl *controllers.GoodsProxyController) {
	// пустой NIA тоже должен дойти до контроллера и получить 400
	api.GET("/goods", ctrl.GetGoods)
	api.GET("/goods/", ctrl.GetGoods)
	api.GET("/goods/:nia", ctrl.GetGoods)
}

// NewGoodsRegistry регистрирует провайдер реестра имущества по конфигу.
// Без GOODS_API_BASE_URL активного провайдера нет, и прокси отвечает 500.
func NewGoodsRegistry(cfg *config.Config, logger *zap.Logger) (integrations.RegistryInterface, error) {
	registry := integrations.NewRegistry()

	switch cfg.Goods.Provider {
	case "mock":
		if err := registry.Register(mock.NewMockProvider(devGoods())); err != nil {
			return nil, err
		}
		logger.Warn("реестр имущества: используются тестовые данные")
		return registry, registry.SetActive("mock")
	default:
		if cfg.Goods.BaseURL == "" {
			logger.Warn("GOODS_API_BASE_URL не задан, поиск по NIA недоступен")
			return registry, nil
		}
		if err := registry.Register(goods.New(cfg.Goods.BaseURL, cfg.API.Timeout, logger)); err != nil {
			return nil, err
		}
		return registry, registry.SetActive(goods.ProviderName)
	}
}

func devGoods() map[string][]entities.Good {
	return map[string][]entities.Good{
		"100200": {{
			NIA:          "100200",
			Description:  "Proyector multimedia",
			Status:       null.StringFrom("Bueno"),
			Brand:        null.StringFrom("Epson"),
			Model:        null.StringFrom("PowerLite X49"),
			Serial:       null.StringFrom("X49-0031"),
			InitialValue: null.Float64From(4850),
			PurchaseDate: null.StringFrom("2021-03-15"),
		}},
	}
}
