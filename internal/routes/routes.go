package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/internal/controllers"
	"facilities-console/internal/events"
	"facilities-console/internal/integrations"
	"facilities-console/internal/repositories"
	"facilities-console/internal/services"
	"facilities-console/internal/views"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/config"
	"facilities-console/pkg/eventbus"
	"facilities-console/pkg/middleware"
	"facilities-console/pkg/validation"
	"facilities-console/pkg/websocket"
)

type Loggers struct {
	Main  *zap.Logger
	Goods *zap.Logger
	Live  *zap.Logger
}

// Dependencies - всё, что main создаёт до построения маршрутов.
type Dependencies struct {
	Config *config.Config
	// API - backend REST API; Self - сама консоль (для поиска через /api/goods).
	API           *apiclient.Client
	Self          *apiclient.Client
	Redis         *redis.Client
	Hub           *websocket.Hub
	Bus           *eventbus.Bus
	Validator     *validation.CustomValidator
	Renderer      *views.Renderer
	Notifications services.NotificationServiceInterface
	Goods         integrations.RegistryInterface
}

func InitRouter(e *echo.Echo, deps Dependencies, loggers *Loggers) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")
	cfg := deps.Config

	// --- 1. РЕПОЗИТОРИИ ---
	campusRepo := repositories.NewCampusRepository(deps.API, loggers.Main)
	facultyRepo := repositories.NewFacultyRepository(deps.API, loggers.Main)
	blockRepo := repositories.NewBlockRepository(deps.API, loggers.Main)
	assetRepo := repositories.NewAssetRepository(deps.API, loggers.Main)

	cacheRepo := repositories.NewNoopCacheRepository()
	if deps.Redis != nil {
		cacheRepo = repositories.NewRedisCacheRepository(deps.Redis, "goods")
	}

	// --- 2. СЕРВИСЫ ---
	campusService := services.NewCampusService(campusRepo, deps.Bus, loggers.Main)
	facultyService := services.NewFacultyService(facultyRepo, deps.Bus, loggers.Main)
	blockService := services.NewBlockService(blockRepo, deps.Bus, loggers.Main)
	assetService := services.NewAssetService(assetRepo, deps.Bus, loggers.Main)
	catalogService := services.NewCatalogService(campusRepo, facultyRepo, blockRepo, loggers.Main)
	proxyService := services.NewGoodsProxyService(deps.Goods, cacheRepo, deps.Validator, cfg.Goods.CacheTTL, loggers.Goods)
	lookupService := services.NewGoodsLookupService(deps.Self, deps.Validator, loggers.Goods)

	// --- 3. КОНТРОЛЛЕРЫ ---
	base := controllers.NewBase(deps.Notifications, cfg.List.PageSize, loggers.Main)
	campusCtrl := controllers.NewCampusController(campusService, base)
	facultyCtrl := controllers.NewFacultyController(facultyService, catalogService, base)
	blockCtrl := controllers.NewBlockController(blockService, catalogService, base)
	assetCtrl := controllers.NewAssetController(assetService, lookupService, base)
	proxyCtrl := controllers.NewGoodsProxyController(proxyService, loggers.Goods)
	liveCtrl := controllers.NewLiveListController(deps.Hub, deps.Renderer, cfg.List.PageSize, cfg.List.SearchDebounce, loggers.Live,
		campusCtrl.Live(), facultyCtrl.Live(), blockCtrl.Live(), assetCtrl.Live())
	indexCtrl := controllers.NewIndexController(base, deps.Hub,
		events.EntityCampus, events.EntityFaculty, events.EntityBlock, events.EntityAsset)

	e.Validator = deps.Validator
	e.Renderer = deps.Renderer
	e.HTTPErrorHandler = controllers.HTTPErrorHandler(base)

	// --- 4. РОУТЕРЫ ---
	e.GET("/healthz", indexCtrl.Healthz)
	runGoodsRouter(e.Group("/api"), proxyCtrl)
	e.GET("/ws/list/:entity", liveCtrl.ServeWs)

	sessionMW := middleware.NewSessionMiddleware(cfg.Env == config.EnvProduction, loggers.Main)
	pages := e.Group("", sessionMW.Session)
	pages.GET("/", indexCtrl.Index)
	runCampusRouter(pages, campusCtrl)
	runFacultyRouter(pages, facultyCtrl)
	runBlockRouter(pages, blockCtrl)
	runAssetRouter(pages, assetCtrl)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
