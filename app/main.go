// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"facilities-console/internal/dto"
	"facilities-console/internal/listeners"
	"facilities-console/internal/routes"
	"facilities-console/internal/services"
	"facilities-console/internal/views"
	"facilities-console/pkg/apiclient"
	"facilities-console/pkg/config"
	"facilities-console/pkg/database/redisdb"
	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/eventbus"
	applogger "facilities-console/pkg/logger"
	appmiddleware "facilities-console/pkg/middleware"
	"facilities-console/pkg/utils"
	"facilities-console/pkg/validation"
	"facilities-console/pkg/websocket"
)

func main() {
	// 1. Конфиг читается один раз и дальше не меняется
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.InjectLogger(logger))
	e.Use(appmiddleware.RequestLogger(logger.Named("http")))

	// 3. Шаблоны и валидатор
	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Fatal("ошибка загрузки шаблонов", zap.Error(err))
	}
	validator := validation.New(dto.CoordinateTypes()...)

	// 4. Redis необязателен: без него кеш реестра выключен
	redisClient, err := redisdb.Connect(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 5. Клиенты API, реестр имущества, события
	apiClient := apiclient.New(cfg.API.BaseURL(),
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(logger.Named("api")),
	)
	selfClient := apiclient.New(cfg.Server.PublicURL(),
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(logger.Named("self")),
	)
	goodsRegistry, err := routes.NewGoodsRegistry(cfg, logger.Named("goods"))
	if err != nil {
		logger.Fatal("ошибка настройки реестра имущества", zap.Error(err))
	}

	var notifications services.NotificationServiceInterface = services.NewNotificationService(logger.Named("notifications"))
	if redisClient != nil {
		notifications = services.NewRedisNotificationService(redisClient, logger.Named("notifications"))
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	bus := eventbus.New(logger.Named("eventbus"))
	listeners.NewAuditListener(logger.Named("audit")).Register(bus)
	listeners.NewLiveListListener(hub, logger.Named("live")).Register(bus)

	// 6. Маршруты
	routes.InitRouter(e, routes.Dependencies{
		Config:        cfg,
		API:           apiClient,
		Self:          selfClient,
		Redis:         redisClient,
		Hub:           hub,
		Bus:           bus,
		Validator:     validator,
		Renderer:      renderer,
		Notifications: notifications,
		Goods:         goodsRegistry,
	}, &routes.Loggers{
		Main:  logger,
		Goods: logger.Named("goods"),
		Live:  logger.Named("live"),
	})

	// 7. Запуск и корректная остановка
	go func() {
		logger.Info("🚀 Консоль запущена",
			zap.String("address", cfg.Server.Address()),
			zap.String("api", cfg.API.BaseURL()),
			zap.String("env", cfg.Env),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("получен сигнал остановки")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("ошибка остановки сервера", zap.Error(err))
	}
	bus.Wait()
}
