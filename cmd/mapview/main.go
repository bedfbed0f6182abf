package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/ryde/ryde/internal/pkg/config"
	"github.com/ryde/ryde/internal/pkg/database"
	"github.com/ryde/ryde/internal/pkg/health"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/middleware"
	nrpkg "github.com/ryde/ryde/internal/pkg/newrelic"
	"github.com/ryde/ryde/internal/pkg/server"
	wspkg "github.com/ryde/ryde/internal/pkg/websocket"
	"github.com/ryde/ryde/services/mapview/gateway"
	"github.com/ryde/ryde/services/mapview/geo"
	"github.com/ryde/ryde/services/mapview/handler"
	"github.com/ryde/ryde/services/mapview/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "mapview-service"
	configPath := flag.String("config", "config/mapview.env", "path to the .env file loaded when APP_ENV=local")
	flag.Parse()

	configs := config.InitConfig(*configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize Redis client for the directions cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize gateways
	directoryGW := gateway.NewDirectoryClient(configs.Services.DriverServiceURL, configs.Directions.Timeout)
	directionsGW := gateway.NewCachedDirections(
		gateway.NewDirectionsClient(configs.Directions),
		redisClient,
		configs.Directions.CacheTTL,
		configs.Directions.GeohashPrecision,
	)

	// Initialize usecase
	enricher := geo.NewEnricher(directionsGW, geo.EnricherConfig{
		Concurrency:    configs.Map.EnrichConcurrency,
		Timeout:        configs.Directions.Timeout,
		CurrencySymbol: configs.Pricing.CurrencySymbol,
	})
	mapUC := usecase.NewMapUC(directoryGW, enricher, configs)

	// Initialize handlers
	h := handler.NewHandler(mapUC, wspkg.NewManager())

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.RedisChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}
}
