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
	natspkg "github.com/ryde/ryde/internal/pkg/nats"
	nrpkg "github.com/ryde/ryde/internal/pkg/newrelic"
	"github.com/ryde/ryde/internal/pkg/server"
	"github.com/ryde/ryde/services/drivers/handler"
	"github.com/ryde/ryde/services/drivers/repository"
	"github.com/ryde/ryde/services/drivers/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "drivers-service"
	configPath := flag.String("config", "config/drivers.env", "path to the .env file loaded when APP_ENV=local")
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize repositories and usecase
	driverRepo := repository.NewDriverRepository(postgresClient.GetDB())
	locationCache := repository.NewLocationCache(redisClient)
	driverUC := usecase.NewDriverUC(driverRepo, locationCache)

	// Initialize handlers
	h := handler.NewHandler(driverUC, natsClient)
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

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
	healthService.AddChecker("postgres", health.PostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.RedisChecker(redisClient))
	healthService.AddChecker("nats", health.NATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
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
