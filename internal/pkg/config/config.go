package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration for a service. In the local environment the
// file at configPath is loaded into the process environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("DRIVER_SERVICE_URL", "http://localhost:9991")

	v.SetDefault("DIRECTIONS_BASE_URL", "https://maps.googleapis.com/maps/api/directions/json")
	v.SetDefault("DIRECTIONS_TIMEOUT_MS", 3000)
	v.SetDefault("DIRECTIONS_CACHE_TTL_SECONDS", 120)
	v.SetDefault("DIRECTIONS_GEOHASH_PRECISION", 7)

	v.SetDefault("PRICING_CURRENCY_SYMBOL", "$")

	v.SetDefault("MAP_DEFAULT_RADIUS_KM", 1.0)
	v.SetDefault("MAP_ENRICH_CONCURRENCY", 8)

	v.SetDefault("NEW_RELIC_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// Services config
	configs.Services.DriverServiceURL = v.GetString("DRIVER_SERVICE_URL")

	// Directions config
	configs.Directions.APIKey = v.GetString("DIRECTIONS_API_KEY")
	configs.Directions.BaseURL = v.GetString("DIRECTIONS_BASE_URL")
	configs.Directions.Timeout = time.Duration(v.GetInt("DIRECTIONS_TIMEOUT_MS")) * time.Millisecond
	configs.Directions.CacheTTL = time.Duration(v.GetInt("DIRECTIONS_CACHE_TTL_SECONDS")) * time.Second
	configs.Directions.GeohashPrecision = v.GetUint("DIRECTIONS_GEOHASH_PRECISION")

	// Pricing config
	configs.Pricing.CurrencySymbol = v.GetString("PRICING_CURRENCY_SYMBOL")

	// Map config
	configs.Map.DefaultRadiusKm = v.GetFloat64("MAP_DEFAULT_RADIUS_KM")
	configs.Map.EnrichConcurrency = v.GetInt("MAP_ENRICH_CONCURRENCY")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
