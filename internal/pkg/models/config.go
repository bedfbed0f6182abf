package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	Services   ServicesConfig
	Directions DirectionsConfig
	Pricing    PricingConfig
	Map        MapConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	DriverServiceURL string
}

// DirectionsConfig configures the directions/time provider
type DirectionsConfig struct {
	APIKey           string
	BaseURL          string
	Timeout          time.Duration
	CacheTTL         time.Duration
	GeohashPrecision uint
}

// PricingConfig controls how fares are rendered
type PricingConfig struct {
	CurrencySymbol string
}

// MapConfig contains map session defaults
type MapConfig struct {
	DefaultRadiusKm   float64
	EnrichConcurrency int
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
