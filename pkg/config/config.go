package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// Every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Cache
	Cache CacheConfig

	// External sources
	WorldBank WorldBankConfig
	FRED      FREDConfig
	GDELT     GDELTConfig

	// Fracture Index
	Fracture FractureConfig

	// Database (optional; alert subscriptions are disabled when URL is empty)
	Database DatabaseConfig

	// Snapshot refresh schedule (cron expression with seconds)
	RefreshSchedule string

	// Logging
	LogLevel  string
	LogFormat string
}

// CacheConfig holds the file cache configuration
type CacheConfig struct {
	Dir string
	TTL time.Duration
}

// WorldBankConfig holds the tabular indicator source configuration
type WorldBankConfig struct {
	BaseURL string
	Years   int // lookback window in years for annual indicators
	Timeout time.Duration
}

// FREDConfig holds the time-series source configuration
type FREDConfig struct {
	BaseURL      string
	LookbackDays int
	Timeout      time.Duration
}

// GDELTConfig holds the text-analytics source configuration
type GDELTConfig struct {
	BaseURL   string
	Monitored int     // number of countries fetched per cycle
	RateRPS   float64 // polite request rate toward the doc API
	Timeout   time.Duration
}

// FractureConfig holds Fracture Index tuning values
type FractureConfig struct {
	// Proliferation is a fixed estimate pending a proper data source.
	Proliferation float64
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables.
// This function is the only caller of os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "5003"),
		Env:  getEnv("ENV", "development"),

		Cache: CacheConfig{
			Dir: getEnv("CACHE_DIR", "/tmp/causentia_cache"),
			TTL: getEnvAsDuration("CACHE_TTL", "6h"),
		},

		WorldBank: WorldBankConfig{
			BaseURL: getEnv("WORLDBANK_BASE_URL", "https://api.worldbank.org/v2"),
			Years:   getEnvAsInt("WORLDBANK_YEARS", 5),
			Timeout: getEnvAsDuration("WORLDBANK_TIMEOUT", "60s"),
		},

		FRED: FREDConfig{
			BaseURL:      getEnv("FRED_BASE_URL", "https://fred.stlouisfed.org"),
			LookbackDays: getEnvAsInt("FRED_LOOKBACK_DAYS", 90),
			Timeout:      getEnvAsDuration("FRED_TIMEOUT", "20s"),
		},

		GDELT: GDELTConfig{
			BaseURL:   getEnv("GDELT_BASE_URL", "https://api.gdeltproject.org/api/v2/doc/doc"),
			Monitored: getEnvAsInt("GDELT_MONITORED", 20),
			RateRPS:   getEnvAsFloat("GDELT_RATE_RPS", 1),
			Timeout:   getEnvAsDuration("GDELT_TIMEOUT", "20s"),
		},

		Fracture: FractureConfig{
			Proliferation: getEnvAsFloat("FRACTURE_PROLIFERATION", 0.44),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 0 */6 * * *"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("CACHE_DIR is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.WorldBank.Years <= 0 {
		return fmt.Errorf("WORLDBANK_YEARS must be positive")
	}
	if c.FRED.LookbackDays <= 0 {
		return fmt.Errorf("FRED_LOOKBACK_DAYS must be positive")
	}

	if c.Fracture.Proliferation < 0 || c.Fracture.Proliferation > 1 {
		return fmt.Errorf("FRACTURE_PROLIFERATION must be within [0,1]")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
