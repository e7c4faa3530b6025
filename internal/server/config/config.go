package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultDatabasePath   = "offlinepay.db"
	defaultAccessTokenTTL = 24 * time.Hour
	defaultShutdownDelay  = 10 * time.Second
	defaultCurrency       = "MYR"
	defaultRateLimit      = 120
	defaultRateWindow     = time.Minute
)

// Config captures ledger server configuration loaded from environment
// variables.
type Config struct {
	Port           string
	LogLevel       string
	DatabasePath   string
	JWTSecret      string
	AccessTokenTTL time.Duration
	ShutdownPeriod time.Duration
	Currency       string
	InitialBalance decimal.Decimal
	RateLimit      int
	RateWindow     time.Duration
}

// Load reads configuration values from the environment and populates a
// Config instance.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabasePath:   getEnv("DATABASE_PATH", defaultDatabasePath),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: defaultAccessTokenTTL,
		ShutdownPeriod: defaultShutdownDelay,
		Currency:       getEnv("CURRENCY", defaultCurrency),
		InitialBalance: decimal.Zero,
		RateLimit:      defaultRateLimit,
		RateWindow:     defaultRateWindow,
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = d
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("INITIAL_BALANCE"); v != "" {
		balance, err := decimal.NewFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INITIAL_BALANCE: %w", err)
		}
		cfg.InitialBalance = balance
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = limit
	}

	if v := os.Getenv("RATE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_WINDOW: %w", err)
		}
		cfg.RateWindow = d
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

// Address returns the listen address for net/http.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
