package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret      string `env:"JWT_SECRET"`
	AuthCookieName string `env:"AUTH_COOKIE_NAME" envDefault:"token"`

	// WebSocket Config
	WSAllowedOrigins []string `env:"WS_ALLOWED_ORIGINS"`

	// Broadcast Config
	BroadcastFailureThreshold uint32        `env:"BROADCAST_FAILURE_THRESHOLD" envDefault:"5"`
	BroadcastBreakerTimeout   time.Duration `env:"BROADCAST_BREAKER_TIMEOUT" envDefault:"30s"`

	// Housekeeping Config
	ReaperInterval  time.Duration `env:"REAPER_INTERVAL" envDefault:"5m"`
	SignalRetention time.Duration `env:"SIGNAL_RETENTION" envDefault:"24h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AuthCookieName:   getEnv("AUTH_COOKIE_NAME", "token"),
		WSAllowedOrigins: getEnvAsList("WS_ALLOWED_ORIGINS"),
		ReaperInterval:   getEnvAsDuration("REAPER_INTERVAL", 5*time.Minute),
		SignalRetention:  getEnvAsDuration("SIGNAL_RETENTION", 24*time.Hour),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
	cfg.DBMaxConns = int32(getEnvAsInt("DB_MAX_CONNS", 0))
	cfg.BroadcastFailureThreshold = uint32(getEnvAsInt("BROADCAST_FAILURE_THRESHOLD", 5))
	cfg.BroadcastBreakerTimeout = getEnvAsDuration("BROADCAST_BREAKER_TIMEOUT", 30*time.Second)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
