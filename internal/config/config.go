package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/calorelia/calorelia-bot/internal/logger"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

type Config struct {
	TelegramToken string
	OpenAIAPIKey  string // optional fallback provider; the Gemini key is per-user
	Storage       StorageConfig
	Logger        LoggerConfig
}

type StorageConfig struct {
	Backend string
	DB      DBConfig
	Redis   RedisConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host string
	Port string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", BackendPostgres))
	switch backend {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		Storage: StorageConfig{
			Backend: backend,
			DB: DBConfig{
				Host:     getEnvOrDefault("DB_HOST", "localhost"),
				Port:     getEnvOrDefault("DB_PORT", "5432"),
				User:     getEnvOrDefault("DB_USER", "postgres"),
				Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
				DBName:   getEnvOrDefault("DB_NAME", "calorelia"),
			},
			Redis: RedisConfig{
				Host: getEnvOrDefault("REDIS_HOST", "localhost"),
				Port: getEnvOrDefault("REDIS_PORT", "6379"),
			},
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
