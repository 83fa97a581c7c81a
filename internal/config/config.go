package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	DatabasePath    string
	Port            string
	MinAdminRank    int
	CORSOrigin      string
	RateLimitWindow time.Duration
	RateLimitMax    int
	RedisAddr       string
	RedisDB         int
	EnableTrace     bool
	TraceEndpoint   string
}

// Load reads configuration from the environment, with a .env overlay for
// local development. Every key has a working default.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatabasePath:    getEnv("DATABASE_PATH", "./data/diaries.db"),
		Port:            getEnv("PORT", "3000"),
		MinAdminRank:    getEnvInt("MIN_ADMIN_RANK", 0),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		EnableTrace:     getEnvBool("ENABLE_TRACE", false),
		TraceEndpoint:   getEnv("TRACE_ENDPOINT", "localhost:4318"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
