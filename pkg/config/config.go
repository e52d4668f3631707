package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL string
	DBPath     string

	HTTPTimeout      time.Duration
	LivenessInterval time.Duration
	RelatedLimit     int
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are applied first and never override variables
// that are already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		APIBaseURL:       getEnv("STOREFRONT_API_URL", "http://localhost:3001"),
		DBPath:           getEnv("STOREFRONT_DB_PATH", "storefront.db"),
		HTTPTimeout:      getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		LivenessInterval: getEnvDuration("LIVENESS_INTERVAL", 20*time.Second),
		RelatedLimit:     getEnvInt("RELATED_LIMIT", 6),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

// getEnvDuration accepts Go durations ("20s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
