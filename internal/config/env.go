package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"calk-kg/internal/logging"
)

// LoadEnv loads variables from .env files if present. Existing
// environment variables are never overwritten.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logging.Debug("no .env file loaded")
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if CALK_ENV selects production.
func IsProduction() bool {
	return GetEnv("CALK_ENV", "development") == "production"
}

// ApplyEnv overlays CALK_* variables on c.
func (c *Config) ApplyEnv() {
	c.Rates.Environment = GetEnv("CALK_ENV", c.Rates.Environment)
	if url := GetEnv("CALK_RATES_URL", ""); url != "" {
		c.Rates.Endpoint = url
		c.Rates.DevEndpoint = url
	}
	c.Server.Address = GetEnv("CALK_ADDR", c.Server.Address)
	c.Server.UpstreamURL = GetEnv("CALK_UPSTREAM_URL", c.Server.UpstreamURL)
	c.Server.CacheTTLSeconds = GetIntEnv("CALK_CACHE_TTL", c.Server.CacheTTLSeconds)
	c.Cache.Backend = GetEnv("CALK_CACHE_BACKEND", c.Cache.Backend)
	c.Cache.RedisAddr = GetEnv("CALK_REDIS_ADDR", c.Cache.RedisAddr)
	c.Cache.RedisDB = GetIntEnv("CALK_REDIS_DB", c.Cache.RedisDB)
	c.Logging.Level = GetEnv("CALK_LOG_LEVEL", c.Logging.Level)
}
