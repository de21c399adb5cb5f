// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"calk-kg/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rates configures where calculators fetch currency rates from
	Rates RatesConfig `json:"rates"`

	// Server configures the rate proxy and calculation API
	Server ServerConfig `json:"server"`

	// Cache configures the rate proxy cache backend
	Cache CacheConfig `json:"cache"`

	// Site configures static HTML generation
	Site SiteConfig `json:"site"`

	// Tariffs configures tariff override files
	Tariffs TariffsConfig `json:"tariffs"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RatesConfig contains rate endpoint settings
type RatesConfig struct {
	// Endpoint is used in production
	Endpoint string `json:"endpoint"`

	// DevEndpoint is used everywhere else
	DevEndpoint string `json:"dev_endpoint"`

	// TimeoutSeconds bounds a single fetch
	TimeoutSeconds int `json:"timeout_seconds"`

	// Environment is "production" or "development"
	Environment string `json:"environment"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address to listen on
	Address string `json:"address"`

	// CORSOrigins lists allowed origins
	CORSOrigins []string `json:"cors_origins"`

	// CacheTTLSeconds is how long an upstream response is served from cache
	CacheTTLSeconds int `json:"cache_ttl_seconds"`

	// UpstreamURL is the National Bank daily XML feed
	UpstreamURL string `json:"upstream_url"`
}

// CacheConfig contains cache backend settings
type CacheConfig struct {
	// Backend is "memory" or "redis"
	Backend string `json:"backend"`

	// RedisAddr is host:port of the redis server
	RedisAddr string `json:"redis_addr,omitempty"`

	// RedisDB selects the redis database
	RedisDB int `json:"redis_db,omitempty"`

	// KeyPrefix namespaces cache keys
	KeyPrefix string `json:"key_prefix"`
}

// SiteConfig contains static generation settings
type SiteConfig struct {
	// DistDir holds the built index.html
	DistDir string `json:"dist_dir"`

	// BaseURL prefixes canonical and og:url links
	BaseURL string `json:"base_url"`

	// Locale is written to og:locale
	Locale string `json:"locale"`
}

// TariffsConfig contains tariff override settings
type TariffsConfig struct {
	// OverrideFile is an optional .hcl file applied on top of built-in tables
	OverrideFile string `json:"override_file,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Rates: RatesConfig{
			Endpoint:       "https://calk.kg/.netlify/functions/currency-rates",
			DevEndpoint:    "http://localhost:8888/.netlify/functions/currency-rates",
			TimeoutSeconds: 10,
			Environment:    "development",
		},
		Server: ServerConfig{
			Address:         ":8888",
			CORSOrigins:     []string{"*"},
			CacheTTLSeconds: 3600, // 1 hour
			UpstreamURL:     "https://www.nbkr.kg/XML/daily.xml",
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			KeyPrefix: "calk:",
		},
		Site: SiteConfig{
			DistDir: "dist",
			BaseURL: "https://calk.kg",
			Locale:  "ru_RU",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.calk-kg.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".calk-kg.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RatesURL picks the endpoint for the configured environment
func (c *Config) RatesURL() string {
	if c.Rates.Environment == "production" {
		return c.Rates.Endpoint
	}
	return c.Rates.DevEndpoint
}

// RatesTimeout returns the fetch timeout
func (c *Config) RatesTimeout() time.Duration {
	if c.Rates.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Rates.TimeoutSeconds) * time.Second
}

// CacheTTL returns the proxy cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Server.CacheTTLSeconds) * time.Second
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
