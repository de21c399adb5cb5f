package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.CacheTTLSeconds != 3600 {
		t.Errorf("expected default TTL 3600, got %d", cfg.Server.CacheTTLSeconds)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("expected memory backend, got %q", cfg.Cache.Backend)
	}
}

func TestSaveThenLoadKeepsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "calk.json")

	cfg := Default()
	cfg.Site.DistDir = "build"
	cfg.Rates.Environment = "production"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Site.DistDir != "build" {
		t.Errorf("expected dist dir 'build', got %q", loaded.Site.DistDir)
	}
	if loaded.RatesURL() != loaded.Rates.Endpoint {
		t.Errorf("production should select the prod endpoint, got %q", loaded.RatesURL())
	}
}

func TestRatesURLSelectsByEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"production uses prod endpoint", "production", Default().Rates.Endpoint},
		{"development uses dev endpoint", "development", Default().Rates.DevEndpoint},
		{"empty falls back to dev", "", Default().Rates.DevEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Rates.Environment = tt.env
			if got := cfg.RatesURL(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("CALK_ENV", "production")
	t.Setenv("CALK_RATES_URL", "http://rates.test/api")
	t.Setenv("CALK_CACHE_BACKEND", "redis")
	t.Setenv("CALK_REDIS_DB", "3")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.RatesURL() != "http://rates.test/api" {
		t.Errorf("expected env rates url, got %q", cfg.RatesURL())
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %s db %d", cfg.Cache.Backend, cfg.Cache.RedisDB)
	}
	if !IsProduction() {
		t.Error("expected IsProduction to be true")
	}
}

func TestGetIntEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("CALK_CACHE_TTL", "soon")
	if got := GetIntEnv("CALK_CACHE_TTL", 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
}
