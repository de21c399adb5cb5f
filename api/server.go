// Package api is the HTTP surface: the currency-rate proxy in front of the
// National Bank feed and the calculation endpoints.
// Handlers never compute; every calculation goes through the engine.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"calk-kg/adapters/cache"
	"calk-kg/adapters/nbkr"
	"calk-kg/adapters/tariffs"
	"calk-kg/core/engine"
	"calk-kg/internal/config"
	"calk-kg/internal/logging"
)

// Config holds server configuration
type Config struct {
	// Address to listen on
	Address string `json:"address"`

	// ReadTimeout for requests
	ReadTimeout time.Duration `json:"read_timeout"`

	// WriteTimeout for responses
	WriteTimeout time.Duration `json:"write_timeout"`

	// MaxBodySize limits calculation request bodies
	MaxBodySize int64 `json:"max_body_size"`

	// AllowedOrigins for CORS
	AllowedOrigins []string `json:"allowed_origins"`

	// CacheTTL is how long a National Bank response is served from cache
	CacheTTL time.Duration `json:"cache_ttl"`

	// Version is reported by /version and stamped on reports
	Version string `json:"version"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Address:        ":8888",
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxBodySize:    1 << 20,
		AllowedOrigins: []string{"*"},
		CacheTTL:       time.Hour,
		Version:        "dev",
	}
}

// ConfigFrom builds the server configuration from the application config
func ConfigFrom(cfg *config.Config, version string) *Config {
	c := DefaultConfig()
	if cfg.Server.Address != "" {
		c.Address = cfg.Server.Address
	}
	if len(cfg.Server.CORSOrigins) > 0 {
		c.AllowedOrigins = cfg.Server.CORSOrigins
	}
	c.CacheTTL = cfg.CacheTTL()
	c.Version = version
	return c
}

// Server serves the rate proxy and the calculators
type Server struct {
	config   *Config
	engine   *engine.Engine
	upstream *nbkr.MetricsSource
	cache    cache.Store
	now      func() time.Time
	server   *http.Server

	requestCount   int64
	errorCount     int64
	totalLatencyMs int64
	mu             sync.RWMutex
}

// New creates a server. Calculators that need exchange rates read them
// through the same cache as /api/currency-rates.
func New(upstream nbkr.Source, store cache.Store, tables *engine.Tables, cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if store == nil {
		store = cache.NewMemoryStore()
	}

	s := &Server{
		config:   cfg,
		upstream: nbkr.NewMetricsSource(upstream),
		cache:    store,
		now:      time.Now,
	}
	s.engine = engine.New(tables, proxyRates{s}, engine.Config{Version: cfg.Version})
	return s
}

// NewFromConfig wires a server from the application config: the National
// Bank feed, the configured cache backend and the tariff override file.
// An unreachable Redis degrades to the in-memory store.
func NewFromConfig(ctx context.Context, cfg *config.Config, version string) (*Server, error) {
	tables, err := tariffs.Load(cfg.Tariffs.OverrideFile)
	if err != nil {
		return nil, err
	}

	store, err := cache.StoreFactory(cache.Config{
		Backend:   cache.Backend(cfg.Cache.Backend),
		RedisAddr: cfg.Cache.RedisAddr,
		RedisDB:   cfg.Cache.RedisDB,
		KeyPrefix: cfg.Cache.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}
	if err := store.Ping(ctx); err != nil {
		logging.Warn("cache unavailable, using memory store",
			zap.String("backend", cfg.Cache.Backend),
			zap.Error(err))
		store.Close()
		store = cache.NewMemoryStore()
	}

	upstream := nbkr.NewClient(cfg.Server.UpstreamURL, nil)
	return New(upstream, store, tables, ConfigFrom(cfg, version)), nil
}

// WithClock replaces the time source used for cache ages and timestamps
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	s.engine.WithClock(now)
	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	s.use(r)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/currency-rates", s.handleCurrencyRates)
		r.Get("/catalog", s.handleCatalog)
		r.Post("/calculate/{slug}", s.handleCalculate)
	})

	return r
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:         s.config.Address,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.server = s.httpServer()
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes the cache
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.cache.Close()
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	s.server = s.httpServer()
	errc := make(chan error, 1)
	go func() {
		logging.Info("server listening", zap.String("address", s.config.Address))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
