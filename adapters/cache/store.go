// Package cache provides the response cache used by the rate proxy.
// Supports two backends: in-process memory and Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"calk-kg/internal/errors"
)

// Backend is a cache backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// Entry is a cached value and when it was stored
type Entry struct {
	Value    []byte    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// Age returns how long ago the entry was stored
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.StoredAt)
}

// Store is the cache interface
type Store interface {
	// Get returns the entry for key. A miss is (Entry{}, false, nil).
	Get(ctx context.Context, key string) (Entry, bool, error)

	// Set stores value under key for ttl. A zero ttl never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key
	Delete(ctx context.Context, key string) error

	// Ping verifies the backend is reachable
	Ping(ctx context.Context) error

	// Close closes the store
	Close() error
}

// MemoryStore is an in-process store for a single server
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	Entry
	expiresAt time.Time
}

// NewMemoryStore creates a memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// WithClock replaces the time source
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return Entry{}, false, nil
	}
	now := s.now()
	if e.expired(now) {
		// A Set may have replaced the entry since the read lock was released
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur.expired(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return Entry{}, false, nil
	}
	return e.Entry, true, nil
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now()
	e := memoryEntry{Entry: Entry{Value: append([]byte(nil), value...), StoredAt: now}}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Config selects and configures a backend
type Config struct {
	Backend   Backend
	RedisAddr string
	RedisDB   int
	KeyPrefix string
}

// StoreFactory creates a store from config
func StoreFactory(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.Config("redis backend needs an address")
		}
		return NewRedisStore(cfg.RedisAddr, cfg.RedisDB, cfg.KeyPrefix), nil
	default:
		return nil, errors.Newf(errors.TypeNotSupported, "unsupported cache backend: %s", cfg.Backend)
	}
}
