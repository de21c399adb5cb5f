package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calk-kg/internal/errors"
)

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "rates", []byte(`{"date":"2025-03-14"}`), time.Hour))

	now = now.Add(30 * time.Minute)
	e, ok, err := store.Get(ctx, "rates")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"date":"2025-03-14"}`, string(e.Value))
	assert.Equal(t, 30*time.Minute, e.Age(now))

	now = now.Add(30 * time.Minute)
	_, ok, err = store.Get(ctx, "rates")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire exactly at the ttl")
}

func TestMemoryStoreExpiryKeepsFreshSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()

	// The clock runs between Get's read and its delete; refresh the entry there.
	refreshed := false
	store.WithClock(func() time.Time {
		if !refreshed && now.After(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)) {
			refreshed = true
			require.NoError(t, store.Set(ctx, "rates", []byte("fresh"), time.Hour))
		}
		return now
	})

	require.NoError(t, store.Set(ctx, "rates", []byte("stale"), time.Hour))
	now = now.Add(2 * time.Hour)

	_, ok, err := store.Get(ctx, "rates")
	require.NoError(t, err)
	assert.False(t, ok, "the stale entry read first has expired")
	require.True(t, refreshed)

	e, ok, err := store.Get(ctx, "rates")
	require.NoError(t, err)
	require.True(t, ok, "the fresh entry must survive the expiry")
	assert.Equal(t, "fresh", string(e.Value))
}

func TestMemoryStoreCopiesValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	e, ok, _ := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(e.Value))

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestStoreFactory(t *testing.T) {
	s, err := StoreFactory(Config{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = StoreFactory(Config{Backend: BackendRedis, RedisAddr: "localhost:6379", KeyPrefix: "calk:"})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	assert.NoError(t, s.Close())

	_, err = StoreFactory(Config{Backend: BackendRedis})
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = StoreFactory(Config{Backend: "memcached"})
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestRedisStoreUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store := NewRedisStore("127.0.0.1:1", 0, "calk:")
	defer store.Close()

	err := store.Ping(ctx)
	assert.True(t, errors.IsType(err, errors.TypeNetwork), "got %v", err)

	_, ok, err := store.Get(ctx, "rates")
	assert.False(t, ok)
	assert.True(t, errors.IsType(err, errors.TypeNetwork), "got %v", err)
}
