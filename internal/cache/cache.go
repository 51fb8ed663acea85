// Package cache stores encoded reports in Redis or, when no Redis address is
// configured, in process memory.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "analytics:report"

// Config holds the cache connection settings. A zero TTL disables caching.
type Config struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// New returns the cache configured by c, or nil when caching is disabled.
func New(ctx context.Context, c Config) (dependency.ReportCache, error) {
	if c.TTL <= 0 {
		return nil, nil
	}
	if c.Address == "" {
		return NewMemory(c.TTL, time.Now), nil
	}
	rc := NewRedis(redis.NewClient(&redis.Options{
		Addr:     c.Address,
		Password: c.Password,
		DB:       c.DB,
	}), c.TTL)
	if err := rc.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can't ping redis at %s: %w", c.Address, err)
	}
	return rc, nil
}

// Key builds a namespaced cache key for a report kind and its parameters.
func Key(kind string, params ...string) string {
	parts := append([]string{keyPrefix, kind}, params...)
	return strings.Join(parts, ":")
}

// FormatRange encodes r for use in a key; a zero range is "all".
func FormatRange(r entity.TimeRange) string {
	if r.IsZero() {
		return "all"
	}
	return r.From.UTC().Format(time.RFC3339) + "/" + r.To.UTC().Format(time.RFC3339)
}

// Redis is a ReportCache backed by a Redis client.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	if err := r.client.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

type memoryEntry struct {
	val     []byte
	expires time.Time
}

// Memory is a process local ReportCache with per entry expiry.
type Memory struct {
	Cache map[string]memoryEntry
	Mutex sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
}

func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	return &Memory{
		Cache: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.Mutex.RLock()
	defer m.Mutex.RUnlock()

	e, found := m.Cache[key]
	if !found || !m.now().Before(e.expires) {
		return nil, false, nil
	}
	return e.val, true, nil
}

func (m *Memory) Set(_ context.Context, key string, val []byte) error {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	now := m.now()
	for k, e := range m.Cache {
		if !now.Before(e.expires) {
			delete(m.Cache, k)
		}
	}
	m.Cache[key] = memoryEntry{val: val, expires: now.Add(m.ttl)}
	return nil
}
