// Package ristretto provides an in-process Store for single-replica
// deployments and tests. Values are held decoded; no codec is involved.
// Entry lifetimes are only as durable as the process.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	st "github.com/unkn0wn-root/regioncache/store"
)

type Store[V any] struct {
	c *rc.Cache
}

var _ st.Store[string] = (*Store[string])(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New[V any](cfg Config) (*Store[V], error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c}, nil
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok := s.c.Get(key)
	if !ok {
		return zero, false, nil
	}
	v, ok := raw.(V)
	if !ok {
		// self-heal: drop unexpected entry shape
		s.c.Del(key)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *Store[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	// admission may reject under pressure; that is an eviction concern of the
	// store, not a write failure
	s.c.SetWithTTL(key, value, 1, ttl)
	return nil
}

// Expire re-admits the current value with a fresh TTL; ristretto has no
// in-place expiry reset.
func (s *Store[V]) Expire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	raw, ok := s.c.Get(key)
	if !ok {
		return false, nil
	}
	s.c.SetWithTTL(key, raw, 1, ttl)
	return true, nil
}

func (s *Store[V]) Del(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

func (s *Store[V]) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto metrics if enabled (not part of store.Store).
func (s *Store[V]) Metrics() *rc.Metrics { return s.c.Metrics }
