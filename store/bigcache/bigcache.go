// Package bigcache provides an in-process Store backed by allegro/bigcache.
//
// BigCache has no per-entry TTL: every entry lives for the configured
// LifeWindow and Expire is unsupported (returns applied=false). Run caches on
// this store with RefreshOnAccess off.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/regioncache/codec"
	st "github.com/unkn0wn-root/regioncache/store"
)

var ErrNilCodec = errors.New("bigcache store: nil codec")

type Store[V any] struct {
	c     *bc.BigCache
	codec codec.Codec[V]
}

var _ st.Store[string] = (*Store[string])(nil)

type Config[V any] struct {
	Codec              codec.Codec[V]
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New[V any](cfg Config[V]) (*Store[V], error) {
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c, codec: cfg.Codec}, nil
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	b, err := s.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := s.codec.Decode(b)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Set ignores ttl; BigCache applies the global LifeWindow to every entry.
func (s *Store[V]) Set(_ context.Context, key string, value V, _ time.Duration) error {
	b, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	return s.c.Set(key, b)
}

// Expire is unsupported; per-entry TTL does not exist in BigCache.
func (s *Store[V]) Expire(context.Context, string, time.Duration) (bool, error) {
	return false, nil
}

func (s *Store[V]) Del(_ context.Context, key string) error {
	err := s.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (s *Store[V]) Close(_ context.Context) error {
	return s.c.Close()
}
