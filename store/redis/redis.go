// Package redis provides the production Store: a shared Redis server reachable
// by any number of cooperating processes. Values cross the wire through a
// pluggable Codec; single-key GET/SET/EXPIRE/DEL are atomic at the server.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/regioncache/codec"
	st "github.com/unkn0wn-root/regioncache/store"
)

var (
	ErrNilClient = errors.New("redis store: nil client")
	ErrNilCodec  = errors.New("redis store: nil codec")
)

type Store[V any] struct {
	rdb         goredis.UniversalClient
	codec       codec.Codec[V]
	closeClient bool
}

var _ st.Store[string] = (*Store[string])(nil)

type Config[V any] struct {
	Client      goredis.UniversalClient
	Codec       codec.Codec[V]
	CloseClient bool // set true only if this store exclusively owns the client
}

func New[V any](cfg Config[V]) (*Store[V], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	return &Store[V]{rdb: cfg.Client, codec: cfg.Codec, closeClient: cfg.CloseClient}, nil
}

func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return zero, false, nil // miss
	}
	if err != nil {
		return zero, false, err // transport/server error
	}
	v, err := s.codec.Decode(b)
	if err != nil {
		return zero, false, err // serialization error surfaces unchanged
	}
	return v, true, nil
}

func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	b, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = 0 // non-positive TTL means "no expiry" per store contract
	}
	return s.rdb.Set(ctx, key, b, ttl).Err()
}

func (s *Store[V]) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.Expire(ctx, key, ttl).Result()
}

func (s *Store[V]) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store[V]) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
