// Package store defines the remote-store abstraction used by regioncache.
//
// Implementations own storage, eviction and (de)serialization: a value passed
// to Set must come back from Get semantically unchanged, and every failure of
// the underlying client (connection, timeout, codec) must surface as the
// returned error — regioncache propagates it to the caller untouched.
//
// Important: storage keys are shaped as "<region>:<key>" and that keyspace is
// owned by regioncache. External code MUST NOT write under a region prefix it
// does not own.
package store

import (
	"context"
	"time"
)

// Store is a minimal keyed value store with per-entry TTLs. Must be safe for
// concurrent use; single-key operations are assumed atomic at the store.
type Store[V any] interface {
	// Get returns (value, true, nil) on hit; (zero, false, nil) on miss.
	// If an IO/remote error happens, return (zero, false, err).
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// Set stores value with the given TTL. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Expire resets the remaining lifetime of an existing entry.
	// Returns applied=false (no error) when the key does not exist.
	Expire(ctx context.Context, key string, ttl time.Duration) (applied bool, err error)

	// Del removes a key; absence is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
