package regioncache

import (
	"context"
	"time"

	st "github.com/unkn0wn-root/regioncache/store"
)

// LoaderFunc computes a value for a missing key. Returning ok=false means "no
// value" — nothing is stored and the cache falls back to its default value.
type LoaderFunc[V any] func(ctx context.Context, key string) (v V, ok bool, err error)

// Cache is the region-scoped cache contract. V is the caller's value type;
// serialization is owned entirely by the Store collaborator.
type Cache[V any] interface {
	Region() string
	Enabled() bool
	Close(context.Context) error

	// GetIfPresent is the pure read: the stored value on a hit, a plain miss
	// otherwise. Never substitutes the default value.
	GetIfPresent(ctx context.Context, key string) (v V, ok bool, err error)

	// Get reads like GetIfPresent but substitutes the configured default value
	// on a miss (ok=true). Without a default it behaves exactly like GetIfPresent.
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// GetOrLoad reads, and on a miss invokes load to compute the value. A
	// computed value is written back (with TTL if enabled) and returned; if the
	// loader reports no value, nothing is written and the default applies.
	// Not atomic across read and write — see the package docs.
	GetOrLoad(ctx context.Context, key string, load LoaderFunc[V]) (v V, ok bool, err error)

	// Put writes value unconditionally, honoring the TTL policy.
	Put(ctx context.Context, key string, value V) error

	// Invalidate deletes the key; succeeds if the key was already absent.
	Invalidate(ctx context.Context, key string) error

	// InvalidateAll is a documented no-op: the store has no portable primitive
	// for "delete everything under a prefix" without a scan. Region-wide
	// eviction is an administrative operation outside this layer.
	InvalidateAll(ctx context.Context) error
}

// Options configure a cache instance. Region and Store are required; the rest
// have zero-value defaults.
type Options[V any] struct {
	// Required
	Region string      // logical namespace; must not contain ':'
	Store  st.Store[V] // remote collaborator

	TTL             time.Duration // per-entry lifetime; 0 => entries never expire
	RefreshOnAccess bool          // reset remaining TTL on every read (needs TTL > 0)
	Default         *V            // served on miss by Get/GetOrLoad; never stored
	Logger          Logger        // nil => NopLogger
	Hooks           Hooks         // nil => NopHooks
	Disabled        bool          // bypass the store entirely
	CloseStore      bool          // Close releases the store; set only if the cache owns it
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
