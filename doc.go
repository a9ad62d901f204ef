// Package regioncache implements a region-scoped, TTL-aware cache facade over a
// shared remote key-value store. Any number of processes may share one store and
// one region; the cache holds no mutable state of its own, so a single instance
// is safe for unbounded concurrent use.
//
// Components:
//   - Store[V]: the remote collaborator (e.g. Redis). Owns storage, eviction and
//     (de)serialization of values. See the store package.
//   - Cache[V]: the facade. Shapes keys, applies the TTL policy, and defines the
//     read/write/default-value contracts.
//
// Keys:
//
//	<region>:<key>
//
// The region is a mandatory prefix isolating independent consumers of one store.
// Region names must not contain ':' (enforced by New); caller keys may. Because
// the region is always the first separator-free segment, two distinct regions can
// never produce an overlapping storage key.
//
// TTL policy: a positive Options.TTL gives every written entry that lifetime;
// zero disables expiry. With RefreshOnAccess set, every read resets the remaining
// lifetime of the entry it touches.
//
// Absence is never an error. GetIfPresent reports a plain miss; Get and GetOrLoad
// substitute the configured default value (never stored) when there is one.
//
// GetOrLoad pattern:
//
//	v, ok, err := cache.GetOrLoad(ctx, id, func(ctx context.Context, id string) (User, bool, error) {
//	    return readUserFromDB(ctx, id)
//	})
//
// The read-check-then-write sequence in GetOrLoad is not atomic: concurrent
// callers loading the same missing key may each run the loader and each write,
// last write wins at the store. Callers needing a single computation must supply
// an idempotent loader or coordinate externally.
package regioncache
