package regioncache

import (
	"context"
	"time"

	"github.com/unkn0wn-root/regioncache/internal/keys"
	st "github.com/unkn0wn-root/regioncache/store"
)

type cache[V any] struct {
	region     string
	store      st.Store[V]
	log        Logger
	hooks      Hooks
	enabled    bool
	ttl        time.Duration // 0 => entries never expire
	refresh    bool          // reset remaining TTL on read; effective only with ttl > 0
	def        *V
	closeStore bool
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Store == nil {
		return nil, ErrNilStore
	}
	if !keys.ValidRegion(opts.Region) {
		return nil, ErrInvalidRegion
	}
	if opts.TTL < 0 {
		return nil, ErrNegativeTTL
	}

	c := &cache[V]{
		region:     opts.Region,
		store:      opts.Store,
		enabled:    !opts.Disabled,
		ttl:        opts.TTL,
		refresh:    opts.RefreshOnAccess,
		def:        opts.Default,
		closeStore: opts.CloseStore,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c, nil
}

func (c *cache[V]) Region() string { return c.region }
func (c *cache[V]) Enabled() bool  { return c.enabled }

func (c *cache[V]) Close(ctx context.Context) error {
	if c.closeStore {
		return c.store.Close(ctx)
	}
	return nil
}

func (c *cache[V]) GetIfPresent(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, ErrEmptyKey
	}
	if !c.enabled {
		return zero, false, nil
	}
	k := c.storageKey(key)
	if err := c.refreshTTL(ctx, k); err != nil {
		return zero, false, err
	}
	v, ok, err := c.store.Get(ctx, k)
	if err != nil {
		c.hooks.StoreError("get", k, err)
		return zero, false, err
	}
	if !ok {
		c.hooks.Miss(c.region, key)
		return zero, false, nil
	}
	return v, true, nil
}

func (c *cache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, ErrEmptyKey
	}
	if !c.enabled {
		return c.fallback(key)
	}
	k := c.storageKey(key)
	if err := c.refreshTTL(ctx, k); err != nil {
		return zero, false, err
	}
	v, ok, err := c.store.Get(ctx, k)
	if err != nil {
		c.hooks.StoreError("get", k, err)
		return zero, false, err
	}
	if !ok {
		c.hooks.Miss(c.region, key)
		return c.fallback(key)
	}
	return v, true, nil
}

func (c *cache[V]) GetOrLoad(ctx context.Context, key string, load LoaderFunc[V]) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, ErrEmptyKey
	}
	if load == nil {
		return zero, false, ErrNilLoader
	}
	if !c.enabled {
		// still serve the caller; just never touch the store
		v, ok, err := load(ctx, key)
		if err != nil {
			return zero, false, err
		}
		if ok && !isNil(v) {
			return v, true, nil
		}
		return c.fallback(key)
	}

	k := c.storageKey(key)
	if err := c.refreshTTL(ctx, k); err != nil {
		return zero, false, err
	}
	v, ok, err := c.store.Get(ctx, k)
	if err != nil {
		c.hooks.StoreError("get", k, err)
		return zero, false, err
	}
	if ok {
		return v, true, nil
	}
	c.hooks.Miss(c.region, key)

	// Miss: compute and write back. Read-then-write here is deliberately not
	// atomic; concurrent loaders race and the last store write wins.
	lv, lok, err := load(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if lok && !isNil(lv) {
		if err := c.store.Set(ctx, k, lv, c.ttl); err != nil {
			c.hooks.StoreError("set", k, err)
			return zero, false, err
		}
		c.hooks.LoaderStored(c.region, key)
		c.log.Debug("loader value stored", Fields{"region": c.region, "key": key})
		return lv, true, nil
	}
	return c.fallback(key)
}

func (c *cache[V]) Put(ctx context.Context, key string, value V) error {
	if key == "" {
		return ErrEmptyKey
	}
	if isNil(value) {
		return ErrNilValue
	}
	if !c.enabled {
		return nil
	}
	k := c.storageKey(key)
	if err := c.store.Set(ctx, k, value, c.ttl); err != nil {
		c.hooks.StoreError("set", k, err)
		return err
	}
	return nil
}

func (c *cache[V]) Invalidate(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !c.enabled {
		return nil
	}
	k := c.storageKey(key)
	if err := c.store.Del(ctx, k); err != nil {
		c.hooks.StoreError("del", k, err)
		return err
	}
	c.log.Debug("invalidated key", Fields{"region": c.region, "key": key})
	return nil
}

// InvalidateAll intentionally does nothing. See the Cache contract.
func (c *cache[V]) InvalidateAll(context.Context) error { return nil }

// refreshTTL resets the remaining lifetime of the entry before the read, so a
// hit always hands back an entry with a full TTL window.
func (c *cache[V]) refreshTTL(ctx context.Context, storageKey string) error {
	if c.ttl <= 0 || !c.refresh {
		return nil
	}
	applied, err := c.store.Expire(ctx, storageKey, c.ttl)
	if err != nil {
		c.hooks.StoreError("expire", storageKey, err)
		return err
	}
	c.hooks.RefreshIssued(storageKey, applied)
	return nil
}

// fallback serves the configured default value, or a plain miss without one.
func (c *cache[V]) fallback(key string) (V, bool, error) {
	if c.def != nil {
		c.hooks.DefaultServed(c.region, key)
		return *c.def, true, nil
	}
	var zero V
	return zero, false, nil
}

func (c *cache[V]) storageKey(userKey string) string {
	// isolate by region
	return keys.Join(c.region, userKey)
}
