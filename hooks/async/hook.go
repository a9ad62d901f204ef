// Package asynchook decouples hook consumers from the cache's hot path.
// Events are queued and replayed by worker goroutines; when the queue is full
// events are dropped rather than blocking a cache operation.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{MissEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := regioncache.New[User](regioncache.Options[User]{
//	    Region: "user",
//	    Store:  store,
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/regioncache"
)

type Hooks struct {
	inner regioncache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ regioncache.Hooks = (*Hooks)(nil)

func New(inner regioncache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Miss(region, key string)          { h.try(func() { h.inner.Miss(region, key) }) }
func (h *Hooks) DefaultServed(region, key string) { h.try(func() { h.inner.DefaultServed(region, key) }) }
func (h *Hooks) RefreshIssued(k string, applied bool) {
	h.try(func() { h.inner.RefreshIssued(k, applied) })
}
func (h *Hooks) LoaderStored(region, key string) { h.try(func() { h.inner.LoaderStored(region, key) }) }
func (h *Hooks) StoreError(op, k string, err error) {
	h.try(func() { h.inner.StoreError(op, k, err) })
}
