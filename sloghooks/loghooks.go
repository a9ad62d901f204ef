// Package sloghooks logs cache events through log/slog, with sampling for the
// chatty ones and key redaction for anything that may carry identifiers.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/regioncache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	MissEvery    uint64
	RefreshEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	missCtr    atomic.Uint64
	refreshCtr atomic.Uint64
}

var _ regioncache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Miss(region, key string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("regioncache.miss",
		"region", region,
		"key", h.redact(key))
}

func (h *Hooks) DefaultServed(region, key string) {
	if h.l == nil {
		return
	}
	h.l.Debug("regioncache.default_served",
		"region", region,
		"key", h.redact(key))
}

func (h *Hooks) RefreshIssued(storageKey string, applied bool) {
	if h.l == nil || !sample(h.opts.RefreshEvery, &h.refreshCtr) {
		return
	}
	h.l.Debug("regioncache.refresh_issued",
		"key", h.redact(storageKey),
		"applied", applied)
}

func (h *Hooks) LoaderStored(region, key string) {
	if h.l == nil {
		return
	}
	h.l.Debug("regioncache.loader_stored",
		"region", region,
		"key", h.redact(key))
}

func (h *Hooks) StoreError(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("regioncache.store_error",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}
