package regioncache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// A read found no entry in the store (before default substitution).
	Miss(region, key string)

	// Get/GetOrLoad served the configured default value instead of a stored one.
	DefaultServed(region, key string)

	// A refresh-on-access Expire was issued. applied=false means the store had
	// no entry to refresh (miss or already expired).
	RefreshIssued(storageKey string, applied bool)

	// GetOrLoad ran the loader and wrote the computed value back.
	LoaderStored(region, key string)

	// A store call failed. op ∈ {"get", "set", "expire", "del"}.
	StoreError(op, storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Miss(string, string)              {}
func (NopHooks) DefaultServed(string, string)     {}
func (NopHooks) RefreshIssued(string, bool)       {}
func (NopHooks) LoaderStored(string, string)      {}
func (NopHooks) StoreError(string, string, error) {}
