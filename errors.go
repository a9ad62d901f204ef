package regioncache

import "errors"

// Invalid-argument failures. All of them are raised synchronously, before any
// store call, and are fixed by correcting the call site. Store failures are
// never wrapped by this package; they propagate to the caller unchanged.
var (
	ErrEmptyKey  = errors.New("regioncache: key must not be empty")
	ErrNilLoader = errors.New("regioncache: loader must not be nil")
	ErrNilValue  = errors.New("regioncache: value must not be nil")

	ErrNilStore      = errors.New("regioncache: store is required")
	ErrInvalidRegion = errors.New("regioncache: region must be non-empty and must not contain ':'")
	ErrNegativeTTL   = errors.New("regioncache: ttl must not be negative")
)
