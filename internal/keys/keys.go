// Package keys owns the storage-key scheme shared by every cache operation.
// One deterministic join function keeps writes and subsequent reads agreeing
// on the physical key.
package keys

import "strings"

// Separator sits between the region and the caller key. Regions must not
// contain it; caller keys may, since the region is always the first
// separator-free segment of a storage key.
const Separator = ":"

// Join builds the storage key for a caller key within a region.
func Join(region, key string) string {
	return region + Separator + key
}

// ValidRegion reports whether region is usable as a collision-free prefix.
func ValidRegion(region string) bool {
	return region != "" && !strings.Contains(region, Separator)
}
