// Package codec provides value (de)serialization for store implementations
// that persist bytes. The cache core never touches encoded payloads.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
