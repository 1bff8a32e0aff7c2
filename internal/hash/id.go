// Package hash provides stable 64-bit identifiers used for item type
// fingerprints and block payload checksums.
package hash

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Checksum computes the xxHash64 of the given byte slice.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// TypeID returns a stable fingerprint for type T, derived from the type's
// fully qualified name. The fingerprint is deterministic across processes
// and builds, which is what makes it usable for reader-side verification
// of the item type; it changes only when the type is renamed or moved.
func TypeID[T any]() uint64 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return xxhash.Sum64String(t.String())
}
