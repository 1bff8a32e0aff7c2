package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("hello"), ID("hello"))
	require.NotEqual(t, ID("hello"), ID("world"))
}

func TestChecksum(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	require.Equal(t, xxhash.Sum64(data), Checksum(data))
	require.Equal(t, ID("abc"), Checksum([]byte("abc")))
}

func TestTypeID_Stable(t *testing.T) {
	require.Equal(t, TypeID[uint64](), TypeID[uint64]())
	require.Equal(t, ID("uint64"), TypeID[uint64]())
}

func TestTypeID_DistinguishesTypes(t *testing.T) {
	require.NotEqual(t, TypeID[uint64](), TypeID[int64]())
	require.NotEqual(t, TypeID[string](), TypeID[[]byte]())

	type point struct{ X, Y int32 }
	type other struct{ X, Y int32 }
	require.NotEqual(t, TypeID[point](), TypeID[other]())
}
