// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface so that
// encoders can both write into fixed buffers and append to growing ones
// through one value. binary.LittleEndian and binary.BigEndian satisfy the
// interface directly, so no adapter types are needed.
//
// Block frames default to little-endian; big-endian is available for
// interoperability with big-endian consumers.
//
// All returned engines are immutable and stateless, and safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine encodes in little-endian byte order.
func IsLittleEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0001)

	return probe[0] == 0x01
}
