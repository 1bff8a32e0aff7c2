package codec

import "github.com/arloliu/blockstream/block"

// Plain is a Codec for any fixed-layout value type. The type constraint
// enforces the fixed-layout contract at compile time; see block.Put.
type Plain[T block.Plain] struct{}

// Encode writes v as its raw fixed-width representation in the writer's
// byte order.
func (Plain[T]) Encode(w *block.Writer, v T) error {
	return block.Put(w, v)
}

// Bytes is a Codec for raw byte slices, encoded as a uvarint length prefix
// followed by the bytes.
type Bytes struct{}

func (Bytes) Encode(w *block.Writer, v []byte) error {
	if err := w.PutUvarint(uint64(len(v))); err != nil {
		return err
	}

	return w.Append(v)
}

// String is a Codec for strings, encoded as a uvarint length prefix
// followed by the string bytes.
type String struct{}

func (String) Encode(w *block.Writer, v string) error {
	return w.PutString(v)
}

// Uint64 is a Codec for uint64 values in the writer's byte order.
type Uint64 struct{}

func (Uint64) Encode(w *block.Writer, v uint64) error {
	return w.PutUint64(v)
}

// Int64 is a Codec for int64 values, zig-zag varint encoded.
type Int64 struct{}

func (Int64) Encode(w *block.Writer, v int64) error {
	return w.PutVarint(v)
}

// Float64 is a Codec for float64 values in the writer's byte order.
type Float64 struct{}

func (Float64) Encode(w *block.Writer, v float64) error {
	return w.PutFloat64(v)
}
