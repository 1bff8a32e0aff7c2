// Package codec provides the per-type serialization layer on top of the
// segmenting block writer.
//
// A Codec[T] turns one value of type T into bytes through the writer's
// append primitives. Dispatch is resolved at compile time through generics:
// each concrete type gets one Codec implementation and there is no runtime
// tag switching on the write path.
//
// Write is the entry point for one logical item. It marks the item start on
// the writer, optionally emits the type fingerprint when the writer was
// built with self-verification, and then hands off to the codec. Compound
// codecs may in turn mark and write nested sub-items through the same
// writer; nothing restricts a logical item to a single mark.
package codec

import (
	"github.com/arloliu/blockstream/block"
	"github.com/arloliu/blockstream/internal/hash"
)

// Codec serializes values of type T into a block writer.
//
// Encode writes the value's bytes through the writer's append primitives.
// It must not call MarkItem for the top-level value; Write does that. The
// encoded form must be self-delimiting (fixed width or length-prefixed) so
// a reader can find the next item.
type Codec[T any] interface {
	Encode(w *block.Writer, v T) error
}

// Func adapts a plain function into a Codec.
type Func[T any] func(w *block.Writer, v T) error

// Encode implements Codec by calling f.
func (f Func[T]) Encode(w *block.Writer, v T) error {
	return f(w, v)
}

// Write appends one logical item: it marks the item start, writes the type
// fingerprint when the writer self-verifies, and dispatches to c for the
// payload bytes.
func Write[T any](w *block.Writer, c Codec[T], v T) error {
	if err := w.MarkItem(); err != nil {
		return err
	}

	if w.SelfVerifying() {
		if err := w.PutUint64(TypeID[T]()); err != nil {
			return err
		}
	}

	return c.Encode(w, v)
}

// TypeID returns the stable fingerprint written ahead of each item of type
// T when self-verification is enabled. Read sides use the same function to
// check for type or schema mismatches.
func TypeID[T any]() uint64 {
	return hash.TypeID[T]()
}
