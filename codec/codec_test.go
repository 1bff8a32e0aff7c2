package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/blockstream/block"
	"github.com/arloliu/blockstream/errs"
	"github.com/stretchr/testify/require"
)

func newFileWriter(t *testing.T, opts ...block.WriterOption) (*block.Writer, *block.File) {
	t.Helper()

	file := block.NewFile()
	w, err := block.NewWriter(file, opts...)
	require.NoError(t, err)

	return w, file
}

func TestWrite_String(t *testing.T) {
	w, file := newFileWriter(t, block.WithBlockCapacity(16))

	require.NoError(t, Write(w, String{}, "hello"))
	require.NoError(t, Write(w, String{}, "world"))
	require.NoError(t, w.Close())

	require.Equal(t, 2, file.NumItems())

	raw := file.ReadAll()
	for _, want := range []string{"hello", "world"} {
		length, n := binary.Uvarint(raw)
		require.Equal(t, uint64(len(want)), length)
		require.Equal(t, want, string(raw[n:n+int(length)]))
		raw = raw[n+int(length):]
	}
	require.Empty(t, raw)
}

func TestWrite_Bytes(t *testing.T) {
	w, file := newFileWriter(t, block.WithBlockCapacity(8))

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	require.NoError(t, Write(w, Bytes{}, payload))
	require.NoError(t, w.Close())

	raw := file.ReadAll()
	length, n := binary.Uvarint(raw)
	require.Equal(t, uint64(len(payload)), length)
	require.Equal(t, payload, raw[n:])
}

func TestWrite_FixedWidth(t *testing.T) {
	w, file := newFileWriter(t, block.WithBlockCapacity(8))

	require.NoError(t, Write(w, Uint64{}, uint64(0xDEADBEEF)))
	require.NoError(t, Write(w, Float64{}, 6.5))
	require.NoError(t, Write(w, Plain[uint16]{}, uint16(0x0102)))
	require.NoError(t, w.Close())

	raw := file.ReadAll()
	require.Len(t, raw, 8+8+2)

	le := binary.LittleEndian
	require.Equal(t, uint64(0xDEADBEEF), le.Uint64(raw[0:8]))
	require.Equal(t, 6.5, math.Float64frombits(le.Uint64(raw[8:16])))
	require.Equal(t, uint16(0x0102), le.Uint16(raw[16:18]))
}

func TestWrite_Int64ZigZag(t *testing.T) {
	w, file := newFileWriter(t, block.WithBlockCapacity(16))

	values := []int64{0, -1, 150, -150, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		require.NoError(t, Write(w, Int64{}, v))
	}
	require.NoError(t, w.Close())

	raw := file.ReadAll()
	for _, want := range values {
		got, n := binary.Varint(raw)
		require.Positive(t, n)
		require.Equal(t, want, got)
		raw = raw[n:]
	}
	require.Empty(t, raw)
}

func TestWrite_SelfVerification(t *testing.T) {
	w, file := newFileWriter(t,
		block.WithBlockCapacity(64),
		block.WithSelfVerification(true),
	)

	require.NoError(t, Write(w, Uint64{}, uint64(42)))
	require.NoError(t, w.Close())

	raw := file.ReadAll()
	require.Len(t, raw, 8+8)

	le := binary.LittleEndian
	require.Equal(t, TypeID[uint64](), le.Uint64(raw[0:8]))
	require.Equal(t, uint64(42), le.Uint64(raw[8:16]))
}

func TestWrite_SelfVerificationChangesWireBytes(t *testing.T) {
	plain, plainFile := newFileWriter(t, block.WithBlockCapacity(64))
	require.NoError(t, Write(plain, String{}, "abc"))
	require.NoError(t, plain.Close())

	verified, verifiedFile := newFileWriter(t,
		block.WithBlockCapacity(64),
		block.WithSelfVerification(true),
	)
	require.NoError(t, Write(verified, String{}, "abc"))
	require.NoError(t, verified.Close())

	require.Equal(t, len(plainFile.ReadAll())+8, len(verifiedFile.ReadAll()))
}

func TestWrite_TypeIDDiffersPerType(t *testing.T) {
	require.NotEqual(t, TypeID[string](), TypeID[uint64]())
	require.Equal(t, TypeID[string](), TypeID[string]())
}

// A compound codec may mark and write nested sub-items through the same
// writer; each nested mark counts toward the block's item metadata.
func TestWrite_CompoundCodecWithNestedItems(t *testing.T) {
	type pair struct {
		key string
		val uint64
	}

	pairCodec := Func[pair](func(w *block.Writer, p pair) error {
		if err := Write(w, String{}, p.key); err != nil {
			return err
		}

		return Write(w, Uint64{}, p.val)
	})

	w, file := newFileWriter(t, block.WithBlockCapacity(64))
	require.NoError(t, Write(w, pairCodec, pair{key: "cpu", val: 99}))
	require.NoError(t, w.Close())

	// one top-level mark plus two nested marks
	require.Equal(t, 3, file.NumItems())

	raw := file.ReadAll()
	length, n := binary.Uvarint(raw)
	require.Equal(t, uint64(3), length)
	require.Equal(t, "cpu", string(raw[n:n+3]))
	require.Equal(t, uint64(99), binary.LittleEndian.Uint64(raw[n+3:]))
}

func TestWrite_AfterClose(t *testing.T) {
	w, _ := newFileWriter(t)
	require.NoError(t, w.Close())

	err := Write(w, String{}, "late")
	require.ErrorIs(t, err, errs.ErrWriterClosed)
}

func TestWrite_ItemSpanningManyBlocks(t *testing.T) {
	w, file := newFileWriter(t, block.WithBlockCapacity(16))

	big := make([]byte, 16*5+3)
	for i := range big {
		big[i] = byte(i * 7)
	}

	require.NoError(t, Write(w, Bytes{}, big))
	require.NoError(t, w.Close())

	require.Equal(t, 1, file.NumItems())
	require.Equal(t, 6, file.NumBlocks()) // 83 payload bytes + 1 length byte

	raw := file.ReadAll()
	length, n := binary.Uvarint(raw)
	require.Equal(t, uint64(len(big)), length)
	require.Equal(t, big, raw[n:])
}
