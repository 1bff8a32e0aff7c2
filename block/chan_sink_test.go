package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChanSink_PipelinedConsumer(t *testing.T) {
	sink := NewChanSink(0) // fully synchronous handoff

	type result struct {
		data   []byte
		blocks int
		items  int
	}
	done := make(chan result, 1)

	go func() {
		var r result
		for vb := range sink.C() {
			r.data = append(r.data, vb.Bytes()...)
			r.blocks++
			r.items += vb.ItemCount()
		}
		done <- r
	}()

	w, err := NewWriter(sink, WithBlockCapacity(8))
	require.NoError(t, err)

	var want []byte
	for i := 0; i < 10; i++ {
		item := bytes.Repeat([]byte{byte(i)}, i+1)
		require.NoError(t, w.MarkItem())
		require.NoError(t, w.Append(item))
		want = append(want, item...)
	}
	require.NoError(t, w.Close())

	r := <-done
	require.Equal(t, want, r.data)
	require.Equal(t, 10, r.items)
	require.NotZero(t, r.blocks)
}

func TestChanSink_CloseIdempotent(t *testing.T) {
	sink := NewChanSink(1)
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	_, open := <-sink.C()
	require.False(t, open)
}

func TestChanSink_BufferedDoesNotBlock(t *testing.T) {
	sink := NewChanSink(4)
	w, err := NewWriter(sink, WithBlockCapacity(4))
	require.NoError(t, err)

	// three sealed blocks fit in the buffer with no consumer running
	require.NoError(t, w.MarkItem())
	require.NoError(t, w.Append(bytes.Repeat([]byte{0xFF}, 10)))
	require.NoError(t, w.Close())

	var count int
	for range sink.C() {
		count++
	}
	require.Equal(t, 3, count)
}
