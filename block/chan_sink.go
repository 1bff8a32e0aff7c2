package block

import "sync"

// ChanSink hands sealed blocks to a channel, pipelining the writer with a
// consumer goroutine. With an unbuffered or full channel, AppendBlock blocks
// until the consumer catches up; that blocking is the writer's natural
// backpressure and propagates synchronously to the producing caller.
//
// Close closes the channel exactly once, which is the consumer's end-of-
// stream signal. The writer contract guarantees no AppendBlock after Close.
type ChanSink struct {
	ch   chan VirtualBlock
	once sync.Once
}

var _ Sink = (*ChanSink)(nil)

// NewChanSink creates a ChanSink whose channel holds up to buffer sealed
// blocks before AppendBlock blocks. A buffer of zero yields fully
// synchronous handoff.
func NewChanSink(buffer int) *ChanSink {
	return &ChanSink{ch: make(chan VirtualBlock, buffer)}
}

// C returns the receive side of the block channel. The channel is closed
// when the feeding writer closes.
func (s *ChanSink) C() <-chan VirtualBlock {
	return s.ch
}

// AppendBlock sends one sealed block to the channel, blocking until the
// consumer or the channel buffer accepts it.
func (s *ChanSink) AppendBlock(vb VirtualBlock) error {
	s.ch <- vb
	return nil
}

// Close closes the block channel. Idempotent.
func (s *ChanSink) Close() error {
	s.once.Do(func() { close(s.ch) })
	return nil
}
