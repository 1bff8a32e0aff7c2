package block

// Sink is the consumer of sealed blocks: an in-memory file, a network
// channel, a framed byte stream, or anything else that stores or transmits
// blocks between compute nodes.
//
// AppendBlock takes shared ownership of the block referenced by the
// VirtualBlock and may block the caller, for example on network or disk
// backpressure; the writer introduces no asynchronous boundary, so that
// backpressure propagates synchronously through Flush, Append, and Close.
//
// Close finalizes the sink. The writer calls Close exactly once, but
// implementations must tolerate repeated calls.
//
// Sink failures are not intercepted or retried by the writer; errors
// propagate unchanged so the caller decides how to react.
type Sink interface {
	// AppendBlock accepts one sealed block fragment for durable storage or
	// transport.
	AppendBlock(vb VirtualBlock) error

	// Close finalizes the sink. Idempotent.
	Close() error
}
