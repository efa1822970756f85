package core

// DebugChannel is a one-byte-at-a-time duplex transport mediated by an
// external peer (debugger, terminal) that may or may not be attached.
//
// Available and ReceiveByte are two separate operations. They are only
// safe under a single poller: if another context consumed the byte in
// between, ReceiveByte returns the transport's empty sentinel instead of
// reporting absence.
type DebugChannel interface {
	// Available reports whether an inbound byte is waiting. Never blocks.
	Available() bool

	// ReceiveByte returns the waiting byte. Call only after Available.
	ReceiveByte() byte

	// SendByte transmits one byte. With a peer attached it blocks until the
	// transport accepts the byte; with no peer it returns without sending.
	SendByte(b byte)
}

var debugChannel DebugChannel

// SetDebugChannel is called by target-specific code to register its channel.
func SetDebugChannel(c DebugChannel) {
	debugChannel = c
}

// MustDebugChannel returns the configured channel or panics if missing.
func MustDebugChannel() DebugChannel {
	if debugChannel == nil {
		panic("debug channel not configured")
	}
	return debugChannel
}
