// Package uartchan implements the hardware layer's debug channel over a
// UART. The receive side is any port with a software RX buffer, such as
// the tinygo-uartx driver; the transmit side is a byte writer.
package uartchan

import "io"

// Empty is returned by ReceiveByte when nothing is buffered
const Empty = 0xFF

// RxPort is the receive half of a buffered UART driver
type RxPort interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Channel is a one-byte-at-a-time duplex channel over a UART
type Channel struct {
	rx   RxPort
	tx   io.ByteWriter
	peer func() bool

	dropped uint32
}

// New returns a Channel. peer reports whether a terminal is attached; pass
// nil when the line is always connected.
func New(rx RxPort, tx io.ByteWriter, peer func() bool) *Channel {
	return &Channel{rx: rx, tx: tx, peer: peer}
}

// Available reports whether a received byte is waiting
func (c *Channel) Available() bool {
	return c.rx.Buffered() > 0
}

// ReceiveByte returns the next received byte, or Empty if none is waiting
func (c *Channel) ReceiveByte() byte {
	b, err := c.rx.ReadByte()
	if err != nil {
		return Empty
	}
	return b
}

// SendByte blocks until the driver accepts b. With no peer attached the
// byte is dropped so output never waits on an absent terminal.
func (c *Channel) SendByte(b byte) {
	if c.peer != nil && !c.peer() {
		c.dropped++
		return
	}
	if err := c.tx.WriteByte(b); err != nil {
		c.dropped++
	}
}

// Dropped returns how many bytes were discarded on the transmit side
func (c *Channel) Dropped() uint32 {
	return c.dropped
}
