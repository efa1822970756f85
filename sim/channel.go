//go:build !tinygo

package sim

import (
	"bytes"

	"swoblink/uartchan"
)

// rxQueue stands in for the software RX ring of an interrupt-driven UART
type rxQueue struct {
	bytes.Buffer
}

func (q *rxQueue) Buffered() int { return q.Len() }

// Channel is a debug channel over a simulated UART. Inbound bytes are
// injected as if the receive interrupt had queued them; outbound bytes
// collect in Out while a peer is attached.
type Channel struct {
	*uartchan.Channel

	rx       rxQueue
	Out      bytes.Buffer
	attached bool
}

// NewChannel returns a channel with an empty receive queue
func NewChannel(attached bool) *Channel {
	c := &Channel{attached: attached}
	c.Channel = uartchan.New(&c.rx, &c.Out, c.PeerAttached)
	return c
}

// Inject queues inbound bytes from the peer
func (c *Channel) Inject(p ...byte) {
	c.rx.Write(p)
}

// InjectString queues s as inbound bytes
func (c *Channel) InjectString(s string) {
	c.rx.WriteString(s)
}

// Pending returns how many injected bytes have not been received yet
func (c *Channel) Pending() int {
	return c.rx.Len()
}

// PeerAttached reports whether the simulated peer is connected
func (c *Channel) PeerAttached() bool {
	return c.attached
}

// SetPeerAttached connects or disconnects the simulated peer
func (c *Channel) SetPeerAttached(attached bool) {
	c.attached = attached
}
