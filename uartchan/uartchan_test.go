package uartchan

import (
	"bytes"
	"errors"
	"testing"
)

// bufferedRx is a receive ring backed by a bytes.Buffer
type bufferedRx struct{ bytes.Buffer }

func (r *bufferedRx) Buffered() int { return r.Len() }

type brokenTx struct{}

func (brokenTx) WriteByte(byte) error { return errors.New("tx fault") }

func TestReceive(t *testing.T) {
	rx := &bufferedRx{}
	var tx bytes.Buffer
	c := New(rx, &tx, nil)

	if c.Available() {
		t.Fatal("empty channel reports a byte")
	}
	if got := c.ReceiveByte(); got != Empty {
		t.Errorf("ReceiveByte on empty = %#x, want %#x", got, Empty)
	}

	rx.WriteString("hi")
	if !c.Available() {
		t.Fatal("expected a waiting byte")
	}
	if c.ReceiveByte() != 'h' || c.ReceiveByte() != 'i' {
		t.Error("bytes out of order")
	}
	if c.Available() {
		t.Error("channel should be drained")
	}
}

func TestSendWithPeer(t *testing.T) {
	var tx bytes.Buffer
	attached := true
	c := New(&bufferedRx{}, &tx, func() bool { return attached })

	c.SendByte('a')
	attached = false
	c.SendByte('b')
	attached = true
	c.SendByte('c')

	if tx.String() != "ac" {
		t.Errorf("sent %q, want \"ac\"", tx.String())
	}
	if c.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", c.Dropped())
	}
}

func TestSendErrorCountsAsDropped(t *testing.T) {
	c := New(&bufferedRx{}, brokenTx{}, nil)
	c.SendByte('x')
	c.SendByte('y')
	if c.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", c.Dropped())
	}
}
