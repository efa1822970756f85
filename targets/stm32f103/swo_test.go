//go:build stm32f103

package main

import "testing"

func TestITMMailbox(t *testing.T) {
	var ch itmChannel
	itmRxBuffer.Set(itmRxEmpty)
	if ch.Available() {
		t.Fatal("empty mailbox reported a byte")
	}
	if b := ch.ReceiveByte(); b != 0xFF {
		t.Errorf("ReceiveByte on empty mailbox = %#x, want 0xFF", b)
	}

	// What a debugger does through the ITM_RxBuffer symbol
	itmRxBuffer.Set('k')
	if !ch.Available() {
		t.Fatal("byte in mailbox not reported")
	}
	if b := ch.ReceiveByte(); b != 'k' {
		t.Errorf("ReceiveByte = %q, want 'k'", b)
	}
	if itmRxBuffer.Get() != itmRxEmpty {
		t.Error("mailbox not handed back to the debugger")
	}
}
