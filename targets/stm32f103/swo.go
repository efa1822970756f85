//go:build stm32f103

package main

/*
#include <stdint.h>

// Receive mailbox, exported under the CMSIS name so debuggers can find it
volatile int32_t ITM_RxBuffer = 0x5AA55AA5;
*/
import "C"

import (
	"runtime/volatile"
	"unsafe"
)

// ITM (Instrumentation Trace Macrocell) memory map
const (
	itmBase    = 0xE0000000
	itmStim0   = itmBase + 0x000 // Stimulus port 0
	itmTER     = itmBase + 0xE00 // Trace enable
	itmTCR     = itmBase + 0xE80 // Trace control
	itmTCRENA  = 1 << 0          // ITMENA
	itmTERPort = 1 << 0          // stimulus port 0 enabled

	// Value of the receive mailbox while it holds no byte
	itmRxEmpty = 0x5AA55AA5
)

var (
	itmPort32 = (*volatile.Register32)(unsafe.Pointer(uintptr(itmStim0)))
	itmPort8  = (*volatile.Register8)(unsafe.Pointer(uintptr(itmStim0)))
	itmTERReg = (*volatile.Register32)(unsafe.Pointer(uintptr(itmTER)))
	itmTCRReg = (*volatile.Register32)(unsafe.Pointer(uintptr(itmTCR)))

	// itmRxBuffer is the ITM_RxBuffer symbol. The debugger writes one byte
	// into it and waits for the firmware to put the empty marker back.
	itmRxBuffer = (*volatile.Register32)(unsafe.Pointer(&C.ITM_RxBuffer))
)

// itmChannel is the debug channel over ITM stimulus port 0 (SWO pin) for
// output and the debugger mailbox for input
type itmChannel struct{}

func (c *itmChannel) Available() bool {
	return itmRxBuffer.Get() != itmRxEmpty
}

// ReceiveByte returns 0xFF when the mailbox is empty
func (c *itmChannel) ReceiveByte() byte {
	v := itmRxBuffer.Get()
	if v == itmRxEmpty {
		return 0xFF
	}
	itmRxBuffer.Set(itmRxEmpty)
	return byte(v)
}

// SendByte returns at once when no debugger enabled tracing. Otherwise it
// waits for the stimulus port FIFO, which only drains while SWO is clocked
// out; a debugger that stops mid-transfer stalls this call.
func (c *itmChannel) SendByte(b byte) {
	if !itmTCRReg.HasBits(itmTCRENA) || !itmTERReg.HasBits(itmTERPort) {
		return
	}
	for itmPort32.Get() == 0 {
	}
	itmPort8.Set(b)
}
