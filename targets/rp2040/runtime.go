//go:build rp2040 || rp2350

package main

import (
	"device/arm"

	"swoblink/core"
)

// rpRuntime samples the 1 MHz hardware timer for the millisecond tick, so
// no interrupt is needed
type rpRuntime struct{}

func (r *rpRuntime) Init() error {
	core.SetTickSource(uptimeMs)
	return initDebugUART()
}

// Halt traps into an attached debugger and then spins forever
func (r *rpRuntime) Halt(err error) {
	arm.Asm("bkpt #0")
	for {
	}
}

// uptimeMs truncates the 64-bit microsecond counter. The result wraps
// every 2^32 ms like a free-running tick counter.
func uptimeMs() uint32 {
	return uint32(hardwareUptime() / 1000)
}

// hardwareUptime reads the 64-bit microsecond timer. High is read on both
// sides of low to catch a carry between the two reads.
func hardwareUptime() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}
