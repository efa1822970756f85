//go:build rp2350

package main

import "device/rp"

// RP2350 has two timers; the runtime leaves TIMER0 running at 1 MHz
var (
	timerRAWH = &rp.TIMER0.TIMERAWH
	timerRAWL = &rp.TIMER0.TIMERAWL
)

const (
	mcuName  = "Raspberry Pi RP2350"
	coreName = "Arm Cortex-M33"
)
