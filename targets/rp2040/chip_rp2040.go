//go:build rp2040

package main

import "device/rp"

// Raw (unlatched) views of the microsecond timer
var (
	timerRAWH = &rp.TIMER.TIMERAWH
	timerRAWL = &rp.TIMER.TIMERAWL
)

const (
	mcuName  = "Raspberry Pi RP2040"
	coreName = "Arm Cortex-M0+"
)
