//go:build rp2040 || rp2350

package main

import (
	"device/rp"
	"errors"
	"machine"
)

var (
	errPLLUnlocked = errors.New("PLL_SYS not locked")
	errNoCoreClock = errors.New("core clock frequency unknown")
)

// pllClock checks the clock tree the TinyGo runtime brought up before main:
// XOSC -> PLL_SYS -> clk_sys. There is nothing to fall back to when the PLL
// has not locked.
type pllClock struct{}

func (c *pllClock) Configure() error {
	if !rp.PLL_SYS.CS.HasBits(rp.PLL_SYS_CS_LOCK) {
		return errPLLUnlocked
	}
	if machine.CPUFrequency() == 0 {
		return errNoCoreClock
	}
	return nil
}

func (c *pllClock) CoreFrequency() uint32 {
	return machine.CPUFrequency()
}
