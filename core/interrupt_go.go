//go:build !tinygo

package core

// irqState stands in for the saved interrupt mask on the host, where the
// tick is never advanced from an interrupt
type irqState uintptr

func disableInterrupts() irqState {
	return 0
}

func restoreInterrupts(irqState) {}
