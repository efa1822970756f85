//go:build tinygo

package core

import "sync/atomic"

// The tick event runs between any two instructions of the main sequence,
// so every access is a single atomic word operation.

// getSystemTicks returns the current system ticks
func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}

// incSystemTicks advances the system ticks by one
func incSystemTicks() {
	atomic.AddUint32(&systemTicks, 1)
}
