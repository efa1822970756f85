// Package serial opens the host side of a board's debug UART. The firmware
// runs its stdin/stdout/stderr over that UART at 115200 baud, 8N1.
package serial

import (
	"io"
)

// Port is an open debug UART. Reads return what the board wrote to its
// stdout and stderr; writes arrive on the board's stdin.
type Port interface {
	io.ReadWriteCloser

	// Flush drops bytes the board sent before the terminal attached
	Flush() error
}

// Config selects the device and line settings
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud must match the firmware's debug UART
	Baud int

	// ReadTimeout bounds each Read in milliseconds (0 = blocking). A timed
	// out Read returns io.EOF, which callers treat as an idle line.
	ReadTimeout int
}

// DefaultConfig returns the line settings the firmware configures
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
