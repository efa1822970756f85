//go:build rp2040 || rp2350

package main

import (
	"github.com/jangala-dev/tinygo-uartx/uartx"

	"swoblink/uartchan"
)

const debugBaud = 115200

// The debug line is always wired on this board: no peer detection
var (
	debugUART    = uartx.UART0
	debugChannel = uartchan.New(debugUART, debugUART, nil)
)

// initDebugUART brings up UART0 on the board's default pins (GP0 TX, GP1
// RX on a Pico). Received bytes are buffered by the driver interrupt.
func initDebugUART() error {
	return debugUART.Configure(uartx.UARTConfig{
		BaudRate: debugBaud,
		TX:       uartx.UART_TX_PIN,
		RX:       uartx.UART_RX_PIN,
	})
}
