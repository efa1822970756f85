//go:build stm32f103

package main

import (
	"swoblink/app"
	"swoblink/core"
)

// Status LED on the Blue Pill: PC13, active low, driven open-drain
const ledPin = core.GPIOPin(2*16 + 13)

func main() {
	core.SetRuntime(&stmRuntime{})
	core.SetClockDriver(&rccClock{})
	core.SetGPIODriver(&stmGPIODriver{})
	core.SetDebugChannel(&itmChannel{})
	core.SetIdentityDriver(&esigIdentity{})

	a := app.New(app.Options{
		Line: core.LineConfig{
			Role:    "status",
			Pin:     ledPin,
			Mode:    core.OpenDrain,
			Initial: true, // released: LED off
		},
		Title: "swoblink",
		MCU:   "STMicroelectronics STM32F103",
		Core:  "Arm Cortex-M3",
		Echo:  true,
	})
	a.Run()
}
