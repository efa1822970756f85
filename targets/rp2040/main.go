//go:build rp2040 || rp2350

package main

import (
	"machine"

	"swoblink/app"
	"swoblink/core"
)

// ledKind selects the status line driver. Set at link time:
//
//	tinygo flash -target=pico -ldflags="-X main.ledKind=pio" ./targets/rp2040
//
// "sio" drives the on-board LED push-pull, "pio" emulates an open-drain
// line on statusPin, "ws2812" shows the line on a pixel at pixelPin.
var ledKind = "sio"

const (
	statusPin = machine.GPIO15
	pixelPin  = machine.GPIO16
)

func main() {
	core.SetRuntime(&rpRuntime{})
	core.SetClockDriver(&pllClock{})
	core.SetDebugChannel(debugChannel)
	core.SetIdentityDriver(rpIdentity{})

	line := core.LineConfig{Role: "status", Initial: true}
	switch ledKind {
	case "pio":
		core.SetGPIODriver(newPIOOpenDrain(0))
		line.Pin = core.GPIOPin(statusPin)
		line.Mode = core.OpenDrain
	case "ws2812":
		core.SetGPIODriver(&ws2812Line{})
		line.Pin = core.GPIOPin(pixelPin)
		line.Mode = core.PushPull
	default:
		core.SetGPIODriver(&sioGPIODriver{})
		line.Pin = core.GPIOPin(machine.LED)
		line.Mode = core.PushPull
		line.Initial = false
	}

	a := app.New(app.Options{
		Line:  line,
		Title: "swoblink",
		MCU:   mcuName,
		Core:  coreName,
		Echo:  true,
	})
	a.Run()
}
