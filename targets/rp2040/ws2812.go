//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"swoblink/core"
)

// Lit colour of the pixel; kept dim, the part is very bright at full scale
var ws2812On = color.RGBA{R: 0, G: 24, B: 0}

// ws2812Line shows a status line on a single WS2812 pixel. The pixel is
// lit while the line is low, like the active-low board LEDs.
type ws2812Line struct {
	dev   ws2812.Device
	level bool
	bound bool
}

func (d *ws2812Line) ConfigureOutput(pin core.GPIOPin, mode core.OutputMode, initial bool) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.dev = ws2812.New(p)
	d.bound = true
	return d.show(initial)
}

func (d *ws2812Line) Toggle(pin core.GPIOPin) error {
	if !d.bound {
		return core.ErrPinNotConfigured
	}
	return d.show(!d.level)
}

func (d *ws2812Line) Get(pin core.GPIOPin) (bool, error) {
	if !d.bound {
		return false, core.ErrPinNotConfigured
	}
	return d.level, nil
}

func (d *ws2812Line) show(level bool) error {
	c := ws2812On
	if level {
		c = color.RGBA{}
	}
	d.level = level
	return d.dev.WriteColors([]color.RGBA{c})
}
