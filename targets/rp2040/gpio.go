//go:build rp2040 || rp2350

package main

import (
	"device/rp"
	"errors"
	"machine"

	"swoblink/core"
)

var errOpenDrainSIO = errors.New("SIO has no open-drain output; use the PIO line")

// sioGPIODriver drives push-pull outputs through the single-cycle IO block
type sioGPIODriver struct{}

func (d *sioGPIODriver) ConfigureOutput(pin core.GPIOPin, mode core.OutputMode, initial bool) error {
	if mode != core.PushPull {
		return errOpenDrainSIO
	}
	p := machine.Pin(pin)
	// Output latch first, then the pad: no glitch to the wrong level
	p.Set(initial)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

// Toggle flips the output latch with one XOR-alias store
func (d *sioGPIODriver) Toggle(pin core.GPIOPin) error {
	rp.SIO.GPIO_OUT_XOR.Set(1 << uint32(pin))
	return nil
}

func (d *sioGPIODriver) Get(pin core.GPIOPin) (bool, error) {
	return rp.SIO.GPIO_OUT.HasBits(1 << uint32(pin)), nil
}
