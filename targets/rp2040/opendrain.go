//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"swoblink/core"
)

var (
	errPushPullPIO = errors.New("PIO line is open-drain only")
	errPIOBusy     = errors.New("PIO state machine already claimed")
)

// pioOpenDrain emulates an open-drain output. The pin's output value stays
// low and the state machine switches its direction: input releases the line
// high through the pull-up, output pulls it low.
type pioOpenDrain struct {
	pio   *rp2pio.PIO
	sm    rp2pio.StateMachine
	pin   machine.Pin
	level bool
	bound bool
}

// newPIOOpenDrain uses state machine smNum of PIO0
func newPIOOpenDrain(smNum uint8) *pioOpenDrain {
	return &pioOpenDrain{
		pio: rp2pio.PIO0,
		sm:  rp2pio.PIO0.StateMachine(smNum),
	}
}

func (d *pioOpenDrain) ConfigureOutput(pin core.GPIOPin, mode core.OutputMode, initial bool) error {
	if mode != core.OpenDrain {
		return errPushPullPIO
	}
	if !d.sm.TryClaim() {
		return errPIOBusy
	}
	d.pin = machine.Pin(pin)
	d.pin.Configure(machine.PinConfig{Mode: d.pio.PinMode()})

	// Low output value first; only the direction changes from here on
	d.sm.SetPinsConsecutive(d.pin, 1, false)
	d.bound = true
	d.drive(initial)
	return nil
}

func (d *pioOpenDrain) Toggle(pin core.GPIOPin) error {
	if !d.bound {
		return core.ErrPinNotConfigured
	}
	d.drive(!d.level)
	return nil
}

func (d *pioOpenDrain) Get(pin core.GPIOPin) (bool, error) {
	if !d.bound {
		return false, core.ErrPinNotConfigured
	}
	return d.level, nil
}

// drive releases the line for high and sinks it for low
func (d *pioOpenDrain) drive(level bool) {
	d.sm.SetPindirsConsecutive(d.pin, 1, !level)
	d.level = level
}
