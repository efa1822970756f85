//go:build stm32f103

package main

import (
	"device/stm32"
	"errors"

	"swoblink/core"
)

var errBadPin = errors.New("pin outside GPIOA..GPIOE")

// CRL/CRH nibble: CNF in bits 3:2, MODE in bits 1:0
const (
	modeOutput2MHz = 0b10
	cnfPushPull    = 0b00 << 2
	cnfOpenDrain   = 0b01 << 2
)

// stmGPIODriver drives F1 GPIO through the port registers. Pins are
// numbered port*16+pin, the same scheme as machine.Pin.
type stmGPIODriver struct{}

func (d *stmGPIODriver) port(pin core.GPIOPin) (*stm32.GPIO_Type, uint32, error) {
	switch pin / 16 {
	case 0:
		stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_IOPAEN)
		return stm32.GPIOA, uint32(pin % 16), nil
	case 1:
		stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_IOPBEN)
		return stm32.GPIOB, uint32(pin % 16), nil
	case 2:
		stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_IOPCEN)
		return stm32.GPIOC, uint32(pin % 16), nil
	case 3:
		stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_IOPDEN)
		return stm32.GPIOD, uint32(pin % 16), nil
	case 4:
		stm32.RCC.APB2ENR.SetBits(stm32.RCC_APB2ENR_IOPEEN)
		return stm32.GPIOE, uint32(pin % 16), nil
	}
	return nil, 0, errBadPin
}

// ConfigureOutput enables the port clock, presets the output latch and
// only then switches the pin from input to output
func (d *stmGPIODriver) ConfigureOutput(pin core.GPIOPin, mode core.OutputMode, initial bool) error {
	port, n, err := d.port(pin)
	if err != nil {
		return err
	}

	if initial {
		port.BSRR.Set(1 << n)
	} else {
		port.BSRR.Set(1 << (n + 16))
	}

	cfg := uint32(modeOutput2MHz | cnfPushPull)
	if mode == core.OpenDrain {
		cfg = modeOutput2MHz | cnfOpenDrain
	}
	if n < 8 {
		port.CRL.ReplaceBits(cfg, 0xF, uint8(n*4))
	} else {
		port.CRH.ReplaceBits(cfg, 0xF, uint8((n-8)*4))
	}
	return nil
}

// Toggle uses BSRR so the flip is one atomic store
func (d *stmGPIODriver) Toggle(pin core.GPIOPin) error {
	port, n, err := d.port(pin)
	if err != nil {
		return err
	}
	if port.ODR.HasBits(1 << n) {
		port.BSRR.Set(1 << (n + 16))
	} else {
		port.BSRR.Set(1 << n)
	}
	return nil
}

func (d *stmGPIODriver) Get(pin core.GPIOPin) (bool, error) {
	port, n, err := d.port(pin)
	if err != nil {
		return false, err
	}
	return port.ODR.HasBits(1 << n), nil
}
